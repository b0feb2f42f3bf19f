package domain

// PresenceMessageFormat is filled with planet then place
const PresenceMessageFormat = "I am on %s in %s."

// DefaultDenylist returns a fresh copy of the built-in denylist.
// The exotic engram and cipher entries carry placeholder definitions.
func DefaultDenylist() []ItemHash {
	return []ItemHash{3875551374, 2125848607}
}
