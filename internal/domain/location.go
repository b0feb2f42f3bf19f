package domain

import "fmt"

// Location is where the vendor currently stands.
type Location struct {
	Planet string `json:"planet"`
	Place  string `json:"place"`
}

// PresenceMessage renders the presence alert text.
func (l Location) PresenceMessage() string {
	return fmt.Sprintf(PresenceMessageFormat, l.Planet, l.Place)
}
