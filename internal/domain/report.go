package domain

// Report summarises one run of the pipeline
type Report struct {
	RunID    string
	Present  bool
	Location *Location
	Hashes   []ItemHash
	Sent     []Item
	Failed   []ItemResult
}

// FailedHashes lists the identifiers that were skipped
func (r Report) FailedHashes() []ItemHash {
	hashes := make([]ItemHash, 0, len(r.Failed))
	for _, f := range r.Failed {
		hashes = append(hashes, f.Hash)
	}
	return hashes
}
