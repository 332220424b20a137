package dto

// ItemFailure describes one reminder that could not be delivered or marked sent in a run.
type ItemFailure struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Reason  string `json:"reason"`
}

// RunSummary is the aggregate result of one delivery run.
type RunSummary struct {
	Attempted int           `json:"attempted"`
	Succeeded int           `json:"succeeded"`
	Failed    []ItemFailure `json:"failed"`
}
