package model

// Recommendation is a single prioritized action attached to a classified
// record or verdict. Lower priority numbers come first.
type Recommendation struct {
	Priority int    `json:"priority"`
	Action   string `json:"action"`
}
