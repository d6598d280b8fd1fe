package models

// Dashboard is the combined payload of GET /admin/dashboard: aggregate
// counters plus the full user list. It is recomputed server-side on every
// fetch and never cached client-side beyond the current view.
type Dashboard struct {
	TotalUsers    int    `json:"totalUsers"`
	TotalQuotes   int    `json:"totalQuotes"`
	PublicQuotes  int    `json:"publicQuotes"`
	PrivateQuotes int    `json:"privateQuotes"`
	AllUsers      []User `json:"allUsers"`
}
