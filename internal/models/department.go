package models

// Department groups employees by name. Employees is a headcount snapshot
// kept for display only; the authoritative count is a filter over the
// employee collection.
type Department struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Employees   int    `json:"employees"`
}
