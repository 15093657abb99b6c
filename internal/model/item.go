package model

// Item is a single checklist entry. IDs are unique within one checklist.
type Item struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}
