package models

// Item is a minimal demo resource kept for API smoke testing.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemIn is the create/update payload for an item.
type ItemIn struct {
	Name string `json:"name"`
}
