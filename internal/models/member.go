package models

// Member represents one participant in the savings circle.
type Member struct {
	// ID is the unique identifier for the member. Ids are assigned as
	// max(existing)+1 and are never reused.
	ID int64 `json:"id"`

	// Name is the display name. Mutable via rename; always non-empty
	// after trimming.
	Name string `json:"name"`
}
