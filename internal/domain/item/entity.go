package item

// Item is the entity managed by the CRUD surface.
type Item struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}
