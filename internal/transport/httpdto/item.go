package httpdto

// CreateItemRequest is used for POST /items
type CreateItemRequest struct {
	Name string `json:"name"`
}

// UpdateItemRequest is used for PUT /items/:id. Completed is a pointer so an
// explicit false in the body is distinguishable from an absent field.
type UpdateItemRequest struct {
	Name      string `json:"name"`
	Completed *bool  `json:"completed"`
}
