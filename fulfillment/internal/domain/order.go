package domain

// Order represents a fulfillment record for a directory user.
type Order struct {
	ID       int    `json:"id"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	UserID   int    `json:"user_id"`
}
