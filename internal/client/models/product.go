package models

// Product mirrors the backend product document. ID and CreatedAt are
// server-assigned; Picture is an opaque filename resolved against the static
// asset base URL.
type Product struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	CreatedAt   string `json:"createdAt"`
}
