// Package models holds the client-side data types exchanged with the
// marketplace backend and the category vocabulary provider.
package models

// User is the denormalized profile snapshot resolved once per session.
// Profile holds the filename of the profile picture as assigned by the
// backend; it may be empty.
type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Profile string `json:"profile"`
}
