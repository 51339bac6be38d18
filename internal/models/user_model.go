package models

import "time"

// Role values stored on a user document.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account in the system. The email address is the unique
// key and doubles as the Firestore document ID, which makes the
// create-if-absent sign-in flow a single conditional write.
type User struct {
	ID          string    `json:"id" firestore:"-"` // Document ID (the email)
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"displayName,omitempty" firestore:"displayName"`
	PhotoURL    string    `json:"photoURL,omitempty" firestore:"photoURL"`
	Role        string    `json:"role" firestore:"role"` // "user" or "admin"
	IsPremium   bool      `json:"isPremium" firestore:"isPremium"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}
