package entities

import "time"

// User is a registered visitor.
//
// Storage model (DynamoDB):
//   - PK: email (natural unique key; lookups are always by email)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
