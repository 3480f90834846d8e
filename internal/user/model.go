package user

import "time"

// User represents a user in the system
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Avatar    *string    `json:"avatar,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
