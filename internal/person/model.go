package person

import "time"

// Person represents a person in the system. People are created at signup or
// invite and are only ever referenced afterwards, never deleted by business
// logic.
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// PasswordHash is never serialized; it only exists for login checks.
	PasswordHash string `json:"-"`
}
