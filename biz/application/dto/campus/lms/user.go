package lms

import "time"

type User struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"` // student | instructor | admin
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
