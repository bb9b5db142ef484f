package models

import "time"

// User is a HealNCure account. Accounts start anonymous (generated handle,
// no password) and can later be claimed with a username and password.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
}
