package domain

import "time"

// Account is a login identity that owns characters
type Account struct {
	ID           int64     `json:"account_id"`
	LoginID      string    `json:"login_id"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}
