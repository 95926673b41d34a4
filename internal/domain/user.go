package domain

import "time"

type User struct {
	ID           string
	Username     string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PictureURL   string
	PasswordHash string // argon2id encoded, never serialized into responses
	RoleID       string // foreign key to roles
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
