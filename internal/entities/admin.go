package entities

import "time"

const RoleAdmin = "ADMIN"

type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type AdminToken struct {
	Token     string
	ExpiresIn time.Duration
}
