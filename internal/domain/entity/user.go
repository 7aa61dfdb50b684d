package entity

import "time"

// User representa un comprador del marketplace.
type User struct {
	ID           string
	Name         string
	Email        string // único entre usuarios
	PasswordHash string // bcrypt; solo se lee para comparar en login
	Balance      int64  // no negativo; solo cambia vía top-up
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
