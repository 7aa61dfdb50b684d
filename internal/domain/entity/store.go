package entity

import "time"

// Store representa una tienda que publica items.
type Store struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
