package domain

import "time"

// Movie represents the canonical movie entity in the database/service.
type Movie struct {
	ID          string
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
