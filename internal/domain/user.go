package domain

import "time"

// User represents an account that can collect favorite movies. Favorites is
// populated only by read paths that explicitly request it.
type User struct {
	ID        string
	Username  string
	Favorites []Movie
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Favorite links a user to a movie. The (UserID, MovieID) pair is the identity;
// no duplicate pair may exist.
type Favorite struct {
	UserID    string
	MovieID   string
	CreatedAt time.Time
}
