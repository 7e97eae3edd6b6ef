package models

import (
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleArtist  = "artist"
	RoleCurator = "curator"
	RoleVisitor = "visitor"
)

// User is the durable account record. The password is only ever stored as a
// bcrypt hash; responses expose the trimmed SessionIdentity instead.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	FullName     string    `json:"fullName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity strips the credential material from a User.
func (u User) Identity() SessionIdentity {
	return SessionIdentity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		FullName: u.FullName,
	}
}

// SessionIdentity is the password-free record held for the duration of a
// login session.
type SessionIdentity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

type Artwork struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Year        int     `json:"year"`
	Style       string  `json:"style"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	InStock     bool    `json:"inStock"`
}

// Snapshot returns the cart entry for an artwork. Cart entries are copies,
// not references: a later catalog change does not touch carts.
func (a Artwork) Snapshot() CartItem {
	return CartItem{
		ID:     a.ID,
		Title:  a.Title,
		Artist: a.Artist,
		Price:  a.Price,
		Image:  a.Image,
	}
}

// CartItem carries no quantity field. The same artwork id may appear more
// than once in a cart; removal by id drops every matching entry.
type CartItem struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Artist string  `json:"artist"`
	Price  float64 `json:"price"`
	Image  string  `json:"image,omitempty"`
}

type CartSummary struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

type StockNotification struct {
	ID           int64     `json:"id"`
	ArtworkID    int64     `json:"artworkId"`
	ArtworkTitle string    `json:"artworkTitle"`
	Artist       string    `json:"artist"`
	Email        string    `json:"email"`
	UserID       *int64    `json:"userId"`
	Username     string    `json:"username"`
	RequestedAt  time.Time `json:"requestedAt"`
	Notified     bool      `json:"notified"`
}

const (
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
)

// Transaction is the payment result. It is returned to the caller but never
// persisted.
type Transaction struct {
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Message       string  `json:"message"`
}

type UserStats struct {
	ArtworksViewed     int `json:"artworksViewed"`
	FavoritesCount     int `json:"favoritesCount"`
	PurchasesCount     int `json:"purchasesCount"`
	ExhibitionsVisited int `json:"exhibitionsVisited"`
}
