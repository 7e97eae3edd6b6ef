// Package transport defines the request and response shapes shared by the
// endpoint handlers, the facade and the HTTP surface. Field names follow the
// wire format the gallery frontend always used.
package transport

import (
	"github.com/artvault/gallery/internal/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

type AuthResult struct {
	User  models.SessionIdentity `json:"user"`
	Token string                 `json:"token"`
}

type MessageResult struct {
	Message string `json:"message"`
}

type ArtworksParams struct {
	Query string `json:"query"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

type ArtworksResult struct {
	Artworks []models.Artwork `json:"artworks"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

type ArtworkRequest struct {
	ID int64 `json:"id"`
}

type AddToCartRequest struct {
	Artwork models.CartItem `json:"artwork"`
}

type RemoveFromCartRequest struct {
	ArtworkID int64 `json:"artworkId"`
}

type ArtworkRef struct {
	ArtworkID int64 `json:"artworkId"`
}

type CartMutationResult struct {
	Message string             `json:"message"`
	Cart    models.CartSummary `json:"cart"`
}

type PaymentRequest struct {
	Amount     float64           `json:"amount"`
	CardNumber string            `json:"cardNumber"`
	CardHolder string            `json:"cardHolder"`
	ExpiryDate string            `json:"expiryDate"`
	CVV        string            `json:"cvv"`
	Email      string            `json:"email"`
	Items      []models.CartItem `json:"items"`
}

type SubscribeRequest struct {
	ArtworkID    int64  `json:"artworkId"`
	ArtworkTitle string `json:"artworkTitle"`
	Artist       string `json:"artist"`
	Email        string `json:"email"`
	UserID       *int64 `json:"userId"`
	Username     string `json:"username"`
}

type SubscribeResult struct {
	Message      string                   `json:"message"`
	Notification models.StockNotification `json:"notification"`
}

type NotificationsResult struct {
	Notifications []models.StockNotification `json:"notifications"`
	Count         int                        `json:"count"`
}
