// Package repo contains the data-access layer. Every repository works the
// same way: read the full collection from the store, mutate it in memory,
// write it back. Nothing is cached across calls.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/artvault/gallery/internal/hash"
	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/store"
)

const usersKey = "users"

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

type Users struct {
	Store store.Store
}

type NewUser struct {
	Username string
	Email    string
	Password string
	Role     string
	FullName string
}

func (r *Users) All(ctx context.Context) ([]models.User, error) {
	return store.GetJSON[[]models.User](ctx, r.Store, usersKey)
}

// Create appends a new account. The username check runs before the email
// check, so a request colliding on both reports the username conflict. A
// failed uniqueness check leaves the stored collection untouched.
func (r *Users) Create(ctx context.Context, nu NewUser) (models.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Username == nu.Username {
			return models.User{}, ErrDuplicateUsername
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, nu.Email) {
			return models.User{}, ErrDuplicateEmail
		}
	}

	pwHash, err := hash.HashPassword(nu.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           nextID(users),
		Username:     nu.Username,
		Email:        nu.Email,
		PasswordHash: pwHash,
		Role:         nu.Role,
		FullName:     nu.FullName,
		CreatedAt:    time.Now().UTC(),
	}

	users = append(users, user)
	if err := store.SetJSON(ctx, r.Store, usersKey, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate matches identifier against username or email, both
// case-sensitive, then verifies the password hash. Callers get a single
// opaque failure either way; which field mismatched is never revealed.
func (r *Users) Authenticate(ctx context.Context, identifier, password string) (models.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Username != identifier && u.Email != identifier {
			continue
		}
		if hash.CheckPassword(u.PasswordHash, password) {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Seed installs the demo accounts on an empty store. The privileged admin
// account is a regular seeded record, not a code-path branch: login has
// exactly one decision path.
func (r *Users) Seed(ctx context.Context) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	demo := []NewUser{
		{Username: "admin", Email: "admin@example.com", Password: "admin123", Role: models.RoleAdmin, FullName: "Admin User"},
		{Username: "artist", Email: "artist@example.com", Password: "artist123", Role: models.RoleArtist, FullName: "Artist User"},
		{Username: "curator", Email: "curator@example.com", Password: "curator123", Role: models.RoleCurator, FullName: "Curator User"},
		{Username: "visitor", Email: "visitor@example.com", Password: "visitor123", Role: models.RoleVisitor, FullName: "Visitor User"},
	}
	for _, nu := range demo {
		if _, err := r.Create(ctx, nu); err != nil {
			return err
		}
	}
	return nil
}

// nextID is timestamp-derived like the ids the gallery always used, bumped
// past any existing id so two accounts created in the same millisecond still
// stay unique.
func nextID(users []models.User) int64 {
	id := time.Now().UnixMilli()
	for _, u := range users {
		if u.ID >= id {
			id = u.ID + 1
		}
	}
	return id
}
