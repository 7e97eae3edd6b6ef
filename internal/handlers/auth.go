package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/artvault/gallery/internal/events"
	"github.com/artvault/gallery/internal/logging"
	"github.com/artvault/gallery/internal/models"
	"github.com/artvault/gallery/internal/repo"
	"github.com/artvault/gallery/internal/sim"
	"github.com/artvault/gallery/internal/tokens"
	"github.com/artvault/gallery/internal/transport"
)

type Auth struct {
	Users     *repo.Users
	Sessions  *repo.Sessions
	JWTSecret []byte
	TokenTTL  time.Duration
	Producer  *events.Producer
}

func (h *Auth) Register(r *sim.Router) {
	r.Handle(http.MethodPost, "/auth/login", h.Login)
	r.Handle(http.MethodPost, "/auth/signup", h.Signup)
	r.Handle(http.MethodPost, "/auth/logout", h.Logout)
}

// Login reports one generic message for every failure mode; whether the
// username, email or password mismatched is deliberately hidden.
func (h *Auth) Login(ctx context.Context, body json.RawMessage) sim.Envelope {
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		l.Warn("login failed", "reason", "bad body")
		return sim.Fail(msgInvalidCredentials)
	}

	user, err := h.Users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			l.Warn("login failed", "username", req.Username)
			return sim.Fail(msgInvalidCredentials)
		}
		l.Error("login error", "error", err)
		return sim.Fail(msgInternalServerError)
	}

	return h.openSession(ctx, user, req.Remember, "user_logged_in")
}

func (h *Auth) Signup(ctx context.Context, body json.RawMessage) sim.Envelope {
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignupRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return sim.Fail(msgInvalidRequestBody)
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return sim.Fail("Username, email and password are required")
	}
	if req.Role == "" {
		req.Role = models.RoleVisitor
	}

	user, err := h.Users.Create(ctx, repo.NewUser{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		FullName: req.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateUsername):
			l.Warn("signup conflict", "username", req.Username)
			return sim.Fail(msgUsernameExists)
		case errors.Is(err, repo.ErrDuplicateEmail):
			l.Warn("signup conflict", "email", req.Email)
			return sim.Fail(msgEmailRegistered)
		default:
			l.Error("signup error", "error", err)
			return sim.Fail(msgInternalServerError)
		}
	}

	return h.openSession(ctx, user, false, "user_signed_up")
}

func (h *Auth) Logout(ctx context.Context, _ json.RawMessage) sim.Envelope {
	if err := h.Sessions.Clear(ctx); err != nil {
		logging.FromContext(ctx).Error("logout error", "error", err)
		return sim.Fail(msgInternalServerError)
	}
	return sim.OK(transport.MessageResult{Message: msgLoggedOut})
}

func (h *Auth) openSession(ctx context.Context, user models.User, remember bool, eventType string) sim.Envelope {
	l := logging.FromContext(ctx)

	identity := user.Identity()
	if err := h.Sessions.Save(ctx, identity, remember); err != nil {
		l.Error("session save error", "error", err)
		return sim.Fail(msgInternalServerError)
	}

	token, err := tokens.Sign(user.ID, user.Role, h.JWTSecret, h.TokenTTL)
	if err != nil {
		l.Error("token sign error", "error", err)
		return sim.Fail(msgInternalServerError)
	}

	publish(ctx, h.Producer, events.TopicUserEvents, fmt.Sprint(user.ID), map[string]any{
		"type":     eventType,
		"userId":   user.ID,
		"username": user.Username,
		"role":     user.Role,
	})

	return sim.OK(transport.AuthResult{User: identity, Token: token})
}
