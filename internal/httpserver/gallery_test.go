package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artvault/gallery/internal/facade"
	"github.com/artvault/gallery/internal/handlers"
	"github.com/artvault/gallery/internal/repo"
	"github.com/artvault/gallery/internal/sim"
	"github.com/artvault/gallery/internal/store"
	"github.com/artvault/gallery/internal/transport"
)

var testSecret = []byte("test-secret")

func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	st := store.NewMemory()
	users := &repo.Users{Store: st}
	sessions := &repo.Sessions{Store: st}
	carts := &repo.Cart{Store: st}
	notifications := &repo.Notifications{Store: st}
	stats := &repo.Stats{Store: st}

	require.NoError(t, users.Seed(context.Background()))

	router := sim.NewRouter(0)
	(&handlers.Auth{
		Users:     users,
		Sessions:  sessions,
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
	}).Register(router)
	(&handlers.Artworks{Sessions: sessions, Stats: stats}).Register(router)
	(&handlers.Cart{Carts: carts}).Register(router)
	(&handlers.Payments{
		Carts:    carts,
		Sessions: sessions,
		Stats:    stats,
		Rand:     func() float64 { return 0.0 },
	}).Register(router)
	(&handlers.Notifications{Notifications: notifications}).Register(router)
	(&handlers.User{Sessions: sessions, Stats: stats}).Register(router)

	e := echo.New()
	Register(e, &Deps{
		Gallery:   &Gallery{Client: facade.New(router)},
		JWTSecret: testSecret,
	})
	return e
}

func doJSON(e *echo.Echo, method, path string, payload any, header http.Header) *httptest.ResponseRecorder {
	var body *strings.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = strings.NewReader(string(data))
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	e := newServer(t)

	rec := doJSON(e, http.MethodGet, "/health/live", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/health/ready", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	e := newServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/login", transport.LoginRequest{
		Username: "admin",
		Password: "admin123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res transport.AuthResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "admin", res.User.Username)
	assert.NotEmpty(t, res.Token)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	e := newServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/login", transport.LoginRequest{
		Username: "admin",
		Password: "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var res errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Invalid username/email or password", res.Error)
}

func TestSignupEndpointConflict(t *testing.T) {
	e := newServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/signup", transport.SignupRequest{
		Username: "admin",
		Email:    "fresh@x.com",
		Password: "p",
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestArtworksEndpoints(t *testing.T) {
	e := newServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/artworks?query=van+gogh", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing transport.ArtworksResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, 2, listing.Total)

	rec = doJSON(e, http.MethodGet, "/api/v1/artworks/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/artworks/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserRoutesRequireBearerToken(t *testing.T) {
	e := newServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/user/profile", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/user/profile", nil, http.Header{
		echo.HeaderAuthorization: []string{"Bearer garbage"},
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login := doJSON(e, http.MethodPost, "/api/v1/auth/login", transport.LoginRequest{
		Username: "curator",
		Password: "curator123",
	}, nil)
	require.Equal(t, http.StatusOK, login.Code)

	var auth transport.AuthResult
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &auth))

	rec = doJSON(e, http.MethodGet, "/api/v1/user/profile", nil, http.Header{
		echo.HeaderAuthorization: []string{"Bearer " + auth.Token},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentEndpoint(t *testing.T) {
	e := newServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/payments/process", transport.PaymentRequest{
		Amount: 1250,
		Email:  "buyer@x.com",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TXN_")
}
