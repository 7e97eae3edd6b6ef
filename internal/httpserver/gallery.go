// Package httpserver exposes the facade over HTTP for the gallery frontend.
// It is a thin translation layer: bind the request, call the facade, map the
// error string onto a status code.
package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/artvault/gallery/internal/facade"
	"github.com/artvault/gallery/internal/logging"
	"github.com/artvault/gallery/internal/transport"
)

type Gallery struct {
	Client *facade.Client
}

type errorResponse struct {
	Error string `json:"error"`
}

// fail maps the caller-facing message onto a status. The error contract is
// string-only, so this is the one place that matching happens.
func fail(c echo.Context, err error) error {
	msg := err.Error()
	status := http.StatusBadRequest
	switch msg {
	case "Invalid username/email or password", "User not authenticated":
		status = http.StatusUnauthorized
	case "Username already exists", "Email already registered",
		"You are already subscribed for notifications on this artwork":
		status = http.StatusConflict
	case "Artwork not found", "Endpoint not found":
		status = http.StatusNotFound
	case "Payment processing failed. Please try again.":
		status = http.StatusPaymentRequired
	case "Internal server error":
		status = http.StatusInternalServerError
	}
	return c.JSON(status, errorResponse{Error: msg})
}

func (g *Gallery) Login(c echo.Context) error {
	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	res, err := g.Client.Login(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) Signup(c echo.Context) error {
	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	res, err := g.Client.Signup(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (g *Gallery) Logout(c echo.Context) error {
	res, err := g.Client.Logout(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) GetArtworks(c echo.Context) error {
	params := transport.ArtworksParams{
		Query: c.QueryParam("query"),
		Page:  intQueryParam(c, "page"),
		Limit: intQueryParam(c, "limit"),
	}
	res, err := g.Client.GetArtworks(c.Request().Context(), params)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) GetArtwork(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid artwork id"})
	}
	res, err := g.Client.GetArtwork(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) MarkArtworkViewed(c echo.Context) error {
	return g.artworkAction(c, g.Client.MarkArtworkViewed)
}

func (g *Gallery) AddFavorite(c echo.Context) error {
	return g.artworkAction(c, g.Client.AddFavorite)
}

func (g *Gallery) RemoveFavorite(c echo.Context) error {
	return g.artworkAction(c, g.Client.RemoveFavorite)
}

func (g *Gallery) GetCart(c echo.Context) error {
	res, err := g.Client.GetCart(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) AddToCart(c echo.Context) error {
	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	res, err := g.Client.AddToCart(c.Request().Context(), req.Artwork)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) RemoveFromCart(c echo.Context) error {
	var req transport.RemoveFromCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	res, err := g.Client.RemoveFromCart(c.Request().Context(), req.ArtworkID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) ClearCart(c echo.Context) error {
	res, err := g.Client.ClearCart(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) ProcessPayment(c echo.Context) error {
	var req transport.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	res, err := g.Client.ProcessPayment(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}
	logging.FromContext(c.Request().Context()).Info("payment processed",
		"transaction_id", res.TransactionID, "amount", res.Amount)
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) SubscribeNotification(c echo.Context) error {
	var req transport.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	res, err := g.Client.SubscribeNotification(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (g *Gallery) GetNotifications(c echo.Context) error {
	res, err := g.Client.GetNotifications(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) GetUserProfile(c echo.Context) error {
	res, err := g.Client.GetUserProfile(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) GetUserStats(c echo.Context) error {
	res, err := g.Client.GetUserStats(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (g *Gallery) artworkAction(c echo.Context, op func(ctx context.Context, artworkID int64) (transport.MessageResult, error)) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid artwork id"})
	}
	res, err := op(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func intQueryParam(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
