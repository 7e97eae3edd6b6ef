package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

type Deps struct {
	Gallery   *Gallery
	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", d.Gallery.Login)
	auth.POST("/signup", d.Gallery.Signup)
	auth.POST("/logout", d.Gallery.Logout)

	artworks := v1.Group("/artworks")
	artworks.GET("", d.Gallery.GetArtworks)
	artworks.GET("/:id", d.Gallery.GetArtwork)
	artworks.POST("/:id/viewed", d.Gallery.MarkArtworkViewed)
	artworks.POST("/:id/favorite", d.Gallery.AddFavorite)
	artworks.DELETE("/:id/favorite", d.Gallery.RemoveFavorite)

	cart := v1.Group("/cart")
	cart.GET("", d.Gallery.GetCart)
	cart.POST("/add", d.Gallery.AddToCart)
	cart.DELETE("/remove", d.Gallery.RemoveFromCart)
	cart.DELETE("/clear", d.Gallery.ClearCart)

	v1.POST("/payments/process", d.Gallery.ProcessPayment)

	v1.POST("/notifications/subscribe", d.Gallery.SubscribeNotification)
	v1.GET("/notifications", d.Gallery.GetNotifications)

	user := v1.Group("/user", RequireToken(d.JWTSecret))
	user.GET("/profile", d.Gallery.GetUserProfile)
	user.GET("/stats", d.Gallery.GetUserStats)
}

// RateLimiter bounds per-client request rates. The identifier is the remote
// address; the gallery sits behind no proxy in this deployment.
func RateLimiter() echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     40,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.Request().RemoteAddr, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
