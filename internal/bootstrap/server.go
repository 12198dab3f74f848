package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/tourbooking/api"
	"github.com/zvrva/tourbooking/config"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Packages  *api.PackageHandler
	Reviews   *api.ReviewHandler
	Favorites *api.FavoriteHandler
	Bookings  *api.BookingHandler
	Admin     *api.AdminHandler
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, h),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	authGroup := router.Group("/auth")
	h.Auth.Register(authGroup)

	packagesGroup := router.Group("/packages")
	h.Packages.Register(packagesGroup)
	h.Reviews.RegisterPublic(packagesGroup)

	authed := router.Group("/", api.RequireAuth(cfg.Auth.JWTSecret))

	authedPackages := authed.Group("/packages")
	h.Reviews.RegisterAuthed(authedPackages)
	h.Favorites.RegisterPackages(authedPackages)
	h.Bookings.RegisterSessions(authedPackages)

	favoritesGroup := authed.Group("/favorites")
	h.Favorites.RegisterFavorites(favoritesGroup)

	bookingsGroup := authed.Group("/bookings")
	h.Bookings.Register(bookingsGroup)

	adminGroup := authed.Group("/admin", api.RequireAdmin())
	h.Admin.Register(adminGroup)

	return router
}
