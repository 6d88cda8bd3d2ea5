package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"stayvista/api"
	"stayvista/config"
	"stayvista/internal/auth"
	"stayvista/internal/service/bookings"
	"stayvista/internal/service/payments"
	"stayvista/internal/service/rooms"
	"stayvista/internal/service/users"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Users    users.UserUseCase
	Rooms    rooms.RoomUseCase
	Bookings bookings.BookingUseCase
	Payments payments.PaymentUseCase
}

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, tokens *auth.TokenService, svc Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, tokens, svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(cfg *config.Config, tokens *auth.TokenService, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), api.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	cookie := api.NewCookieOptions(cfg.App.Production, time.Duration(cfg.Auth.TokenTTLDays)*24*time.Hour)
	requireAuth := api.RequireAuth(tokens, cookie)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from StayVista Server..")
	})

	api.NewAuthHandler(tokens, cookie).Register(router)
	api.NewUserHandler(svc.Users).Register(router)
	api.NewRoomHandler(svc.Rooms).Register(router)
	api.NewBookingHandler(svc.Bookings).Register(router, requireAuth)
	api.NewPaymentHandler(svc.Payments).Register(router, requireAuth)

	return router
}
