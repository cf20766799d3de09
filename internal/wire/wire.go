package wire

import (
	"net/http"
	"time"

	"cinema-manager/internal/adaptor"
	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/event"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/middleware"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.uber.org/zap"
)

// App holds the router and the services behind it.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// guards are the route middlewares shared by the domain wirings.
type guards struct {
	auth      func(http.Handler) http.Handler
	staff     func(http.Handler) http.Handler
	admin     func(http.Handler) http.Handler
	rateLimit func(http.Handler) http.Handler
}

// Wiring builds services, handlers and routes. rdb may be nil, which
// turns rate limiting off.
func Wiring(repo *repository.Repository, publisher event.Publisher, rdb redis.Cmdable, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, publisher, config, logger)
	handler := adaptor.NewHandler(service, logger)

	g := guards{
		auth:      middleware.AuthSession(repo.Session, logger),
		staff:     middleware.RequireRole(logger, entity.RoleAdmin, entity.RoleClerk),
		admin:     middleware.RequireRole(logger, entity.RoleAdmin),
		rateLimit: middleware.RateLimit(rdb, config.RateLimit, logger),
	}

	router := setupRouter(handler, g, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, g guards, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	timeout := config.App.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(otelchi.Middleware(config.App.Name, otelchi.WithChiRoutes(r)))
	r.Use(chimw.Timeout(timeout))

	// Apply routes
	wireAuth(r, handler.Auth, g)
	wireRoom(r, handler.Room, g)
	wireMovie(r, handler.Movie, handler.Feedback, g)
	wireScreening(r, handler.Screening, g)
	wireCustomer(r, handler.Customer, handler.Feedback, g)
	wireTicket(r, handler.Ticket, g)
	wireFeedback(r, handler.Feedback, g)
	wireReport(r, handler.Report, g)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
