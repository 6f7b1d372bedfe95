package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"github.com/CodeWithNeha/Data-Pusher/internal/http/handler"
	appmiddleware "github.com/CodeWithNeha/Data-Pusher/internal/http/middleware"
	"github.com/CodeWithNeha/Data-Pusher/internal/http/response"
)

type Dependencies struct {
	Accounts     *handler.AccountHandler
	Destinations *handler.DestinationHandler
	Ingest       *handler.IngestHandler
	DB           *gorm.DB
	Logger       *slog.Logger
}

func New(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(appmiddleware.RequestLogger(deps.Logger))

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", deps.Accounts.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", deps.Accounts.Get)
			r.Put("/", deps.Accounts.Update)
			r.Delete("/", deps.Accounts.Delete)

			r.Route("/destinations", func(r chi.Router) {
				r.Post("/", deps.Destinations.Create)
				r.Get("/", deps.Destinations.List)
				r.Route("/{did}", func(r chi.Router) {
					r.Get("/", deps.Destinations.Get)
					r.Put("/", deps.Destinations.Update)
					r.Delete("/", deps.Destinations.Delete)
				})
			})
		})
	})

	r.Post("/server/incoming_data", deps.Ingest.ReceiveData)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		sqlDB, err := deps.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(req.Context())
		}
		if err != nil {
			response.Error(w, req, http.StatusServiceUnavailable, "INTERNAL", "database unreachable", nil)
			return
		}
		response.JSON(w, req, http.StatusOK, map[string]any{"status": "ok"})
	})

	return r
}
