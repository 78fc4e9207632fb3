package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mnurse06/finance-tracker/internal/config"
	"github.com/mnurse06/finance-tracker/internal/tablestore"
)

// Application wires configuration, storage, router, and server lifecycle.
type Application struct {
	cfg       config.Application
	router    *mux.Router
	srv       *http.Server
	scheduler *Scheduler
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	store, err := tablestore.New(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (services, handlers...)
	deps := BuildDependencies(store, cfg)

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	// Automatic subscription posting
	var scheduler *Scheduler
	if cfg.Posting.Auto {
		scheduler, err = NewScheduler(cfg.Posting.Schedule, deps.Poster)
		if err != nil {
			return nil, err
		}
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv, scheduler: scheduler}, nil
}

// Run starts the scheduler (when enabled) and the HTTP server, and blocks.
func (a *Application) Run() error {
	if a.scheduler != nil {
		a.scheduler.Start()
		defer a.scheduler.Stop()
	}
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
