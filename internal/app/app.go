package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/permutei/permutei-core/internal/mirror"
	"github.com/permutei/permutei-core/internal/platform/logger"
	"github.com/permutei/permutei-core/internal/store"
)

type App struct {
	Log    *logger.Logger
	Cfg    Config
	Store  *store.Store
	Mirror *mirror.Mirror
	Router *gin.Engine
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg := LoadConfig(log)

	slots, err := openSlotStore(cfg.Mirror, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init mirror backend: %w", err)
	}
	mir := mirror.New(log, slots)

	initial := mir.Load(context.Background(), time.Now())
	st := store.New(log,
		store.WithState(initial),
		store.WithOnChange(func(snap store.State) {
			mir.Save(context.Background(), snap)
		}),
	)

	handlerset := wireHandlers(log, st)
	router := wireRouter(log, handlerset)

	return &App{
		Log:    log,
		Cfg:    cfg,
		Store:  st,
		Mirror: mir,
		Router: router,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Serving", "addr", a.Cfg.HTTPAddr)
	return a.Router.Run(a.Cfg.HTTPAddr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
