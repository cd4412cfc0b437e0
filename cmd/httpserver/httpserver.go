// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/categorydelivery"
	"github.com/ledgerlite/ledgerlite/internal/categoryrepo"
	"github.com/ledgerlite/ledgerlite/internal/categoryservice"
	"github.com/ledgerlite/ledgerlite/internal/datasetdelivery"
	"github.com/ledgerlite/ledgerlite/internal/datasetrepo"
	"github.com/ledgerlite/ledgerlite/internal/datasetservice"
	"github.com/ledgerlite/ledgerlite/internal/filestore"
	"github.com/ledgerlite/ledgerlite/internal/middleware"
	"github.com/ledgerlite/ledgerlite/internal/ratedelivery"
	"github.com/ledgerlite/ledgerlite/internal/raterepo"
	"github.com/ledgerlite/ledgerlite/internal/rateservice"
	"github.com/ledgerlite/ledgerlite/internal/reportdelivery"
	"github.com/ledgerlite/ledgerlite/internal/reportservice"
	"github.com/ledgerlite/ledgerlite/internal/sessiondelivery"
	"github.com/ledgerlite/ledgerlite/internal/sessionservice"
	"github.com/ledgerlite/ledgerlite/internal/settingsdelivery"
	"github.com/ledgerlite/ledgerlite/internal/settingsrepo"
	"github.com/ledgerlite/ledgerlite/internal/settingsservice"
	"github.com/ledgerlite/ledgerlite/internal/storage"
	"github.com/ledgerlite/ledgerlite/internal/transactiondelivery"
	"github.com/ledgerlite/ledgerlite/internal/transactionrepo"
	"github.com/ledgerlite/ledgerlite/internal/transactionservice"
	"github.com/ledgerlite/ledgerlite/pkg/configpkg"
	"github.com/ledgerlite/ledgerlite/pkg/currencypkg"
	"github.com/ledgerlite/ledgerlite/pkg/tokenpkg"
)

// Server holds the storage handle, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// repos gathers the per-entity data access layers so both storage backends
// plug into the same service wiring.
type repos struct {
	transactions transactionservice.Repo
	categories   categoryservice.Repo
	settings     settingsservice.Repo
	rates        rateservice.Repo
	dataset      datasetservice.Repo
}

// New creates Server type with instantiated domains and routes. The storage
// backend is selected by config.StorageDriver.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	var (
		r  repos
		db *sql.DB
	)

	switch config.StorageDriver {
	case "sqlite":
		conn, err := storage.Open(config.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}

		db = conn
		r = repos{
			transactions: transactionrepo.NewRepoSQLite(conn),
			categories:   categoryrepo.NewRepoSQLite(conn),
			settings:     settingsrepo.NewRepoSQLite(conn),
			rates:        raterepo.NewRepoSQLite(conn),
			dataset:      datasetrepo.NewRepoSQLite(conn),
		}
	case "file":
		store, err := filestore.Open(config.FileStorePath)
		if err != nil {
			return nil, fmt.Errorf("open file storage: %w", err)
		}

		r = repos{
			transactions: store.Transactions(),
			categories:   store.Categories(),
			settings:     store.Settings(),
			rates:        store.Rates(),
			dataset:      store.Dataset(),
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.StorageDriver)
	}

	transactionService := transactionservice.New(r.transactions)
	categoryService := categoryservice.New(r.categories)
	settingsService := settingsservice.New(r.settings)
	rateService := rateservice.New(r.rates)
	datasetService := datasetservice.New(r.dataset)
	reportService := reportservice.New(r.transactions, r.categories, r.rates, r.settings)

	transactionHandler := transactiondelivery.NewHandler(transactionService)
	categoryHandler := categorydelivery.NewHandler(categoryService)
	settingsHandler := settingsdelivery.NewHandler(settingsService)
	rateHandler := ratedelivery.NewHandler(rateService)
	reportHandler := reportdelivery.NewHandler(reportService, settingsService)
	datasetHandler := datasetdelivery.NewHandler(datasetService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	routes := engine.Group("/")

	// With an access password configured the data routes require a bearer
	// token from POST /sessions. Without one the API is open.
	if config.AccessPassword != "" {
		tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
		if err != nil {
			return nil, errors.New("cannot create token maker")
		}

		sessionService, err := sessionservice.New(config, tokenMaker)
		if err != nil {
			return nil, errors.New("cannot initialize session service")
		}

		sessionHandler := sessiondelivery.NewHandler(sessionService)

		engine.POST("/sessions", sessionHandler.Login)
		routes.Use(middleware.AuthMiddleware(sessionService.TokenMaker))
	}

	routes.POST("/transactions", transactionHandler.Create)
	routes.GET("/transactions", transactionHandler.List)
	routes.GET("/transactions/:id", transactionHandler.Get)
	routes.PATCH("/transactions/:id", transactionHandler.Update)
	routes.DELETE("/transactions/:id", transactionHandler.Delete)

	routes.POST("/categories", categoryHandler.Create)
	routes.GET("/categories", categoryHandler.List)
	routes.PATCH("/categories/:id", categoryHandler.Update)
	routes.DELETE("/categories/:id", categoryHandler.Delete)

	routes.GET("/settings", settingsHandler.Get)
	routes.PUT("/settings", settingsHandler.Set)

	routes.GET("/rates", rateHandler.Get)
	routes.PUT("/rates", rateHandler.Set)

	routes.GET("/report", reportHandler.Build)

	routes.GET("/export", datasetHandler.Export)
	routes.POST("/import", datasetHandler.Import)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("currency", currencypkg.ValidCurrency)
		if err != nil {
			return nil, errors.New("cannot register currency validator")
		}
	}

	server := &Server{
		DB:     db,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
