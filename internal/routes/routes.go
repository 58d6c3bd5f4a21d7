package routes

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/domain/auth"
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/domain/bookmarks"
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/domain/heritage"
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/domain/itineraries"
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/domain/planner"
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/middleware"
	"github.com/NSooriya/yaalir-travel-planning-app/internal/pkg/config"
)

type AppHandlers struct {
	Auth        *auth.Handler
	Heritage    *heritage.Handler
	Planner     *planner.Handler
	Itineraries *itineraries.Handler
	Bookmarks   *bookmarks.Handler
}

func Setup(r *gin.Engine, dbPool *pgxpool.Pool, log *zap.Logger) {
	handlers := setupDependencies(dbPool, log)
	setupRouter(r, handlers)
}

func setupDependencies(dbPool *pgxpool.Pool, log *zap.Logger) *AppHandlers {
	cfg, err := config.Load()
	if err != nil {
		log.Warn("Failed to load config, using default values", zap.Error(err))
		cfg = &config.Config{
			JWT: config.JWTSettings{
				SecretKey:       "default-secret-key-change-in-production-min-32-chars",
				TokenExpiration: 24 * time.Hour,
			},
		}
	}

	jwtConfig := auth.JWTConfig{
		SecretKey:       cfg.JWT.SecretKey,
		TokenExpiration: cfg.JWT.TokenExpiration,
		Logger:          log,
	}

	authRepo := auth.NewRepositoryImpl(dbPool, log)
	authService := auth.NewServiceImpl(authRepo, jwtConfig, log)

	heritageRepo := heritage.NewRepositoryImpl(dbPool, log)
	heritageService := heritage.NewServiceImpl(heritageRepo, log)

	// The full catalog listing doubles as the planner's site source.
	plannerService := planner.NewServiceImpl(heritageService, log)

	itinerariesRepo := itineraries.NewRepositoryImpl(dbPool, log)
	itinerariesService := itineraries.NewServiceImpl(itinerariesRepo, log)

	bookmarksRepo := bookmarks.NewRepositoryImpl(dbPool, log)

	return &AppHandlers{
		Auth:        auth.NewHandler(authService, log),
		Heritage:    heritage.NewHandler(heritageService, log),
		Planner:     planner.NewHandler(plannerService, log),
		Itineraries: itineraries.NewHandler(itinerariesService, log),
		Bookmarks:   bookmarks.NewHandler(bookmarksRepo, log),
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers) {
	// Pprof debugging routes
	debugGroup := r.Group("/debug/pprof")
	{
		debugGroup.GET("/", gin.WrapH(http.HandlerFunc(pprof.Index)))
		debugGroup.GET("/cmdline", gin.WrapH(http.HandlerFunc(pprof.Cmdline)))
		debugGroup.GET("/profile", gin.WrapH(http.HandlerFunc(pprof.Profile)))
		debugGroup.POST("/symbol", gin.WrapH(http.HandlerFunc(pprof.Symbol)))
		debugGroup.GET("/symbol", gin.WrapH(http.HandlerFunc(pprof.Symbol)))
		debugGroup.GET("/trace", gin.WrapH(http.HandlerFunc(pprof.Trace)))
		debugGroup.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
		debugGroup.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
		debugGroup.GET("/heap", gin.WrapH(pprof.Handler("heap")))
	}

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), h.Auth.Me)
	}

	api.GET("/heritage", h.Heritage.ListSites)
	api.GET("/heritage/:id", h.Heritage.GetSite)
	api.GET("/crafts", h.Heritage.ListCrafts)

	chatGroup := api.Group("/chat")
	chatGroup.Use(middleware.OptionalAuthMiddleware())
	{
		chatGroup.POST("/message", h.Planner.Message)
	}

	itineraryGroup := api.Group("/itinerary")
	{
		itineraryGroup.POST("/generate", middleware.OptionalAuthMiddleware(), h.Planner.Generate)
		itineraryGroup.POST("/save", middleware.AuthMiddleware(), h.Itineraries.Save)
		itineraryGroup.GET("/", middleware.AuthMiddleware(), h.Itineraries.List)
		itineraryGroup.GET("/:id/export", middleware.AuthMiddleware(), h.Itineraries.Export)
	}

	bookmarkGroup := api.Group("/bookmarks")
	bookmarkGroup.Use(middleware.AuthMiddleware())
	{
		bookmarkGroup.POST("/add", h.Bookmarks.Add)
		bookmarkGroup.POST("/remove", h.Bookmarks.Remove)
		bookmarkGroup.GET("/", h.Bookmarks.List)
	}
}
