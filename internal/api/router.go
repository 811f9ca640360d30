package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/artgallery/gallery-service/docs"
	"github.com/artgallery/gallery-service/internal/api/handler"
	"github.com/artgallery/gallery-service/internal/api/middleware"
	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/policy"
	"github.com/artgallery/gallery-service/internal/core/service"
	"github.com/artgallery/gallery-service/internal/core/session"
	"github.com/artgallery/gallery-service/internal/infrastructure/config"
	mongorepo "github.com/artgallery/gallery-service/internal/infrastructure/db/mongo"
	redisinfra "github.com/artgallery/gallery-service/internal/infrastructure/db/redis"
	"github.com/artgallery/gallery-service/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, store *session.Store) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gallery"))

	// --- Dependencies ---
	paintingRepo := mongorepo.NewPaintingRepository(db)
	categoryRepo := mongorepo.NewCategoryRepository(db)
	ratingRepo := mongorepo.NewRatingRepository(db)
	commentRepo := mongorepo.NewCommentRepository(db)

	featuredCache := redisinfra.NewFeaturedCache(rdb, cfg.Cache.FeaturedTTL)
	ratingDedup := redisinfra.NewRatingDedup(rdb)

	paintingService := service.NewPaintingService(paintingRepo, categoryRepo, featuredCache, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	ratingService := service.NewRatingService(ratingRepo, paintingRepo, ratingDedup, log)
	commentService := service.NewCommentService(commentRepo, paintingRepo, log)

	guard := policy.NewGuard(store, policy.DefaultRoutes())

	tokens := handler.NewTokenIssuer(cfg.JWTSecret, 0)
	sessionHandler := handler.NewSessionHandler(store, tokens)
	paintingHandler := handler.NewPaintingHandler(paintingService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	commentHandler := handler.NewCommentHandler(commentService)
	viewHandler := handler.NewViewHandler(guard)
	healthHandler := handler.NewHealthHandler(db, rdb)

	public := middleware.Guard(guard, policy.Public())
	authed := middleware.Guard(guard, policy.Authenticated())
	artist := middleware.Guard(guard, policy.RequireRole(domain.RoleArtist))

	// --- Session endpoints (actions, not views: never guarded) ---
	e.POST("/auth/login", sessionHandler.Login)
	e.POST("/auth/logout", sessionHandler.Logout)
	e.POST("/auth/register", sessionHandler.Register)

	e.GET("/users", sessionHandler.ListUsers, authed)
	e.GET("/users/me", sessionHandler.Me, authed)
	e.PUT("/users/me", sessionHandler.UpdateProfile, authed)

	// --- Views: each screen declares its requirement; the guard decides ---
	e.GET("/login", viewHandler.Render("login"), public)
	e.GET("/register", viewHandler.Render("register"), public)
	e.GET("/", viewHandler.Render("home"), authed)
	e.GET("/gallery", viewHandler.Render("gallery"), authed)
	e.GET("/paintings/:id", viewHandler.Render("painting_detail"), authed)
	e.GET("/artists", viewHandler.Render("artists"), authed)
	e.GET("/profile", viewHandler.Render("profile"), authed)
	e.GET("/upload", viewHandler.Render("upload"), artist)
	e.GET("/my-paintings", viewHandler.Render("my_paintings"), artist)

	// --- Gallery API ---
	g := e.Group("/api")

	g.GET("/paintings", paintingHandler.List, authed)
	g.GET("/paintings/featured", paintingHandler.Featured, authed)
	g.GET("/paintings/mine", paintingHandler.Mine, artist)
	g.GET("/paintings/:id", paintingHandler.Get, authed)
	g.POST("/paintings", paintingHandler.Create, artist)
	g.PUT("/paintings/:id", paintingHandler.Update, artist)
	g.DELETE("/paintings/:id", paintingHandler.Delete, artist)

	g.GET("/categories", categoryHandler.List, authed)
	g.GET("/categories/:id", categoryHandler.Get, authed)
	g.POST("/categories", categoryHandler.Create, artist)
	g.PUT("/categories/:id", categoryHandler.Update, artist)
	g.DELETE("/categories/:id", categoryHandler.Delete, artist)

	g.GET("/ratings", ratingHandler.List, authed)
	g.POST("/ratings", ratingHandler.Rate, authed)
	g.DELETE("/ratings/:id", ratingHandler.Delete, authed)

	g.GET("/comments", commentHandler.List, authed)
	g.POST("/comments", commentHandler.Create, authed)
	g.PUT("/comments/:id", commentHandler.Update, authed)
	g.DELETE("/comments/:id", commentHandler.Delete, authed)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)     // readiness – are dependencies up?

	// Anything else resolves through the route table; unknown paths go home.
	e.Any("/*", viewHandler.CatchAll)

	return e
}
