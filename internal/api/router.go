package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/task-system/internal/api/handler"
	"github.com/taskhive/task-system/internal/api/middleware"
	"github.com/taskhive/task-system/internal/core/ports"
	"github.com/taskhive/task-system/internal/core/service"
	mongodb "github.com/taskhive/task-system/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhive/task-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity recorder and service come from the caller because their
// worker lifecycle is owned by the process bootstrap.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	tokens *service.TokenService,
	recorder ports.ActivityRecorder,
	activity ports.ActivityService,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	taskCache := redisdb.NewTaskCache(rdb)

	authService := service.NewAuthService(userRepo, tokens, log)
	taskService := service.NewTaskService(taskRepo, taskCache, recorder, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	adminHandler := handler.NewAdminHandler(userService, taskService, activity)

	authGate := middleware.Auth(tokens)
	adminGate := middleware.AdminOnly(tokens, userRepo)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/protected", authHandler.Protected, authGate)

	// --- Task routes (user-level gate) ---
	tasks := e.Group("/api/tasks", authGate)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// --- Admin routes (admin gate) ---
	admin := e.Group("/api/admin", adminGate)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/tasks", adminHandler.ListAllTasks)
	admin.GET("/users/:userId/tasks", adminHandler.ListUserTasks)
	admin.POST("/users/:userId/tasks", adminHandler.CreateUserTask)
	admin.PUT("/users/:userId/tasks/:taskId", adminHandler.UpdateUserTask)
	admin.DELETE("/users/:userId/tasks/:taskId", adminHandler.DeleteUserTask)
	admin.GET("/activity", adminHandler.ListActivity)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/swagger-doc.json", swaggerDoc)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}

// swaggerDoc serves the raw OpenAPI document generated by swag init.
func swaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc("swagger")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "swagger doc not generated")
	}
	return c.Blob(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
