package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/playschool-a2z/management-api/internal/api/handler"
	"github.com/playschool-a2z/management-api/internal/api/middleware"
	"github.com/playschool-a2z/management-api/internal/core/auth"
	"github.com/playschool-a2z/management-api/internal/core/domain"
	"github.com/playschool-a2z/management-api/internal/core/ports"
	"github.com/playschool-a2z/management-api/internal/core/service"
	"github.com/playschool-a2z/management-api/internal/infrastructure/config"
	mongodb "github.com/playschool-a2z/management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/playschool-a2z/management-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit trail is constructed by the caller so its worker lifecycle can be
// tied to the process context.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditTrail, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(corsMiddleware(cfg.CORSOrigins))
	e.Use(echoprometheus.NewMiddleware("playschool"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	studentRepo := mongodb.NewStudentRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	denylist := redisdb.NewDenylist(rdb)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens, denylist, audit, log)
	studentService := service.NewStudentService(studentRepo, audit, log)
	roleService := service.NewUserRoleService(userRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	roleHandler := handler.NewUserRoleHandler(roleService)
	auditHandler := handler.NewAuditHandler(auditRepo)

	// The authenticator runs on every request; role gates are attached
	// per route below.
	e.Use(middleware.Authenticate(tokens, userRepo, denylist, log))

	staffRead := middleware.RequireRoles(domain.RoleAdmin, domain.RoleTeacher, domain.RoleStaff)
	adminOrStaff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleStaff)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/signin", authHandler.Signin)
	authGroup.POST("/signout", authHandler.Signout, middleware.RequireAuthenticated())
	authGroup.GET("/me", authHandler.Me, middleware.RequireAuthenticated())
	authGroup.GET("/status", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Authentication service is available"})
	})

	// --- Student routes ---
	students := e.Group("/api/students")
	students.GET("", studentHandler.List, staffRead)
	students.GET("/search", studentHandler.Search, staffRead)
	students.GET("/count", studentHandler.Count, staffRead)
	students.GET("/public/count", studentHandler.Count)
	students.GET("/parent/:email", studentHandler.ByParentEmail,
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleTeacher, domain.RoleStaff, domain.RoleParent))
	students.POST("/register", studentHandler.Register, adminOrStaff)
	students.GET("/:id", studentHandler.Get, staffRead)
	students.PUT("/:id", studentHandler.Update, adminOrStaff)
	students.DELETE("/:id", studentHandler.Deactivate, adminOnly)
	students.PUT("/:id/reactivate", studentHandler.Reactivate, adminOnly)

	// --- Role administration ---
	userRoles := e.Group("/api/user-roles")
	userRoles.POST("/:id/roles/:role", roleHandler.Grant, adminOnly)
	userRoles.DELETE("/:id/roles/:role", roleHandler.Revoke, adminOnly)
	userRoles.GET("/:id/roles", roleHandler.Roles, adminOrStaff)
	userRoles.GET("/roles/:role/users", roleHandler.UsersWithRole, adminOnly)

	// --- Audit trail ---
	e.GET("/api/audit", auditHandler.Recent, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// corsMiddleware mirrors the browser clients' needs: explicit origins when
// configured (credentials allowed), otherwise open read access.
func corsMiddleware(origins []string) echo.MiddlewareFunc {
	cfg := echomiddleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		MaxAge:       3600,
	}
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	} else {
		cfg.AllowOrigins = []string{"*"}
	}
	return echomiddleware.CORSWithConfig(cfg)
}
