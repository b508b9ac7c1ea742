package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akilima/akilima/internal/domain/models"
	"github.com/akilima/akilima/internal/server/handlers"
	authsvc "github.com/akilima/akilima/internal/service/auth"
)

// Handlers bundles the HTTP adapters wired into the engine.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Advisory *handlers.AdvisoryHandler
	Market   *handlers.MarketHandler
	Weather  *handlers.WeatherHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, auth *authsvc.Service, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("", requireAuth(auth, logger))

	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/me/crops", h.Auth.UpdateCrops)

	protected.GET("/advisories", h.Advisory.List)
	// Serves both /advisories/:crop and the static /advisories/my-crops.
	protected.GET("/advisories/:crop", h.Advisory.Get)

	protected.GET("/market-prices", h.Market.List)
	protected.GET("/market-prices/:crop", h.Market.GetCrop)
	protected.GET("/market-prices/:crop/history", h.Market.History)
	protected.POST("/market-prices", requireRole(models.RoleExtensionOfficer, models.RoleBuyer), h.Market.Create)
	protected.DELETE("/market-prices/:id", requireRole(models.RoleExtensionOfficer), h.Market.Delete)

	protected.GET("/weather", h.Weather.Get)
	protected.GET("/weather/advisory", h.Weather.Advisory)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// requireAuth validates the bearer token and resolves the caller's account
// into the request context.
func requireAuth(auth *authsvc.Service, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing bearer token"})
			return
		}

		uid, err := auth.ParseToken(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			return
		}

		user, err := auth.Profile(c.Request.Context(), uid)
		if err != nil {
			logger.Warn("token subject no longer resolves", zap.String("sub", uid.Hex()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			return
		}

		handlers.SetCurrentUser(c, user)
		c.Next()
	}
}

// requireRole gates a route to the listed roles. It assumes requireAuth ran
// earlier in the chain.
func requireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := handlers.CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing bearer token"})
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "role not authorized for this action"})
			return
		}
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
