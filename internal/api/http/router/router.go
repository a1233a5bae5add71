package router

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/storefront-server/internal/api/http/handler"
	"github.com/dtroode/storefront-server/internal/api/http/middleware"
	"github.com/dtroode/storefront-server/internal/logger"
)

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Storefront *handler.Storefront
	Webhook    *handler.Webhook
	Admin      *handler.Admin
	Health     *handler.Health
}

// Router builds the storefront's gin engine.
type Router struct {
	handlers  Handlers
	adminAuth *middleware.AdminAuth
	logger    *logger.Logger
}

// New creates new Router instance.
func New(handlers Handlers, adminAuth *middleware.AdminAuth, logger *logger.Logger) *Router {
	return &Router{
		handlers:  handlers,
		adminAuth: adminAuth,
		logger:    logger,
	}
}

// AdminPrefix is the path prefix guarded by basic auth.
const AdminPrefix = "/admin"

// Register mounts every route. Everything under /admin requires basic auth,
// including paths with no route, so unknown admin pages are challenged
// rather than answered with 404.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)

	engine := gin.New()
	// Trailing slash redirects are answered before any middleware runs.
	engine.RedirectTrailingSlash = false
	engine.Use(gin.Recovery(), logging.Handle, r.guardAdmin)

	engine.GET("/healthz", r.handlers.Health.Check)

	r.registerStorefrontRoutes(engine)
	r.registerWebhookRoutes(engine)
	r.registerAdminRoutes(engine)

	return engine
}

func (r *Router) registerStorefrontRoutes(engine *gin.Engine) {
	h := r.handlers.Storefront

	engine.GET("/", h.Home)
	engine.GET("/products", h.ListProducts)
	engine.GET("/products/:id", h.GetProduct)
	engine.POST("/products/:id/purchase", h.StartPurchase)
	engine.GET("/products/download/:id", h.Download)
	engine.GET("/stripe/purchase-success", h.PurchaseSuccess)
}

func (r *Router) registerWebhookRoutes(engine *gin.Engine) {
	engine.POST("/webhooks/stripe", r.handlers.Webhook.Handle)
}

// guardAdmin runs the admin gate for every request under AdminPrefix. Being
// engine-level, it also runs for admin paths that match no route.
func (r *Router) guardAdmin(c *gin.Context) {
	if !isAdminPath(c.Request.URL.Path) {
		c.Next()
		return
	}
	r.adminAuth.Handle(c)
}

func isAdminPath(path string) bool {
	return path == AdminPrefix || strings.HasPrefix(path, AdminPrefix+"/")
}

func (r *Router) registerAdminRoutes(engine *gin.Engine) {
	admin := engine.Group(AdminPrefix)
	admin.GET("", r.handlers.Admin.Dashboard)
}
