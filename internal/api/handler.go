package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tayaudrey222/yumstation/internal/auth"
	"github.com/tayaudrey222/yumstation/internal/authz"
	"github.com/tayaudrey222/yumstation/internal/models"
	"github.com/tayaudrey222/yumstation/internal/service"
	"github.com/tayaudrey222/yumstation/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	catalog   *service.CatalogService
	orders    *service.OrderService
	lifecycle *service.LifecycleService
	inventory *service.InventoryService
	admins    *service.AdminService
	stats     *service.StatsService
	auditor   *service.Auditor
	tokens    *auth.Service
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog *service.CatalogService,
	orders *service.OrderService,
	lifecycle *service.LifecycleService,
	inventory *service.InventoryService,
	admins *service.AdminService,
	stats *service.StatsService,
	auditor *service.Auditor,
	tokens *auth.Service,
) *Handler {
	return &Handler{
		catalog:   catalog,
		orders:    orders,
		lifecycle: lifecycle,
		inventory: inventory,
		admins:    admins,
		stats:     stats,
		auditor:   auditor,
		tokens:    tokens,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		// Storefront, no auth
		v1.GET("/menu", h.getMenu)
		v1.GET("/categories", h.getCategories)
		v1.POST("/checkout", h.checkout)

		v1.POST("/auth/register", h.register)
		v1.POST("/auth/login", h.login)
	}

	admin := v1.Group("/admin")
	admin.Use(h.authRequired())
	{
		admin.GET("/orders", h.listOrders)
		admin.GET("/orders/:id", h.getOrder)
		admin.POST("/orders/:id/confirm", h.confirmOrder)
		admin.POST("/orders/:id/cancel", h.cancelOrder)

		admin.POST("/menu", h.saveMenuItem)
		admin.POST("/menu/:id/toggle", h.toggleMenuItem)
		admin.DELETE("/menu/:id", h.deleteMenuItem)

		admin.POST("/categories", h.saveCategory)
		admin.DELETE("/categories/:id", h.deleteCategory)

		admin.GET("/inventory", h.listInventory)
		admin.GET("/inventory/low-stock", h.lowStock)
		admin.POST("/inventory", h.saveInventory)
		admin.DELETE("/inventory/:id", h.deleteInventory)
		admin.POST("/inventory/:id/restock", h.restockInventory)

		admin.GET("/admins", h.listAdmins)
		admin.PUT("/admins/:uid/role", h.setAdminRole)

		admin.GET("/audit", h.recentAudit)
		admin.GET("/stats", h.dashboardStats)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// authRequired resolves the bearer token into an Identity for downstream
// handlers. Tokens carry the role as of login time.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		identity, err := h.tokens.VerifyToken(header[len(prefix):])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("identity", identity)
		c.Next()
	}
}

func identityFrom(c *gin.Context) models.Identity {
	val, _ := c.Get("identity")
	identity, _ := val.(models.Identity)
	return identity
}

// writeError maps domain errors to HTTP statuses
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// --- Storefront ---

func (h *Handler) getMenu(c *gin.Context) {
	items, err := h.catalog.Menu(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) getCategories(c *gin.Context) {
	cats, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (h *Handler) checkout(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.orders.Checkout(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// --- Auth ---

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	admin, err := h.admins.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, admin, err := h.admins.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
}

// --- Orders ---

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) confirmOrder(c *gin.Context) {
	order, err := h.lifecycle.Confirm(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) cancelOrder(c *gin.Context) {
	order, err := h.lifecycle.Cancel(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// --- Catalog admin ---

func (h *Handler) saveMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.catalog.SaveMenuItem(c.Request.Context(), identityFrom(c), &item); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) toggleMenuItem(c *gin.Context) {
	item, err := h.catalog.ToggleAvailability(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(c *gin.Context) {
	if err := h.catalog.DeleteMenuItem(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) saveCategory(c *gin.Context) {
	var cat models.CategoryDefinition
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.catalog.SaveCategory(c.Request.Context(), identityFrom(c), &cat); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.catalog.DeleteCategory(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Inventory ---

func (h *Handler) listInventory(c *gin.Context) {
	recs, err := h.inventory.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": recs})
}

func (h *Handler) lowStock(c *gin.Context) {
	recs, err := h.inventory.LowStock(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": recs})
}

func (h *Handler) saveInventory(c *gin.Context) {
	var rec models.InventoryRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.inventory.Save(c.Request.Context(), identityFrom(c), &rec); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) deleteInventory(c *gin.Context) {
	if err := h.inventory.Delete(c.Request.Context(), identityFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type restockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *Handler) restockInventory(c *gin.Context) {
	var req restockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	rec, err := h.inventory.Restock(c.Request.Context(), identityFrom(c), c.Param("id"), req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// --- Admin directory ---

func (h *Handler) listAdmins(c *gin.Context) {
	admins, err := h.admins.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admins": admins})
}

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *Handler) setAdminRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.admins.SetRole(c.Request.Context(), identityFrom(c), c.Param("uid"), req.Role); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Observability ---

func (h *Handler) recentAudit(c *gin.Context) {
	if err := authz.Require(identityFrom(c).Role, authz.ActionAuditRead); err != nil {
		writeError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, err := h.auditor.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context(), identityFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
