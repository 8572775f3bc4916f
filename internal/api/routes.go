package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"crmdesk-backend/internal/auth"
	"crmdesk-backend/internal/database"
	"crmdesk-backend/internal/logging"
)

// Paths reachable without a session
const (
	PathLogin    = "/login"
	PathAPILogin = "/api/login"
	PathLogout   = "/api/logout"
	PathHealth   = "/api/health"
)

// Deps carries everything the HTTP layer needs
type Deps struct {
	DB      *sqlx.DB
	Schema  SchemaEnsurer
	Auth    *auth.Service
	Limiter *auth.RateLimiter // optional
	Log     logging.Logger
	// AllowOrigins enables CORS for the listed origins when non-empty
	AllowOrigins []string
}

// Handler serves the CRM API and pages
type Handler struct {
	auth      *auth.Service
	limiter   *auth.RateLimiter
	customers *database.CustomerRepo
	companies *database.CompanyRepo
	leads     *database.LeadRepo
	deals     *database.DealRepo
	audit     *database.AuditRepo
	log       logging.Logger
}

// NewServer builds an echo instance with middleware and all routes registered
func NewServer(deps Deps) *echo.Echo {
	if deps.Log == nil {
		deps.Log = logging.Discard()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(deps.Log)

	if deps.Schema != nil {
		e.Pre(EnsureSchema(deps.Schema, deps.Log))
	}
	e.Use(middleware.Recover())
	e.Use(RequestLogger(deps.Log))
	if len(deps.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     deps.AllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
			AllowCredentials: true,
		}))
	}
	e.Use(auth.RequireSession(deps.Auth, PathLogin, PathAPILogin, PathLogout, PathHealth))

	RegisterRoutes(e, deps)
	return e
}

// RegisterRoutes sets up all page and API routes
func RegisterRoutes(e *echo.Echo, deps Deps) {
	h := &Handler{
		auth:      deps.Auth,
		limiter:   deps.Limiter,
		customers: database.NewCustomerRepo(deps.DB),
		companies: database.NewCompanyRepo(deps.DB),
		leads:     database.NewLeadRepo(deps.DB),
		deals:     database.NewDealRepo(deps.DB),
		audit:     database.NewAuditRepo(deps.DB),
		log:       deps.Log,
	}

	// Pages
	e.GET("/", h.indexPage)
	e.GET(PathLogin, h.loginPage)

	api := e.Group("/api")

	// Health check (public)
	api.GET("/health", healthCheck)

	// Auth routes (public)
	if h.limiter != nil && h.limiter.Enabled() {
		api.POST("/login", h.login, h.limiter.Middleware())
	} else {
		api.POST("/login", h.login)
	}
	api.POST("/logout", h.logout)

	customers := api.Group("/customers")
	customers.GET("", h.listCustomers)
	customers.POST("", h.createCustomer)
	customers.PUT("/:id", h.updateCustomer)
	customers.DELETE("/:id", h.deleteCustomer)

	api.GET("/companies", h.listCompanies)

	leads := api.Group("/leads")
	leads.GET("", h.listLeads)
	leads.POST("", h.createLead)
	leads.PUT("/:id", h.updateLead)
	leads.DELETE("/:id", h.deleteLead)

	api.GET("/deals", h.listDeals)

	api.GET("/audit", h.listAuditLogs, auth.RequireAdmin())
}
