package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	v1 "github.com/kidulajumba254/invoice-management-system/internal/api/v1"
	"github.com/kidulajumba254/invoice-management-system/internal/rest/middleware"
)

type Handlers struct {
	Invoice   *v1.InvoiceHandler
	Client    *v1.ClientHandler
	Dashboard *v1.DashboardHandler
}

func NewHandlers(
	invoice *v1.InvoiceHandler,
	client *v1.ClientHandler,
	dashboard *v1.DashboardHandler,
) Handlers {
	return Handlers{
		Invoice:   invoice,
		Client:    client,
		Dashboard: dashboard,
	}
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Invoice routes
	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
	}

	// Client routes
	clients := router.Group("/clients")
	{
		clients.GET("", handlers.Client.ListClients)
		clients.GET("/:id", handlers.Client.GetClient)
	}

	// Dashboard routes
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", handlers.Dashboard.GetDashboard)
		dashboard.GET("/statistics", handlers.Dashboard.GetStatistics)
	}
}
