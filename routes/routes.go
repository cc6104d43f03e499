package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"studioviking-backend/ai"
	"studioviking-backend/config"
	"studioviking-backend/controllers"
	"studioviking-backend/ledger"
)

func SetupRouter(led *ledger.Ledger, generator *ai.Client, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger(log))

	clientController := &controllers.ClientController{Ledger: led}
	serviceController := &controllers.ServiceController{Ledger: led}
	agendaController := &controllers.AgendaController{Ledger: led}
	barController := &controllers.BarController{Ledger: led}
	dashboardController := &controllers.DashboardController{Ledger: led}
	financialController := &controllers.FinancialController{Ledger: led}
	aiController := &controllers.AIController{Generator: generator, Dispatcher: &ai.Dispatcher{}}

	api := r.Group("/api")
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", clientController.CreateClient)
			clients.GET("", clientController.GetClients)
			clients.PUT("/:id", clientController.UpdateClient)
		}

		// Service catalog routes
		services := api.Group("/services")
		{
			services.POST("", serviceController.CreateService)
			services.GET("", serviceController.GetServices)
		}

		// Agenda routes
		api.GET("/agenda", agendaController.GetAgenda)
		appointments := api.Group("/appointments")
		{
			appointments.POST("", agendaController.CreateAppointment)
			appointments.PUT("/:id/status", agendaController.UpdateAppointmentStatus)
		}

		// Bar routes
		api.GET("/products", barController.GetProducts)
		api.PUT("/products/:id/stock", barController.UpdateStock)
		api.POST("/checkout", barController.Checkout)
		api.GET("/sales", barController.GetSales)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboard)

		// Financial report routes
		api.GET("/financial", financialController.GetFinancialReport)

		// AI assistant routes
		aiGroup := api.Group("/ai")
		{
			aiGroup.POST("/concept", aiController.GenerateConcept)
			aiGroup.POST("/message", aiController.GenerateMessage)
			aiGroup.GET("/latest", aiController.GetLatest)
		}
	}

	return r
}
