package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"studioviking-backend/ai"
	"studioviking-backend/config"
	"studioviking-backend/ledger"
	"studioviking-backend/routes"
	"studioviking-backend/services"
	"studioviking-backend/store"
)

func main() {
	log := config.NewLogger("studioviking-backend")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	st, err := store.Open(config.Getenv("STORE_PATH", "viking.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}

	led := ledger.New(st, log)
	generator := ai.NewFromEnv(log)

	reminders := services.NewReminderService(led, log)
	reminders.StartScheduler()

	r := routes.SetupRouter(led, generator, log)
	printRoutes(r)

	port := config.Getenv("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
