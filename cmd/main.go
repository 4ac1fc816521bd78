package main

import (
	"os"

	"github.com/KanannSharmaa25/ai-life-analytics/config"
	"github.com/KanannSharmaa25/ai-life-analytics/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	r.Run(":" + port)
}
