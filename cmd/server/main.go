package main

import (
	"github.com/joho/godotenv"

	"cotiza-jara/go_backend/internal/app"
)

func main() {
	_ = godotenv.Load()
	app.Run()
}
