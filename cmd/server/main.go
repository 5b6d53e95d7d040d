package main

import (
	"movielist/internal/app"
	"movielist/pkg/config"

	_ "movielist/docs" // Swagger docs
)

// @title           Movie List API
// @version         1.0
// @description     Public JSON API and admin panel for a movie listing site

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
