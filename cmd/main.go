package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Ganaa-shark09/Attendance-Management/config"
	"github.com/Ganaa-shark09/Attendance-Management/database"
	"github.com/Ganaa-shark09/Attendance-Management/handlers"
	"github.com/Ganaa-shark09/Attendance-Management/routes"
)

func main() {
	cfg := config.Load()

	// fails fast when the database is not up yet
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
