// Package main equipment reservation API.
//
// @title           Equiploan API
// @version         1.0
// @description     Reservation and lending service for shared equipment.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"equiploan/app/echoServer"
	authctrl "equiploan/app/echoServer/controller/auth"
	bookingctrl "equiploan/app/echoServer/controller/booking"
	itemctrl "equiploan/app/echoServer/controller/item"
	"equiploan/app/echoServer/validation"
	"equiploan/config"
	itemrepo "equiploan/repository/item"
	reservationrepo "equiploan/repository/reservation"
	userrepo "equiploan/repository/user"
	authsvc "equiploan/service/auth"
	"equiploan/service/booking"
	itemsvc "equiploan/service/item"
	"equiploan/util/clock"
	"equiploan/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	ir := itemrepo.New(db)
	rr := reservationrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	is := itemsvc.New(as, ir)
	bs := booking.New(as, rr, ir, clock.Real())

	// rebuild the interval index from stored live reservations
	if err := bs.Warm(ctx); err != nil {
		log.Error("interval warm-up failed", "err", err)
		os.Exit(1)
	}

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	itemC := &itemctrl.Controller{Svc: is, V: v, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Item:    itemC,
		Booking: bookingC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
