package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"equiploan/app/echoServer/controller/auth"
	"equiploan/app/echoServer/controller/booking"
	"equiploan/app/echoServer/controller/item"
)

type C struct {
	Auth      *auth.Controller
	Item      *item.Controller
	Booking   *booking.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public. The state-changing endpoints authenticate from the payload
	// (credentials travel with each request); no session is required.
	pub := e.Group("/v1")
	pub.POST("/login", c.Auth.Login)

	pub.POST("/reserve", c.Booking.Reserve)
	pub.POST("/cancel", c.Booking.Cancel)

	pub.POST("/admin/lend", c.Booking.Lend)
	pub.POST("/admin/return", c.Booking.Return)
	pub.POST("/admin/overdue", c.Booking.Overdue)
	pub.POST("/admin/pending", c.Booking.Pending)
	pub.POST("/admin/register", c.Auth.Register)
	pub.POST("/admin/items", c.Item.Add)
	pub.POST("/admin/items/remove", c.Item.Remove)

	// Read endpoints require a token from /login.
	read := e.Group("/v1")
	read.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
	}))

	read.GET("/items", c.Item.List)
	read.GET("/items/available", c.Booking.Available)
	read.GET("/reservations", c.Booking.List)
}
