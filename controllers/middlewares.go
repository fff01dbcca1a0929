package controllers

import (
	"log"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

func AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userRaw := c.Get("user")
		if userRaw == nil {
			return echo.ErrUnauthorized
		}
		token, ok := userRaw.(*jwt.Token)
		if !ok {
			return echo.ErrUnauthorized
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["sub"] != "admin" {
			log.Println("Rejected non-admin token on admin route")
			return echo.ErrForbidden
		}
		return next(c)
	}
}
