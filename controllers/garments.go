package controllers

import (
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"dressapi/models"
	"dressapi/services"
)

type GarmentsController struct{}

func (controller *GarmentsController) GarmentRoutes(g *echo.Group) {
	g.GET("", controller.ListGarments)
	g.GET("/categories", controller.ListCategories)
}

// ListGarments is the dropdown-change path: a pure catalog lookup with no
// model call involved.
func (controller *GarmentsController) ListGarments(c echo.Context) error {
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}
	filter := models.GarmentFilter{
		Category: services.StrPointer(c.QueryParam("category")),
		Occasion: services.StrPointer(c.QueryParam("occasion")),
	}
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		filter.Keywords = strings.Fields(strings.ToLower(q))
	}
	garments, err := models.FindGarments(db, filter)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to look up garments"})
	}
	return c.JSON(http.StatusOK, models.GarmentListOut{Garments: models.GarmentCards(garments)})
}

func (controller *GarmentsController) ListCategories(c echo.Context) error {
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}
	categories, err := models.ListCategories(db)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load categories"})
	}
	return c.JSON(http.StatusOK, models.CategoriesOut{Categories: categories})
}
