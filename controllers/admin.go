package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"dressapi/languageutil"
	"dressapi/models"
)

// AdminController gates the one mutation path of the catalog. The public
// surface stays read-only.
type AdminController struct{}

func (controller *AdminController) GarmentRoutes(g *echo.Group) {
	g.PATCH("/:id", controller.UpdateGarment)
}

func (controller *AdminController) Login(c echo.Context) error {
	var req models.AdminLoginIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" || req.Password != adminPassword {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Password incorrect"})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to issue token"})
	}
	return c.JSON(http.StatusOK, models.AdminLoginOut{AccessToken: signed})
}

func (controller *AdminController) UpdateGarment(c echo.Context) error {
	var req models.GarmentUpdateIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var garment models.Garment
	if err := db.First(&garment, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Garment not found"})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = languageutil.TitleCaser.String(*req.Category)
	}
	if req.Fabric != nil {
		updates["fabric"] = *req.Fabric
	}
	if req.Sizes != nil {
		updates["sizes"] = *req.Sizes
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Season != nil {
		updates["season"] = *req.Season
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.BuyLink != nil {
		updates["buy_link"] = *req.BuyLink
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}
	if req.Occasion != nil {
		updates["occasion"] = languageutil.TitleCaser.String(*req.Occasion)
	}
	if len(updates) == 0 {
		return c.JSON(http.StatusOK, models.GarmentCard(garment))
	}

	if err := db.Model(&garment).Updates(updates).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update garment"})
	}
	return c.JSON(http.StatusOK, models.GarmentCard(garment))
}
