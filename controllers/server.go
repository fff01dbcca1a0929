package controllers

import (
	"embed"
	"io"
	"net/http"
	"os"
	"text/template"

	"github.com/go-playground/validator"
	"github.com/hibiken/asynq"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"dressapi/models"
	"dressapi/services"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type Template struct {
	templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

//go:embed templates
var embededFiles embed.FS

func SetupServer(
	db *gorm.DB,
	assistant services.AssistantProvider,
	sessions *services.SessionStore,
	replyCache services.ReplyCacheProvider,
	asynqClient *asynq.Client,
) *echo.Echo {

	e := echo.New()
	templates := template.Must(template.ParseFS(embededFiles, "templates/*.html"))
	e.Renderer = &Template{templates: templates}

	v := validator.New()
	v.RegisterValidation("garmentcategory", models.ValidateGarmentCategory)
	e.Validator = &CustomValidator{validator: v}

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__db", db)
			c.Set("__asynqclient", asynqClient)
			return next(c)
		}
	})

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "chat.html", nil)
	})

	chatController := ChatController{Assistant: assistant, Sessions: sessions, ReplyCache: replyCache}
	chatGroup := e.Group("/chat")
	chatController.ChatRoutes(chatGroup)

	garmentsController := GarmentsController{}
	garmentsGroup := e.Group("/garments")
	garmentsController.GarmentRoutes(garmentsGroup)

	adminController := AdminController{}
	adminGroup := e.Group("/admin")
	adminGroup.POST("/login", adminController.Login)
	adminGarmentsGroup := adminGroup.Group("/garments", echojwt.JWT([]byte(os.Getenv("JWT_SECRET"))), AdminMiddleware)
	adminController.GarmentRoutes(adminGarmentsGroup)

	return e
}
