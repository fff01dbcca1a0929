package main

import (
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4/middleware"

	"dressapi/controllers"
	"dressapi/dbhelper"
	"dressapi/services"
	"dressapi/telegram"
)

func main() {
	godotenv.Load()

	if os.Getenv("GOOGLE_API_KEY") == "" {
		log.Fatal("GOOGLE_API_KEY environment variable is not set!")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET environment variable is not set!")
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("SENTRY_DSN"),
		Environment:      services.GetEnv("ENV", "local"),
		Release:          "dressapi@1.0.0",
		Debug:            false,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	db := dbhelper.SetupDB()

	var asynqClient *asynq.Client
	if brokerAddr := os.Getenv("ASYNC_BROKER_ADDRESS"); brokerAddr != "" {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: brokerAddr})
	} else {
		log.Println("ASYNC_BROKER_ADDRESS not set, chat logs will not be persisted")
	}

	replyCache, err := services.NewReplyCacheService()
	if err != nil {
		log.Fatal("Failed to initialize reply cache service")
	}
	sessions := services.NewSessionStore()
	assistant := services.GarmentAssistant{Model: services.Flash20}

	e := controllers.SetupServer(db, assistant, sessions, replyCache, asynqClient)
	if os.Getenv("TELEGRAM_BOT") == "true" {

		telegram.RunAssistantBot(db, assistant, sessions)

	} else {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(3)))
		e.Use(middleware.Logger())
		e.Use(middleware.Recover())

		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
		e.Logger.Fatal(e.Start(":" + services.GetEnv("PORT", "8083")))
	}
}
