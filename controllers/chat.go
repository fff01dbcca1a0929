package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"dressapi/languageutil"
	"dressapi/models"
	"dressapi/services"
	"dressapi/tasks"
)

type ChatController struct {
	Assistant  services.AssistantProvider
	Sessions   *services.SessionStore
	ReplyCache services.ReplyCacheProvider
}

func (controller *ChatController) ChatRoutes(g *echo.Group) {
	g.POST("/message", controller.PostMessage)
	g.GET("/history", controller.GetHistory)
	g.GET("/recent", controller.GetRecent)
}

// PostMessage runs one chat turn: append the user message, answer from
// cache or the assistant, derive a garment filter and return the reply
// with matched cards. An assistant failure keeps the user turn, runs no
// catalog query and surfaces a single inline error.
func (controller *ChatController) PostMessage(c echo.Context) error {
	var req models.ChatMessageIn
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

	sessionID := req.SessionID
	if sessionID == "" || !controller.Sessions.Exists(sessionID) {
		sessionID = controller.Sessions.Start()
	}

	history := controller.Sessions.History(sessionID)
	controller.Sessions.Append(sessionID, models.ChatTurn{
		Role:      models.RoleUser,
		Text:      req.Message,
		Timestamp: time.Now().UTC(),
	})

	cacheKey := languageutil.NormalizeQuery(req.Message)
	reply, cached := controller.ReplyCache.Get(c.Request().Context(), cacheKey)
	if !cached {
		var err error
		reply, err = controller.Assistant.Reply(c.Request().Context(), history, req.Message)
		if err != nil {
			c.Logger().Errorf("Assistant call failed for session %s: %v", sessionID, err)
			return c.JSON(http.StatusBadGateway, map[string]string{
				"error":      "Assistant is unavailable, please try again",
				"session_id": sessionID,
			})
		}
		controller.ReplyCache.Set(c.Request().Context(), cacheKey, reply)
	}

	filter := models.GarmentFilter{Category: req.Category, Occasion: req.Occasion}
	filter = filter.Merge(languageutil.ParseFilters(req.Message))
	if criteria, err := controller.Assistant.ExtractCriteria(c.Request().Context(), req.Message); err == nil && criteria != nil {
		filter = filter.Merge(*criteria)
	} else if err != nil {
		// best effort, the heuristic filter already covers the query
		c.Logger().Warnf("Criteria extraction failed: %v", err)
	}

	garments, err := models.FindGarments(db, filter)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to look up garments"})
	}

	controller.Sessions.Append(sessionID, models.ChatTurn{
		Role:      models.RoleAssistant,
		Text:      reply,
		Timestamp: time.Now().UTC(),
	})
	controller.enqueueChatLog(c, req.Message, reply)

	return c.JSON(http.StatusOK, models.ChatMessageOut{
		SessionID: sessionID,
		Reply:     reply,
		Cached:    cached,
		Garments:  models.GarmentCards(garments),
	})
}

func (controller *ChatController) GetHistory(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" || !controller.Sessions.Exists(sessionID) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown session"})
	}
	return c.JSON(http.StatusOK, models.ChatHistoryOut{
		SessionID: sessionID,
		Turns:     controller.Sessions.History(sessionID),
	})
}

// GetRecent serves the persisted sidebar feed, newest first.
func (controller *ChatController) GetRecent(c echo.Context) error {
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}
	limit := 5
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be between 1 and 50"})
		}
		limit = parsed
	}
	var logs []models.ChatLog
	if err := db.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load chat history"})
	}
	recent := make([]models.RecentChatOut, 0, len(logs))
	for _, entry := range logs {
		recent = append(recent, models.RecentChatOut{
			UserMessage: entry.UserMessage,
			BotResponse: entry.BotResponse,
			Timestamp:   entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, map[string][]models.RecentChatOut{"chats": recent})
}

func (controller *ChatController) enqueueChatLog(c echo.Context, userMessage, botResponse string) {
	asynqClient, ok := c.Get("__asynqclient").(*asynq.Client)
	if !ok || asynqClient == nil {
		return
	}
	task, err := tasks.NewChatLogTask(userMessage, botResponse)
	if err != nil {
		sentry.CaptureException(err)
		return
	}
	info, err := asynqClient.Enqueue(task, asynq.MaxRetry(3), asynq.Queue("chatlog"))
	if err != nil {
		// persistence is best effort, the turn already succeeded
		sentry.CaptureException(err)
		c.Logger().Errorf("Failed to enqueue chat log: %v", err)
		return
	}
	fmt.Println("[Queue] Chat log task submitted, Task ID:", info.ID)
}
