package telegram

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"dressapi/languageutil"
	"dressapi/models"
	"dressapi/services"
)

func EscapeMessage(message string) string {
	r := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"`", "\\`",
	)
	return r.Replace(message)
}

// RunAssistantBot answers garment questions over Telegram with the same
// assistant pipeline the web chat uses. History is kept per chat id.
func RunAssistantBot(db *gorm.DB, assistant services.AssistantProvider, sessions *services.SessionStore) {

	bot, err := tgbotapi.NewBotAPI(os.Getenv("TG_TOKEN"))
	if err != nil {
		println("Error tg bot init")
		log.Panic(err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		log.Printf("[%s] %s", update.Message.From.UserName, update.Message.Text)

		if update.Message.Command() == "start" {
			msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Ask me anything about traditional and modern Indian garments! For example: `I'm attending an Indian wedding, what should I wear?`")
			msg.ParseMode = "markdown"
			bot.Send(msg)
			continue
		}

		sessionID := fmt.Sprintf("tg:%d", update.Message.Chat.ID)
		history := sessions.History(sessionID)
		sessions.Append(sessionID, models.ChatTurn{Role: models.RoleUser, Text: update.Message.Text})

		reply, err := assistant.Reply(context.Background(), history, update.Message.Text)
		if err != nil {
			bot.Send(tgbotapi.NewMessage(update.Message.Chat.ID, "Assistant is unavailable, please try again"))
			continue
		}
		sessions.Append(sessionID, models.ChatTurn{Role: models.RoleAssistant, Text: reply})

		garments, err := models.FindGarments(db, languageutil.ParseFilters(update.Message.Text))
		if err != nil {
			log.Printf("Garment lookup failed for %s: %v", sessionID, err)
		}

		text := strings.Builder{}
		text.WriteString(EscapeMessage(reply))
		if len(garments) > 0 {
			text.WriteString("\n\n*From our collection:*\n")
			for i, garment := range garments {
				if i == 3 {
					break
				}
				text.WriteString(fmt.Sprintf("• %s - $%.2f (%s, %s)\n",
					EscapeMessage(garment.Name), garment.Price, garment.Fabric, garment.Occasion))
				if garment.BuyLink != nil {
					text.WriteString(fmt.Sprintf("  %s\n", *garment.BuyLink))
				}
			}
		}
		msg := tgbotapi.NewMessage(update.Message.Chat.ID, text.String())
		msg.ParseMode = "markdown"
		bot.Send(msg)
	}
}
