package telegram

import (
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"adcheck/api/internal/factcheck"
)

type Router struct {
	Bot    *tgbotapi.BotAPI
	Engine factcheck.Engine

	// sendText overrides outbound delivery (injectable for tests);
	// nil means send through Bot.
	sendText func(chatID int64, text string)

	// inFlight holds chat IDs with an analysis in progress so a user cannot
	// double-submit while waiting. Chat-local courtesy, not an API guarantee.
	inFlight sync.Map
}

// HandleUpdate is called on its own goroutine per update; long analyses in
// one chat must not stall the others.
func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		switch upd.Message.Command() {
		case "start":
			r.send(cid, "Send me a photo of an advertisement and I will fact-check its claims.\nCommands: /health")
		case "health":
			r.send(cid, "OK: "+r.Engine.Name())
		default:
			r.send(cid, "Unknown command")
		}
		return
	}

	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}

	if upd.Message.Text != "" {
		r.send(cid, "I only understand ad photos. Send a picture of an advertisement.")
	}
}

func (r *Router) send(chatID int64, text string) {
	if r.sendText != nil {
		r.sendText(chatID, text)
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := r.Bot.Send(msg); err != nil {
		log.Printf("telegram send: %v", err)
	}
}

func (r *Router) sendError(chatID int64, err error) {
	log.Printf("chat %d: %v", chatID, err)
	r.send(chatID, "Something went wrong: "+err.Error())
}
