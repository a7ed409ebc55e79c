package main

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const recheckCallback = "check_subscription"

func (app *App) handleTelegramUpdates() {
	log.Println("Starting Telegram updates handler")
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := app.bot.GetUpdatesChan(u)

	for update := range updates {
		select {
		case <-app.ctx.Done():
			log.Println("Telegram updates handler stopping")
			return
		default:
		}

		app.handleUpdate(update)
	}
}

func (app *App) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic in update handler: %v", r)
			if update.Message != nil {
				msg := tgbotapi.NewMessage(update.Message.Chat.ID, "❌ Ichki xatolik. Qayta urinib ko'ring.")
				app.bot.Send(msg)
			}
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		app.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		if r := app.routeMessage(update.Message); r != nil {
			app.send(update.Message.Chat.ID, r)
		}
	}
}

// routeMessage classifies one inbound message and returns the reply for
// it, or nil when the message is ignored.
func (app *App) routeMessage(msg *tgbotapi.Message) *reply {
	if msg.From == nil {
		return nil
	}
	chatID := msg.Chat.ID
	isAdmin := msg.From.ID == app.config.AdminID

	if msg.Video != nil {
		if !isAdmin {
			return nil
		}
		return &reply{text: app.dialogs.StartVideoAttach(chatID, msg.Video.FileID)}
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			return app.startReply(msg.From.ID)
		case "addmovie":
			if !isAdmin {
				return &reply{text: "❌ Siz admin emassiz."}
			}
			return &reply{text: app.dialogs.StartAdd(chatID)}
		case "delete":
			if !isAdmin {
				return &reply{text: "❌ Siz admin emassiz."}
			}
			return &reply{text: app.dialogs.StartDelete(chatID)}
		}
		return nil
	}

	text := strings.TrimSpace(msg.Text)

	if app.dialogs.Active(chatID) {
		return &reply{text: app.dialogs.Advance(chatID, text)}
	}

	if isLookupRequest(text) {
		return lookupReply(app.catalog, text)
	}

	return nil
}

func (app *App) startReply(userID int64) *reply {
	if app.gate != nil && userID != app.config.AdminID {
		subscribed, err := app.gate.IsSubscribed(userID)
		if err != nil {
			log.Printf("Error checking subscription for %d: %v", userID, err)
			return &reply{text: "⚠️ Obunani tekshirib bo'lmadi. Keyinroq urinib ko'ring."}
		}
		if !subscribed {
			markup := tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("✅ Obunani tekshirish", recheckCallback),
				),
			)
			return &reply{
				text:   "❗ Botdan foydalanish uchun kanalga obuna bo'ling.",
				markup: &markup,
			}
		}
	}
	return &reply{text: "🎥 Salom! Kinoning raqamini yuboring (masalan 202)"}
}

func (app *App) handleCallback(cq *tgbotapi.CallbackQuery) {
	if _, err := app.bot.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Printf("Error answering callback query: %v", err)
	}
	if cq.Data != recheckCallback || cq.Message == nil {
		return
	}
	app.send(cq.Message.Chat.ID, app.startReply(cq.From.ID))
}

func (app *App) send(chatID int64, r *reply) {
	var msg tgbotapi.Chattable
	if r.fileID != "" {
		video := tgbotapi.NewVideo(chatID, tgbotapi.FileID(r.fileID))
		video.Caption = r.text
		video.ParseMode = r.parseMode
		msg = video
	} else {
		text := tgbotapi.NewMessage(chatID, r.text)
		text.ParseMode = r.parseMode
		if r.markup != nil {
			text.ReplyMarkup = *r.markup
		}
		msg = text
	}

	if _, err := app.bot.Send(msg); err != nil {
		log.Printf("Error sending Telegram message: %v", err)
	}
}
