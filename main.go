package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	config := loadConfig()

	bot, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		log.Fatal("Failed to create Telegram bot:", err)
	}
	log.Printf("Authorized on account %s", bot.Self.UserName)

	catalog := NewCatalog(config.MoviesFile)
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		config:  config,
		catalog: catalog,
		dialogs: NewDialogEngine(catalog),
		bot:     bot,
		ctx:     ctx,
		cancel:  cancel,
	}
	if config.ChannelID != 0 {
		app.gate = newChannelGate(bot, config.ChannelID)
	}

	go app.handleTelegramUpdates()

	srv := &http.Server{Addr: ":" + config.Port, Handler: app.routes()}
	go func() {
		log.Printf("Starting HTTP server on :%s", config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")
	cancel()
	bot.StopReceivingUpdates()
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("Shutdown complete")
}
