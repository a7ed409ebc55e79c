package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func loadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Please set BOT_TOKEN in .env")
	}

	adminEnv := os.Getenv("ADMIN_TELEGRAM_ID")
	if adminEnv == "" {
		log.Fatal("Please set ADMIN_TELEGRAM_ID in .env")
	}
	adminID, err := strconv.ParseInt(adminEnv, 10, 64)
	if err != nil {
		log.Fatal("Invalid ADMIN_TELEGRAM_ID:", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// CHANNEL_ID is optional; when unset the subscription gate is disabled.
	var channelID int64
	if env := os.Getenv("CHANNEL_ID"); env != "" {
		channelID, err = strconv.ParseInt(env, 10, 64)
		if err != nil {
			log.Fatal("Invalid CHANNEL_ID:", err)
		}
	}

	moviesFile := os.Getenv("MOVIES_FILE")
	if moviesFile == "" {
		moviesFile = "movies.json"
	}

	return Config{
		BotToken:   token,
		AdminID:    adminID,
		Port:       port,
		ChannelID:  channelID,
		MoviesFile: moviesFile,
	}
}
