package main

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Config struct {
	BotToken   string
	AdminID    int64
	Port       string
	ChannelID  int64
	MoviesFile string
}

type Movie struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        string `json:"year"`
	FileID      string `json:"file_id"`
}

type Catalog struct {
	movies   map[string]Movie
	mutex    sync.RWMutex
	filename string
}

type dialogStep int

const (
	stepAwaitID dialogStep = iota
	stepAwaitTitle
	stepAwaitDescription
	stepAwaitYear
	stepAwaitDeleteID
	stepAwaitVideoTarget
)

// Session holds the in-progress state of one admin flow for one chat.
// Sessions live in memory only and are dropped on restart.
type Session struct {
	Step        dialogStep
	ID          string
	Title       string
	Description string
	Year        string
	FileID      string
}

type DialogEngine struct {
	sessions map[int64]*Session
	mutex    sync.Mutex
	catalog  *Catalog
}

type reply struct {
	text      string
	fileID    string
	parseMode string
	markup    *tgbotapi.InlineKeyboardMarkup
}

type App struct {
	config  Config
	catalog *Catalog
	dialogs *DialogEngine
	bot     *tgbotapi.BotAPI
	gate    SubscriptionChecker
	ctx     context.Context
	cancel  context.CancelFunc
}
