package main

import (
	"fmt"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// A lookup request is 1 to 6 decimal digits and nothing else. Anything
// outside the pattern is not an error, it just falls through the router.
var lookupPattern = regexp.MustCompile(`^\d{1,6}$`)

func isLookupRequest(text string) bool {
	return lookupPattern.MatchString(text)
}

func movieCaption(id string, movie Movie) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎬 <b>%s</b>\n", movie.Title)
	if movie.Year != "" {
		fmt.Fprintf(&b, "Yili: %s\n", movie.Year)
	}
	if movie.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", movie.Description)
	}
	fmt.Fprintf(&b, "\nID: %s", id)
	return b.String()
}

func lookupReply(catalog *Catalog, id string) *reply {
	movie, ok := catalog.Get(id)
	if !ok {
		return &reply{text: fmt.Sprintf("❌ %s raqamli kino topilmadi.", id)}
	}
	return &reply{
		text:      movieCaption(id, movie),
		fileID:    movie.FileID,
		parseMode: tgbotapi.ModeHTML,
	}
}
