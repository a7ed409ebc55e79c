package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SubscriptionChecker reports whether a user may use the bot. An error
// means the check itself failed; access is denied until it succeeds.
type SubscriptionChecker interface {
	IsSubscribed(userID int64) (bool, error)
}

type channelGate struct {
	bot       *tgbotapi.BotAPI
	channelID int64
}

func newChannelGate(bot *tgbotapi.BotAPI, channelID int64) *channelGate {
	return &channelGate{bot: bot, channelID: channelID}
}

func (g *channelGate) IsSubscribed(userID int64) (bool, error) {
	member, err := g.bot.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: g.channelID,
			UserID: userID,
		},
	})
	if err != nil {
		return false, err
	}

	switch member.Status {
	case "member", "administrator", "creator":
		return true, nil
	}
	return false, nil
}
