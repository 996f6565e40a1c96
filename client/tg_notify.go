package client

import (
	"github.com/donething/utils-go/dotgpush"
	"sync"
)

var (
	// TG 通知机器人和 chat id
	tg         *dotgpush.TGBot
	noChatIDTG string
	tgMu       sync.Mutex
)

// InitNotify 设置通知机器人。token 或 chatID 为空时不发送通知
func InitNotify(token string, chatID string) {
	tgMu.Lock()
	defer tgMu.Unlock()
	tg = nil
	noChatIDTG = chatID
	if token != "" && chatID != "" {
		tg = dotgpush.NewTGBot(token)
	}
}

// Notify 发送 TG 通知
func Notify(msg string) error {
	tgMu.Lock()
	bot, chatID := tg, noChatIDTG
	tgMu.Unlock()
	if bot == nil {
		return nil
	}
	_, err := bot.SendMessage(chatID, msg)
	return err
}
