// internal/domain/telegram/client.go
package telegram

// Sender delivers a plain text message to a chat. It is the only messaging
// capability the poller depends on.
type Sender interface {
	SendMessage(chatID int64, text string) error
}
