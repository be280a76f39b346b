package telegram

import "context"

// Notifier posts lead alerts into the operators' chat. It binds the
// destination (chat id, optional forum topic) so callers only supply text.
type Notifier struct {
	client   *Client
	chatID   string
	threadID int
}

func NewNotifier(client *Client, chatID string, threadID int) *Notifier {
	return &Notifier{
		client:   client,
		chatID:   chatID,
		threadID: threadID,
	}
}

func (n *Notifier) SendLeadAlert(ctx context.Context, text string) error {
	return n.client.SendMessage(ctx, SendMessageInput{
		ChatID:                n.chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
		MessageThreadID:       n.threadID,
	})
}
