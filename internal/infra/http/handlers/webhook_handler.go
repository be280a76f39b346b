package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/hannkit/lead-gateway/internal/entity"
	"github.com/hannkit/lead-gateway/internal/infra/http/middleware"
	"github.com/hannkit/lead-gateway/internal/infra/integration/telegram"
)

var startCommand = regexp.MustCompile(`^(?i)/start\b`)

type greeting struct {
	Text   string
	Button string
}

var greetings = map[entity.Locale]greeting{
	entity.LocaleRU: {
		Text:   "Откройте форму и отправьте заявку. Мы ответим в ближайшее время.",
		Button: "Открыть форму",
	},
	entity.LocaleEN: {
		Text:   "Open the form and send your request. We'll reply shortly.",
		Button: "Open form",
	},
	entity.LocaleZH: {
		Text:   "打开表单并提交申请，我们会尽快回复。",
		Button: "打开表单",
	},
}

// BotWebhookHandler greets users of the Telegram bot and deep-links them into
// the mini-app form. Stateless; its only side effect is one outbound
// sendMessage call.
type BotWebhookHandler struct {
	client  *telegram.Client // nil when the bot is not configured
	siteURL string
}

func NewBotWebhookHandler(client *telegram.Client, siteURL string) *BotWebhookHandler {
	return &BotWebhookHandler{
		client:  client,
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

// Handle implements POST /api/tg-webhook. Every POST is acknowledged with 200
// regardless of internal outcome so the platform never redelivers the update.
func (h *BotWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var update telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("⚠️ Webhook: bad update payload: %v", err)
		writeJSON(w, http.StatusOK, APIResponse{OK: true})
		return
	}

	h.process(r.Context(), update)

	writeJSON(w, http.StatusOK, APIResponse{OK: true})
}

func (h *BotWebhookHandler) process(ctx context.Context, update telegram.Update) {
	msg := update.Message
	if msg == nil {
		msg = update.EditedMessage
	}
	if msg == nil || msg.Chat.ID == 0 || h.client == nil {
		return
	}

	// Only /start (or an empty message) triggers the greeting; everything
	// else is acknowledged without action.
	text := strings.TrimSpace(msg.Text)
	if text != "" && !startCommand.MatchString(text) {
		return
	}

	locale := entity.DefaultLocale
	if msg.From != nil {
		locale = entity.LocaleFromLanguageCode(msg.From.LanguageCode)
	}
	t := greetings[locale]

	formURL := fmt.Sprintf("%s/tg-form?lang=%s", h.siteURL, locale)

	err := h.client.SendMessage(ctx, telegram.SendMessageInput{
		ChatID: strconv.FormatInt(msg.Chat.ID, 10),
		Text:   t.Text,
		ReplyMarkup: &telegram.ReplyKeyboardMarkup{
			Keyboard: [][]telegram.KeyboardButton{{{
				Text:   t.Button,
				WebApp: &telegram.WebAppInfo{URL: formURL},
			}}},
			ResizeKeyboard:  true,
			OneTimeKeyboard: true,
		},
	})
	if err != nil {
		log.Printf("⚠️ Webhook: greeting send failed: %v", err)
		middleware.RecordIntegrationError("telegram")
	}
}
