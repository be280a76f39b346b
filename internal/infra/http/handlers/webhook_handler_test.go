package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannkit/lead-gateway/internal/infra/integration/telegram"
)

type capturedSend struct {
	ChatID      string `json:"chat_id"`
	Text        string `json:"text"`
	ReplyMarkup *struct {
		Keyboard [][]struct {
			Text   string `json:"text"`
			WebApp *struct {
				URL string `json:"url"`
			} `json:"web_app"`
		} `json:"keyboard"`
		ResizeKeyboard  bool `json:"resize_keyboard"`
		OneTimeKeyboard bool `json:"one_time_keyboard"`
	} `json:"reply_markup"`
}

func newWebhookFixture(t *testing.T) (*BotWebhookHandler, *int64, *capturedSend) {
	t.Helper()

	var calls int64
	captured := &capturedSend{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	client := telegram.NewClient("test-token", srv.URL)
	return NewBotWebhookHandler(client, "https://hannkit.com/"), &calls, captured
}

func postUpdate(h *BotWebhookHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/tg-webhook", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestWebhookGreetsOnStart(t *testing.T) {
	handler, calls, captured := newWebhookFixture(t)

	w := postUpdate(handler, `{
		"update_id": 10,
		"message": {
			"chat": {"id": 42},
			"from": {"language_code": "en-US"},
			"text": "/start"
		}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp APIResponse
	json.NewDecoder(w.Body).Decode(&resp)
	assert.True(t, resp.OK)

	require.EqualValues(t, 1, *calls)
	assert.Equal(t, "42", captured.ChatID)
	assert.Equal(t, "Open the form and send your request. We'll reply shortly.", captured.Text)

	require.NotNil(t, captured.ReplyMarkup)
	require.Len(t, captured.ReplyMarkup.Keyboard, 1)
	button := captured.ReplyMarkup.Keyboard[0][0]
	assert.Equal(t, "Open form", button.Text)
	require.NotNil(t, button.WebApp)
	assert.Equal(t, "https://hannkit.com/tg-form?lang=en", button.WebApp.URL)
	assert.True(t, captured.ReplyMarkup.ResizeKeyboard)
	assert.True(t, captured.ReplyMarkup.OneTimeKeyboard)
}

func TestWebhookGreetsOnEmptyText(t *testing.T) {
	handler, calls, captured := newWebhookFixture(t)

	postUpdate(handler, `{"message": {"chat": {"id": 7}, "from": {"language_code": "zh-hans"}}}`)

	require.EqualValues(t, 1, *calls)
	assert.Equal(t, "打开表单并提交申请，我们会尽快回复。", captured.Text)
	assert.Equal(t, "https://hannkit.com/tg-form?lang=zh", captured.ReplyMarkup.Keyboard[0][0].WebApp.URL)
}

func TestWebhookDefaultsLocaleToRussian(t *testing.T) {
	handler, calls, captured := newWebhookFixture(t)

	postUpdate(handler, `{"edited_message": {"chat": {"id": 7}, "text": "/start"}}`)

	require.EqualValues(t, 1, *calls)
	assert.Contains(t, captured.ReplyMarkup.Keyboard[0][0].WebApp.URL, "lang=ru")
}

func TestWebhookIgnoresOtherMessages(t *testing.T) {
	handler, calls, _ := newWebhookFixture(t)

	w := postUpdate(handler, `{"message": {"chat": {"id": 7}, "text": "hello there"}}`)

	// Acknowledged but no outbound call.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, *calls)
}

func TestWebhookAcknowledgesMalformedUpdate(t *testing.T) {
	handler, calls, _ := newWebhookFixture(t)

	w := postUpdate(handler, `{not json`)

	// Always 200 so the platform does not redeliver.
	assert.Equal(t, http.StatusOK, w.Code)
	var resp APIResponse
	json.NewDecoder(w.Body).Decode(&resp)
	assert.True(t, resp.OK)
	assert.EqualValues(t, 0, *calls)
}

func TestWebhookAcknowledgesSendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"ok":false,"description":"gateway error"}`))
	}))
	defer srv.Close()

	handler := NewBotWebhookHandler(telegram.NewClient("test-token", srv.URL), "https://hannkit.com")

	w := postUpdate(handler, `{"message": {"chat": {"id": 7}, "text": "/start"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookMethodGate(t *testing.T) {
	handler, _, _ := newWebhookFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tg-webhook", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}
