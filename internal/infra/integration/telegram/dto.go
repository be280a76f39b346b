package telegram

// SendMessageInput covers the subset of the Bot API sendMessage call this
// service uses: HTML-formatted alerts into a (possibly topic-scoped) chat and
// greeting replies carrying a web_app keyboard.
type SendMessageInput struct {
	ChatID                string
	Text                  string
	ParseMode             string
	DisableWebPagePreview bool
	MessageThreadID       int
	ReplyMarkup           *ReplyKeyboardMarkup
}

type ReplyKeyboardMarkup struct {
	Keyboard        [][]KeyboardButton `json:"keyboard"`
	ResizeKeyboard  bool               `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard bool               `json:"one_time_keyboard,omitempty"`
}

type KeyboardButton struct {
	Text   string      `json:"text"`
	WebApp *WebAppInfo `json:"web_app,omitempty"`
}

type WebAppInfo struct {
	URL string `json:"url"`
}

type sendMessageRequest struct {
	ChatID                string               `json:"chat_id"`
	Text                  string               `json:"text"`
	ParseMode             string               `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool                 `json:"disable_web_page_preview,omitempty"`
	MessageThreadID       int                  `json:"message_thread_id,omitempty"`
	ReplyMarkup           *ReplyKeyboardMarkup `json:"reply_markup,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// Update is the inbound webhook envelope. Only the fields the greeting flow
// reads are modeled; everything else is acknowledged and dropped.
type Update struct {
	UpdateID      int64    `json:"update_id"`
	Message       *Message `json:"message"`
	EditedMessage *Message `json:"edited_message"`
}

type Message struct {
	Chat Chat   `json:"chat"`
	From *User  `json:"from"`
	Text string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type User struct {
	LanguageCode string `json:"language_code"`
}
