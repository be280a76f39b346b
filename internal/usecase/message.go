package usecase

import (
	"fmt"
	"html"
	"strings"

	"github.com/hannkit/lead-gateway/internal/entity"
)

// ComposeChatMessage renders the Telegram alert for a lead: one templated
// summary derived deterministically from the normalized fields. User-supplied
// values are escaped so they cannot break the HTML parse mode.
func ComposeChatMessage(lead *entity.Lead) string {
	lines := []string{
		"📩 <b>Новая заявка с hannkit.com</b>",
		"",
		fmt.Sprintf("👤 <b>Имя:</b> %s", escapeOrDash(lead.Name)),
		fmt.Sprintf("✉️ <b>Email:</b> %s", escapeOrDash(lead.Email)),
		fmt.Sprintf("📞 <b>Телефон:</b> %s", escapeOrDash(lead.Phone)),
		fmt.Sprintf("🏷 <b>Язык:</b> %s", lead.Lang.Flag()),
		fmt.Sprintf("🧭 <b>Источник:</b> %s", html.EscapeString(lead.Source)),
	}

	if lead.Note != "" {
		lines = append(lines, fmt.Sprintf("💬 <b>Комментарий:</b> %s", html.EscapeString(lead.Note)))
	}

	lines = append(lines, "", fmt.Sprintf("🕐 %s", lead.ReceivedAt.UTC().Format("2006-01-02 15:04 UTC")))

	return strings.Join(lines, "\n")
}

func escapeOrDash(s string) string {
	if s == "" {
		return "—"
	}
	return html.EscapeString(s)
}
