package views

import (
	"fmt"
	"strings"
)

type ChatPanelData struct {
	Transcript  string
	InputView   string
	Thinking    string
	Suggestions []string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderChatPanel(data ChatPanelData) string {
	var b strings.Builder
	b.WriteString(data.Transcript)
	b.WriteString("\n")
	if data.Thinking != "" {
		b.WriteString(data.Thinking + "\n")
	}
	b.WriteString(data.InputView)
	if len(data.Suggestions) > 0 {
		b.WriteString("\n" + RenderSuggestions(data.Suggestions))
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("try:\n")
	for _, s := range suggestions {
		b.WriteString("  • " + s + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
