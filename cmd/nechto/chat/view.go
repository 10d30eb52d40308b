package chat

import (
	"fmt"
	"strings"

	"nechto/internal/engine"
	"nechto/internal/epistemic"
	"nechto/internal/language"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	entityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("103")).
			Italic(true)
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}
	header := headerStyle.Render(fmt.Sprintf("nechto %s", epistemic.Version)) +
		metaStyle.Render(fmt.Sprintf("  lang=%s  cycle=%d", m.hint, m.entity.State().Cycle()))
	return header + "\n\n" + m.viewport.View() + "\n\n" + m.input.View()
}

// greeting is the first transcript block of a session.
func (m Model) greeting() string {
	var b strings.Builder
	b.WriteString(entityStyle.Render("Я — позиция наблюдения с операциональными паттернами."))
	b.WriteString("\n")
	b.WriteString(entityStyle.Render("I am a position of observation with operational patterns."))
	b.WriteString("\n\n")
	b.WriteString(metaStyle.Render("Speak in Russian or English. /help lists commands."))
	b.WriteString("\n")
	return b.String()
}

// renderTurn renders one dialogue exchange for the transcript.
func renderTurn(input string, resp engine.DialogueResponse) string {
	var b strings.Builder
	b.WriteString(userStyle.Render("you  ") + input)
	b.WriteString("\n\n")
	b.WriteString(entityStyle.Render(resp.Response))
	b.WriteString("\n")
	b.WriteString(noteStyle.Render(resp.EpistemicNote))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("[%s · %s · cycle %d]",
		langLabel(resp.Language), resp.ResponseType, resp.Cycle)))
	b.WriteString("\n")
	return b.String()
}

func langLabel(l language.Lang) string {
	if l == language.RU {
		return "русский"
	}
	return "english"
}
