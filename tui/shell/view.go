package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/homeshell/homepage"
)

// View implements tea.Model. The layout mirrors a dual-pane settings
// screen: the homepage surfaces on the left, the deep-linked
// destination on the right.
func (m Model) View() string {
	if m.width > 0 && m.width < 40 {
		return "Terminal too small. Please resize."
	}

	primary := m.renderPrimaryPane()

	if m.layout.secondary == nil {
		return primary + m.renderFooter()
	}

	secondary := m.renderSecondaryPane()
	panes := lipgloss.JoinHorizontal(lipgloss.Top, primary, secondary)
	return panes + m.renderFooter()
}

func (m Model) renderPrimaryPane() string {
	container := m.layout.ref(homepage.ViewHomepageContainer)
	if !container.Visible() {
		// Staged reveal in progress: hold the surface blank rather than
		// flashing a partially loaded homepage.
		return m.theme.PaneBox.Render(m.theme.Muted.Render("Loading..."))
	}

	var sections []string
	sections = append(sections, m.theme.Title.Render("Settings"))

	if panel := m.renderSuggestions(); panel != "" {
		sections = append(sections, panel)
	}
	if cards := m.renderContextualCards(); cards != "" {
		sections = append(sections, cards)
	}
	sections = append(sections, m.renderMenu())

	return m.theme.PaneBox.Render(strings.Join(sections, "\n\n"))
}

func (m Model) renderSuggestions() string {
	mount := m.layout.ref(homepage.ViewSuggestions)
	if !mount.mounted || !mount.Visible() {
		return ""
	}
	panel, ok := mount.descriptor.(SuggestionsView)
	if !ok || len(panel.Items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Accent.Render("Suggestions"))
	for _, item := range panel.Items {
		b.WriteString("\n  " + item)
	}
	return b.String()
}

func (m Model) renderContextualCards() string {
	mount := m.layout.ref(homepage.ViewContextualCards)
	if !mount.mounted || !mount.Visible() {
		return ""
	}
	return m.theme.CardBox.Render(m.theme.Muted.Render("Contextual cards"))
}

func (m Model) renderMenu() string {
	highlight := ""
	if top, ok := m.layout.ref(homepage.ViewTopLevel).descriptor.(homepage.TopLevelView); ok {
		highlight = top.HighlightMenuKey
	}

	var b strings.Builder
	for i, entry := range m.menu {
		line := "  " + entry.Title
		switch {
		case i == m.cursor:
			line = m.theme.Selected.Render("> " + entry.Title)
		case entry.Key == highlight:
			line = m.theme.Highlight.Render("  " + entry.Title)
		}
		b.WriteString(line)
		if i < len(m.menu)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderSecondaryPane() string {
	req := m.layout.secondary

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(req.Component.Class))
	b.WriteString("\n" + m.theme.Muted.Render(req.Component.String()))
	if req.Action != "" {
		b.WriteString("\n" + fmt.Sprintf("action: %s", req.Action))
	}
	if req.Data != "" {
		b.WriteString("\n" + fmt.Sprintf("data: %s", req.Data))
	}
	return m.theme.PaneBox.Render(b.String())
}

func (m Model) renderFooter() string {
	var parts []string
	if m.status != "" {
		parts = append(parts, m.status)
	}
	for _, binding := range m.keys.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
	}
	return "\n" + m.theme.StatusBar.Render(strings.Join(parts, "  "))
}
