package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/printers"
)

const panelWidth = 44

// View renders the dashboard.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewStatsBar())
	b.WriteString("\n")
	b.WriteString(m.viewFilters())
	b.WriteString("\n\n")

	table := m.viewTable()
	if sel := m.selectedEvent(); sel != nil {
		panel := m.viewPanel(sel)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, table, " ", panel))
	} else {
		b.WriteString(table)
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	if m.mode == modeConfirm {
		return b.String() + "\n" + m.viewConfirm()
	}
	return b.String()
}

func (m *Model) viewHeader() string {
	title := "EventInfo Dashboard"
	if m.userName != "" {
		title += "  ·  " + m.userName
	}
	return m.theme.Header.Render(title)
}

func (m *Model) viewStatsBar() string {
	if m.stats == nil {
		return m.theme.Footer.Status.Render("stats unavailable")
	}
	parts := []string{fmt.Sprintf("Total %d", m.stats.Total)}
	for _, s := range api.Statuses() {
		if n, ok := m.stats.ByStatus[s]; ok {
			parts = append(parts, fmt.Sprintf("%s %d", m.theme.Status(s), n))
		}
	}
	return strings.Join(parts, "   ")
}

func (m *Model) viewFilters() string {
	city := m.query.City
	if city == "" {
		city = "all cities"
	}
	status := string(m.query.Status)
	if status == "" {
		status = "all"
	}
	line := fmt.Sprintf("City: %s   Status: %s", city, status)
	if m.query.Keyword != "" {
		line += fmt.Sprintf("   Keyword: %q", m.query.Keyword)
	}
	if m.query.StartDate != "" || m.query.EndDate != "" {
		line += fmt.Sprintf("   Dates: %s..%s", m.query.StartDate, m.query.EndDate)
	}
	if m.mode == modeSearch {
		line += "   " + m.input.View()
	}
	return m.theme.Footer.Status.Render(line)
}

func (m *Model) viewTable() string {
	if m.loading && len(m.events) == 0 {
		return m.theme.Footer.Status.Render("Loading events…")
	}
	if len(m.events) == 0 {
		return m.theme.Footer.Status.Render("No events match the current filters.")
	}

	var b strings.Builder
	b.WriteString("  " + m.theme.Table.Heading.Render(
		fmt.Sprintf("%-36s %-22s %-20s %-10s %s", "Title", "Date", "Venue", "Status", "Source")))
	b.WriteString("\n")

	for i, e := range m.events {
		venue := e.Venue
		if venue == "" {
			venue = "TBA"
		}
		row := fmt.Sprintf("%-36s %-22s %-20s %-10s %s",
			clip(e.Title, 36), printers.FormatDate(e.DateTime), clip(venue, 20),
			string(e.Status), e.Source.Name)

		marker := "  "
		style := m.theme.Table.Row
		if e.ID == m.selectedID {
			style = m.theme.Table.Selected
		}
		if i == m.cursor {
			marker = m.theme.Table.Cursor.Render("> ")
		}
		b.WriteString(marker + style.Render(row) + "\n")
	}
	return b.String()
}

func (m *Model) viewPanel(e *api.EventRecord) string {
	label := m.theme.Panel.Label
	var b strings.Builder

	b.WriteString(m.theme.Panel.Title.Render(e.Title) + "\n\n")
	b.WriteString(label.Render("Status  ") + m.theme.Status(e.Status) + "\n")
	b.WriteString(label.Render("Date    ") + printers.FormatDate(e.DateTime) + "\n")
	venue := e.Venue
	if venue == "" {
		venue = "TBA"
	}
	b.WriteString(label.Render("Venue   ") + venue + "\n")
	if e.Address != "" {
		b.WriteString(label.Render("Address ") + e.Address + "\n")
	}
	b.WriteString(label.Render("Source  ") + e.Source.Name + "\n")

	if e.Description != "" {
		b.WriteString("\n" + wordwrap.String(e.Description, panelWidth-6) + "\n")
	}

	if e.ImportedAt != nil {
		b.WriteString("\n" + label.Render("Imported by ") + e.ImportedBy + "\n")
		b.WriteString(label.Render("Imported at ") + printers.FormatDate(e.ImportedAt) + "\n")
		if e.ImportNotes != "" {
			b.WriteString(label.Render("Notes       ") + e.ImportNotes + "\n")
		}
	}

	if e.Importable() {
		b.WriteString("\n" + m.theme.Footer.Help.Render("press i to import"))
	}

	return m.theme.Panel.Frame.Width(panelWidth).Render(b.String())
}

func (m *Model) viewFooter() string {
	var b strings.Builder
	if m.page.Pages > 1 {
		b.WriteString(m.theme.Footer.Status.Render(
			fmt.Sprintf("Page %d of %d (%d events)", m.page.Page, m.page.Pages, m.page.Total)))
		b.WriteString("\n")
	}
	help := "↑/↓ move · enter select · esc deselect · n/p page · c city · f status · / search · i import · r refresh · q quit"
	b.WriteString(m.theme.Footer.Help.Render(help))
	if m.status != "" {
		b.WriteString("\n" + m.theme.Footer.Status.Render(m.status))
	}
	return b.String()
}

func (m *Model) viewConfirm() string {
	e := findEvent(m.events, m.confirmID)
	title := m.confirmID
	if e != nil {
		title = e.Title
	}
	body := m.theme.Modal.Title.Render("Import this event to the platform?") + "\n\n" +
		m.theme.Modal.Body.Render(title) + "\n\n" +
		m.theme.Footer.Help.Render("y import · n cancel")
	return m.theme.Modal.Frame.Render(body)
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
