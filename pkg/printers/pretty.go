package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/eventscout/pkg/api"
)

// PrettyPrint renders events, stats, and profiles for the terminal.
type PrettyPrint struct {
	ShowID bool
}

const layoutAU = "Mon, 2 Jan 2006 3:04 PM"

func (pp *PrettyPrint) NewLine() {
	fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// TitleWithCount prints a heading with the total the server reported.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(color.Output, title)
	_, _ = c.Fprintf(color.Output, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(color.Output, " event")
	default:
		_, _ = c.Fprintln(color.Output, " events")
	}
}

// Events prints the dashboard listing as a table.
func (pp *PrettyPrint) Events(events ...api.EventRecord) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 42

	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Title"), bold.Sprint("Date"),
			bold.Sprint("Venue"), bold.Sprint("Status"), bold.Sprint("Source"))
	} else {
		tbl.AddRow(bold.Sprint("Title"), bold.Sprint("Date"),
			bold.Sprint("Venue"), bold.Sprint("Status"), bold.Sprint("Source"))
	}

	for _, e := range events {
		venue := e.Venue
		if venue == "" {
			venue = "TBA"
		}
		if pp.ShowID {
			tbl.AddRow(e.ID, e.Title, FormatDate(e.DateTime), venue, StatusBadge(e.Status), e.Source.Name)
		} else {
			tbl.AddRow(e.Title, FormatDate(e.DateTime), venue, StatusBadge(e.Status), e.Source.Name)
		}
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Card prints one public-feed event the way the web cards lay them out.
func (pp *PrettyPrint) Card(e api.EventRecord) {
	t := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = t.Fprintln(color.Output, e.Title)
	_, _ = fmt.Fprintf(color.Output, "  %s\n", FormatDate(e.DateTime))
	if e.Venue != "" {
		_, _ = fmt.Fprintf(color.Output, "  %s\n", e.Venue)
	}
	if e.Description != "" {
		_, _ = fmt.Fprintf(color.Output, "  %s\n", truncate(e.Description, 120))
	}
	_, _ = f.Fprintf(color.Output, "  via %s  %s\n\n", e.Source.Name, e.Source.EventURL)
}

// Stats prints the aggregate counts as a table.
func (pp *PrettyPrint) Stats(stats *api.Stats) {
	if stats == nil {
		return
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Status"), bold.Sprint("Count"))
	tbl.AddRow("total", stats.Total)
	for _, s := range api.Statuses() {
		if n, ok := stats.ByStatus[s]; ok {
			tbl.AddRow(StatusBadge(s), n)
		}
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Profile prints the verified identity.
func (pp *PrettyPrint) Profile(user *api.Profile) {
	if user == nil {
		return
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), user.Name)
	if user.Email != "" {
		tbl.AddRow(bold.Sprint("Email"), user.Email)
	}
	if user.Subject != "" {
		tbl.AddRow(bold.Sprint("Subject"), user.Subject)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// StatusBadge colors a status the way the web dashboard badges them.
func StatusBadge(s api.Status) string {
	switch s {
	case api.StatusNew:
		return color.New(color.FgGreen).Sprint(string(s))
	case api.StatusUpdated:
		return color.New(color.FgYellow).Sprint(string(s))
	case api.StatusImported:
		return color.New(color.FgBlue).Sprint(string(s))
	case api.StatusInactive:
		return color.New(color.FgRed).Sprint(string(s))
	default:
		return string(s)
	}
}

// FormatDate renders an optional instant, or the TBA placeholder.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "Date TBA"
	}
	return t.Local().Format(layoutAU)
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
