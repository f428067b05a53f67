// Package view renders Travel Diary screens to a terminal with lipgloss.
// Colours come from the domain.Theme handed to New; nothing here reads global
// settings.
package view

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/service"
)

// timeLayout is how entry timestamps are shown.
const timeLayout = "2006-01-02 15:04:05"

// View writes screens to out using the colours of one theme.
type View struct {
	out   io.Writer
	theme domain.Theme
	loc   *time.Location

	title  lipgloss.Style
	label  lipgloss.Style
	muted  lipgloss.Style
	card   lipgloss.Style
	button lipgloss.Style
	danger lipgloss.Style
}

// New returns a View that renders to out in the given theme. Colour output is
// enabled only when out is a terminal.
func New(out io.Writer, theme domain.Theme) *View {
	r := lipgloss.NewRenderer(out)
	r.SetHasDarkBackground(theme.Dark)
	p := theme.Palette()

	return &View{
		out:    out,
		theme:  theme,
		loc:    time.Local,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Text)),
		label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Text)),
		muted:  r.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		card:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(p.Muted)).Padding(0, 1),
		button: r.NewStyle().Foreground(lipgloss.Color(p.ButtonText)).Background(lipgloss.Color(p.ButtonBackground)).Padding(0, 1),
		danger: r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Danger)),
	}
}

// Theme returns the theme the view renders with.
func (v *View) Theme() domain.Theme {
	return v.theme
}

// SetLocation changes the time zone timestamps are shown in.
func (v *View) SetLocation(loc *time.Location) {
	v.loc = loc
}

// Home renders the entry list screen.
func (v *View) Home(entries []domain.TravelEntry) {
	v.println(v.title.Render("Travel Diary"))
	if len(entries) == 0 {
		v.println(v.muted.Render("No Entries yet"))
		return
	}
	for _, e := range entries {
		v.println(v.entryCard(e))
	}
}

func (v *View) entryCard(e domain.TravelEntry) string {
	lines := []string{v.muted.Render(e.ID), "Photo: " + e.ImageURI}
	if e.Coordinates != "" {
		lines = append(lines, v.field("Coordinates", e.Coordinates))
	}
	if e.PlusCode != "" {
		lines = append(lines, v.field("Plus Code", e.PlusCode))
	}
	lines = append(lines,
		v.field("Address", e.Address),
		v.muted.Render(e.RecordedAt().In(v.loc).Format(timeLayout)),
	)
	return v.card.Render(strings.Join(lines, "\n"))
}

// Location renders a formatted address the way the Add Entry screen shows
// it: coordinates and plus code only when known, address only when non-empty.
func (v *View) Location(f domain.FormattedAddress) {
	if f.Coordinates != "" {
		v.println(v.field("Coordinates", f.Coordinates))
	}
	if f.PlusCode != "" {
		v.println(v.field("Plus Code", f.PlusCode))
	}
	if f.Address != "" {
		v.println(v.field("Address", f.Address))
	}
}

// Saved renders the confirmation for a newly saved entry.
func (v *View) Saved(e domain.TravelEntry) {
	v.println(v.button.Render("Saved") + " " + e.ID)
	v.Location(domain.FormattedAddress{Address: e.Address, Coordinates: e.Coordinates, PlusCode: e.PlusCode})
}

// Alert renders an alert dialog.
func (v *View) Alert(a service.Alert) {
	v.println(v.danger.Render(a.Title) + ": " + a.Message)
}

// Info renders a plain status line.
func (v *View) Info(msg string) {
	v.println(v.muted.Render(msg))
}

// Confirm shows a yes/no prompt and reads the answer from in.
// Only "y" or "yes" (any case) confirm; end of input declines.
func (v *View) Confirm(in io.Reader, title, question string) (bool, error) {
	fmt.Fprintf(v.out, "%s\n%s %s ", v.title.Render(title), question, v.muted.Render("[y/N]"))
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("view.Confirm: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Permission, RequestPermission and Schedule let a View stand in as the
// notifier for a terminal session: notifications are printed.

func (v *View) Permission(context.Context) (domain.Permission, error) {
	return domain.PermissionGranted, nil
}

func (v *View) RequestPermission(context.Context) (domain.Permission, error) {
	return domain.PermissionGranted, nil
}

func (v *View) Schedule(_ context.Context, note domain.Notification) error {
	v.println(v.button.Render(note.Title) + " " + note.Body)
	return nil
}

func (v *View) field(name, value string) string {
	return v.label.Render(name+":") + " " + value
}

func (v *View) println(s string) {
	fmt.Fprintln(v.out, s)
}
