package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-task-sync/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// styles are bound to the writer they render for, so colors are dropped when
// output is piped or captured.
type styles struct {
	title lipgloss.Style
	key   lipgloss.Style
	id    lipgloss.Style
	alert lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title: r.NewStyle().Bold(true),
		key:   r.NewStyle().Foreground(lipgloss.Color("12")),
		id:    r.NewStyle().Faint(true),
		alert: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// print writes text to the command output and, with --copy, to the
// clipboard.
func (a *App) print(cmd *cobra.Command, text string) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
		return err
	}
	if !a.copyResult {
		return nil
	}

	if err := a.clipboard(text); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	a.logger.Debug().Int("bytes", len(text)).Msg("result copied to clipboard")

	return nil
}

// printJSON prints v as indented JSON. Absent lookups arrive as nil and
// print null.
func (a *App) printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return a.print(cmd, string(data))
}

func renderKeys(st styles, keys []string) string {
	if len(keys) == 0 {
		return st.id.Render("(no element types)")
	}

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, st.key.Render(k))
	}

	return strings.Join(lines, "\n")
}

func renderProjects(st styles, projects []models.Project) string {
	if len(projects) == 0 {
		return st.id.Render("(no projects)")
	}

	width := 0
	for _, p := range projects {
		width = max(width, lipgloss.Width(p.Name))
	}
	nameStyle := st.title.Width(width + 2)

	lines := make([]string, 0, len(projects))
	for _, p := range projects {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(p.Name),
			st.id.Render(fmt.Sprint(p.ID)),
		))
	}

	return strings.Join(lines, "\n")
}

func renderBuildInfo(st styles, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(st.title.Render("tasksync"))
	b.WriteString("\n")
	b.WriteString("Build version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Build date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Build commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
