package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.trai.ch/fontconf/internal/adapters/telemetry"
	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/ui/style"
)

// configView is the printable form of a domain.Config.
type configView struct {
	ID             string        `json:"id"`
	Version        int           `json:"version"`
	RescanInterval int           `json:"rescan_interval"`
	RescanTime     time.Time     `json:"rescan_time"`
	ConfigFiles    []string      `json:"config_files"`
	FontDirs       []string      `json:"font_dirs"`
	CacheDirs      []string      `json:"cache_dirs"`
	FontCount      int           `json:"font_count"`
	Digest         string        `json:"digest"`
	Fonts          []domain.Font `json:"fonts,omitempty"`
}

func newConfigView(cfg *domain.Config, version int, withFonts bool) configView {
	view := configView{
		ID:             cfg.ID,
		Version:        version,
		RescanInterval: int(cfg.RescanInterval / time.Second),
		RescanTime:     cfg.RescanTime,
		ConfigFiles:    cfg.ConfigFiles(),
		FontDirs:       cfg.FontDirs(),
		CacheDirs:      cfg.CacheDirs(),
		FontCount:      cfg.Fonts().Len(),
		Digest:         strconv.FormatUint(cfg.Fonts().Digest(), 16),
	}
	if withFonts {
		for f := range cfg.Fonts().All() {
			view.Fonts = append(view.Fonts, f)
		}
	}
	return view
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderConfig(view configView) string {
	summary := table.NewWriter()
	summary.SetStyle(table.StyleRounded)
	summary.AppendRows([]table.Row{
		{"ID", view.ID},
		{"Version", view.Version},
		{"Rescan interval", formatInterval(view.RescanInterval)},
		{"Last checked", view.RescanTime.Format(time.RFC3339)},
		{"Fonts", view.FontCount},
		{"Digest", view.Digest},
	})

	dirs := table.NewWriter()
	dirs.SetStyle(table.StyleRounded)
	dirs.AppendHeader(table.Row{"Kind", "Path"})
	for _, f := range view.ConfigFiles {
		dirs.AppendRow(table.Row{"config", f})
	}
	for _, d := range view.FontDirs {
		dirs.AppendRow(table.Row{"fonts", d})
	}
	for _, d := range view.CacheDirs {
		dirs.AppendRow(table.Row{"cache", d})
	}

	out := style.Heading("Configuration") + "\n" + summary.Render() + "\n" + dirs.Render()
	if len(view.Fonts) > 0 {
		out += "\n" + renderFonts(view.Fonts)
	}
	return out
}

func renderFonts(fonts []domain.Font) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Path", "Format", "Size"})
	for _, f := range fonts {
		tw.AppendRow(table.Row{f.Path, f.Format, f.Size})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderTimings(timings []telemetry.SpanTiming) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Span", "Duration", "Error"})
	for _, t := range timings {
		tw.AppendRow(table.Row{t.Name, t.Duration.Round(time.Microsecond), t.Err})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func formatInterval(seconds int) string {
	if seconds == 0 {
		return "disabled"
	}
	return fmt.Sprintf("%ds", seconds)
}
