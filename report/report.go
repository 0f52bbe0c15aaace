// Package report renders download statistics as a fixed-width text report.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/codingconcepts/dlstats/models"
	"github.com/codingconcepts/dlstats/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	width = 90

	// TopCount is how many releases the ranking section lists.
	TopCount = 3
)

var (
	heavyRule = strings.Repeat("=", width)
	lightRule = strings.Repeat("-", width)

	medals = []string{"🥇", "🥈", "🥉"}
)

// Report holds everything needed to render the statistics for a project.
type Report struct {
	// Project is the owner/repo the releases belong to.
	Project string

	// Releases must already be in display order, latest first.
	Releases []models.ReleaseSummary

	Total int64
}

// Render writes the report to w in a single write. Releases with no entries
// produce only the "No releases found" line.
func Render(w io.Writer, r Report) error {
	var buf bytes.Buffer
	p := newPrinter(&buf)

	if len(r.Releases) == 0 {
		p.line("No releases found")
	} else {
		p.table(r)
		p.summary(r)
		p.latest(r.Releases[0])
		p.top(stats.Top(r.Releases, TopCount))
	}

	_, err := w.Write(buf.Bytes())
	return err
}

type printer struct {
	buf *bytes.Buffer
	num *message.Printer
}

func newPrinter(buf *bytes.Buffer) *printer {
	return &printer{
		buf: buf,
		num: message.NewPrinter(language.English),
	}
}

// FormatNumber renders n with thousands separators, e.g. 1234567 -> "1,234,567".
func FormatNumber(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

func (p *printer) number(n int64) string {
	return p.num.Sprintf("%d", n)
}

func (p *printer) line(format string, args ...interface{}) {
	if len(args) == 0 {
		p.buf.WriteString(format)
	} else {
		fmt.Fprintf(p.buf, format, args...)
	}
	p.buf.WriteByte('\n')
}

func (p *printer) header(title string) {
	p.line(heavyRule)
	p.line(title)
	p.line(heavyRule)
}

func (p *printer) table(r Report) {
	p.header("📊 Download Statistics for " + r.Project)
	p.line("")

	p.line("%-12s %-18s %12s %8s %-15s", "Version", "Release Date", "Downloads", "Assets", "Platforms")
	p.line(lightRule)

	for _, s := range r.Releases {
		p.line("%-12s %-18s %12s %8d %-15s", s.Version, s.Date, p.number(s.Downloads), s.Assets, Platforms(s))
	}

	p.line(lightRule)
	p.line("%-12s %-18s %12s %8s %-15s", "TOTAL", "", p.number(r.Total), "", "")
	p.line(heavyRule)
	p.line("")
}

func (p *printer) summary(r Report) {
	p.line("📈 Summary:")
	p.line("   Total releases: %d", len(r.Releases))
	p.line("   Total downloads: %s", p.number(r.Total))
	p.line("   Average downloads per release: %s", p.number(stats.Average(r.Total, len(r.Releases))))
	p.line("")
}

func (p *printer) latest(s models.ReleaseSummary) {
	p.header("🆕 Latest Release")
	p.line("   🏷️  Version:     %s", s.Version)
	p.line("   📅 Date:         %s", s.Date)
	p.line("   ⬇️  Downloads:    %s", p.number(s.Downloads))
	p.line("   📦 Assets:       %d", s.Assets)
	p.line("   💻 Platforms:    %s", Platforms(s))
	p.line("")
}

func (p *printer) top(top []models.ReleaseSummary) {
	p.header("🏆 Top 3 Releases by Downloads")
	for i, s := range top {
		p.line("%s %-12s %12s downloads (%s)", Medal(i), s.Version, p.number(s.Downloads), s.Date)
	}
	p.line("")
}

// Medal returns the rank marker for the zero-based position i.
func Medal(i int) string {
	if i >= 0 && i < len(medals) {
		return medals[i]
	}
	return "  "
}

// Platforms joins a release's platforms for display, or returns "N/A".
func Platforms(s models.ReleaseSummary) string {
	p := s.Platforms()
	if len(p) == 0 {
		return models.NotAvailable
	}
	return strings.Join(p, ", ")
}
