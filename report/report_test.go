package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/codingconcepts/dlstats/models"
	"github.com/codingconcepts/dlstats/stats"
)

func sampleReleases() []models.GitRelease {
	return []models.GitRelease{
		{TagName: "v1.0", PublishedAt: "not-a-date", Assets: []models.GitAsset{
			{Name: "app-win.zip", DownloadCount: 10},
		}},
		{TagName: "v2.0", PublishedAt: "2024-03-01T10:20:30Z", Assets: []models.GitAsset{
			{Name: "app-macos.zip", DownloadCount: 5},
			{Name: "app-win.zip", DownloadCount: 3},
		}},
		{TagName: "v0.9", PublishedAt: "2023-12-24T08:00:00Z", Assets: []models.GitAsset{
			{Name: "source.tar.gz", DownloadCount: 1234567},
		}},
		{TagName: "v0.8", PublishedAt: "2023-11-01T00:00:00+02:00"},
	}
}

const fullReport = `==========================================================================================
📊 Download Statistics for Leadaxe/singbox-launcher
==========================================================================================

Version      Release Date          Downloads   Assets Platforms      
------------------------------------------------------------------------------------------
v2.0         2024-03-01 10:20              8        2 Windows, macOS 
v1.0         not-a-date                   10        1 Windows        
v0.9         2023-12-24 08:00      1,234,567        1 N/A            
v0.8         2023-11-01 00:00              0        0 N/A            
------------------------------------------------------------------------------------------
TOTAL                              1,234,585                         
==========================================================================================

📈 Summary:
   Total releases: 4
   Total downloads: 1,234,585
   Average downloads per release: 308,646

==========================================================================================
🆕 Latest Release
==========================================================================================
   🏷️  Version:     v2.0
   📅 Date:         2024-03-01 10:20
   ⬇️  Downloads:    8
   📦 Assets:       2
   💻 Platforms:    Windows, macOS

==========================================================================================
🏆 Top 3 Releases by Downloads
==========================================================================================
🥇 v0.9            1,234,567 downloads (2023-12-24 08:00)
🥈 v1.0                   10 downloads (not-a-date)
🥉 v2.0                    8 downloads (2024-03-01 10:20)

`

func TestRender(t *testing.T) {
	summaries, total := stats.Summarize(sampleReleases())
	stats.SortByVersion(summaries)

	var buf bytes.Buffer
	err := Render(&buf, Report{
		Project:  "Leadaxe/singbox-launcher",
		Releases: summaries,
		Total:    total,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := buf.String(); got != fullReport {
		gotLines := strings.Split(got, "\n")
		wantLines := strings.Split(fullReport, "\n")
		for i := 0; i < len(gotLines) && i < len(wantLines); i++ {
			if gotLines[i] != wantLines[i] {
				t.Fatalf("line %d:\n got %q\nwant %q", i+1, gotLines[i], wantLines[i])
			}
		}
		t.Fatalf("got %d lines; want %d", len(gotLines), len(wantLines))
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Report{Project: "Leadaxe/singbox-launcher"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := buf.String(); got != "No releases found\n" {
		t.Fatalf("got %q; want the no releases line only", got)
	}
}

func TestRender_FooterMatchesGrandTotal(t *testing.T) {
	summaries, total := stats.Summarize(sampleReleases())

	var buf bytes.Buffer
	if err := Render(&buf, Report{Project: "x/y", Releases: summaries, Total: total}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var footer string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(l, "TOTAL") {
			footer = l
			break
		}
	}
	if !strings.Contains(footer, FormatNumber(total)) {
		t.Fatalf("footer %q doesn't contain grand total %s", footer, FormatNumber(total))
	}
}

func TestRender_TopFewerThanThree(t *testing.T) {
	summaries := []models.ReleaseSummary{
		{Version: "v1.0", Date: "2024-01-01 00:00", Downloads: 1},
		{Version: "v0.1", Date: "2023-01-01 00:00", Downloads: 7},
	}

	var buf bytes.Buffer
	if err := Render(&buf, Report{Project: "x/y", Releases: summaries, Total: 8}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	top := out[strings.Index(out, "🏆"):]
	if !strings.Contains(top, "🥇 v0.1") || !strings.Contains(top, "🥈 v1.0") {
		t.Fatalf("unexpected ranking:\n%s", top)
	}
	if strings.Contains(top, "🥉") {
		t.Fatalf("third medal rendered for two releases:\n%s", top)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%d)=%q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestMedal(t *testing.T) {
	want := []string{"🥇", "🥈", "🥉", "  ", "  "}
	for i, w := range want {
		if got := Medal(i); got != w {
			t.Fatalf("Medal(%d)=%q; want %q", i, got, w)
		}
	}
}

func TestPlatforms(t *testing.T) {
	cases := []struct {
		in   models.ReleaseSummary
		want string
	}{
		{models.ReleaseSummary{}, "N/A"},
		{models.ReleaseSummary{Windows: true}, "Windows"},
		{models.ReleaseSummary{MacOS: true}, "macOS"},
		{models.ReleaseSummary{Windows: true, MacOS: true}, "Windows, macOS"},
	}
	for _, tc := range cases {
		if got := Platforms(tc.in); got != tc.want {
			t.Fatalf("Platforms(%+v)=%q; want %q", tc.in, got, tc.want)
		}
	}
}
