// Package stats turns raw GitHub releases into per-release download
// summaries and orders them for the report.
package stats

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/codingconcepts/dlstats/models"
)

const (
	windowsMarker = "win"
	macOSMarker   = "macos"
)

// Summarize builds one summary per release, in input order, along with the
// grand total of downloads across all of them.
func Summarize(releases []models.GitRelease) ([]models.ReleaseSummary, int64) {
	summaries := make([]models.ReleaseSummary, 0, len(releases))
	var total int64

	for _, r := range releases {
		s := Summary(r)
		total += s.Downloads
		summaries = append(summaries, s)
	}

	return summaries, total
}

// Summary aggregates a single release.
func Summary(r models.GitRelease) models.ReleaseSummary {
	s := models.ReleaseSummary{
		Version: orNotAvailable(r.TagName),
		Assets:  len(r.Assets),
	}

	if r.PublishedAt == "" {
		s.Date = models.NotAvailable
	} else {
		s.Date = FormatDate(r.PublishedAt).String()
	}

	for _, a := range r.Assets {
		s.Downloads += a.DownloadCount

		name := strings.ToLower(a.Name)
		if strings.Contains(name, windowsMarker) {
			s.Windows = true
		}
		if strings.Contains(name, macOSMarker) {
			s.MacOS = true
		}
	}

	return s
}

// Average returns the floor of total/count, or 0 when there's nothing to
// divide by.
func Average(total int64, count int) int64 {
	if count <= 0 {
		return 0
	}
	return total / int64(count)
}

// SortByVersion orders summaries by version string, newest first. The
// comparison is lexicographic, so "v10.0" sorts after "v2.0".
func SortByVersion(summaries []models.ReleaseSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Version > summaries[j].Version
	})
}

// SortBySemver orders summaries by semantic version, newest first. Tags that
// aren't semantic versions go last, lexicographically descending.
func SortBySemver(summaries []models.ReleaseSummary) {
	versions := make(map[string]*semver.Version, len(summaries))
	for _, s := range summaries {
		if v, err := semver.NewVersion(s.Version); err == nil {
			versions[s.Version] = v
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, aok := versions[summaries[i].Version]
		b, bok := versions[summaries[j].Version]

		switch {
		case aok && bok:
			return a.GreaterThan(b)
		case aok != bok:
			return aok
		default:
			return summaries[i].Version > summaries[j].Version
		}
	})
}

// Top returns up to n summaries with the most downloads, highest first.
// Summaries with equal downloads keep their relative order. The input is left
// untouched.
func Top(summaries []models.ReleaseSummary, n int) []models.ReleaseSummary {
	if n <= 0 {
		return nil
	}

	top := make([]models.ReleaseSummary, len(summaries))
	copy(top, summaries)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Downloads > top[j].Downloads
	})

	if len(top) > n {
		top = top[:n]
	}
	return top
}

func orNotAvailable(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}
