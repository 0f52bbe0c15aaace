package models

// NotAvailable is shown wherever a value is missing.
const NotAvailable = "N/A"

// ReleaseSummary is our internal representation of a release, containing
// just the figures the report needs.
type ReleaseSummary struct {
	Version   string
	Date      string
	Downloads int64
	Assets    int
	Windows   bool
	MacOS     bool
}

// Platforms returns the platforms a release ships for, or nil if none of
// its assets could be matched.
func (s ReleaseSummary) Platforms() []string {
	var p []string
	if s.Windows {
		p = append(p, "Windows")
	}
	if s.MacOS {
		p = append(p, "macOS")
	}
	return p
}
