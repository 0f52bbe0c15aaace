package version

// Set at build time with -ldflags "-X github.com/codingconcepts/dlstats/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
)
