package models

// GitRelease describes a particular version of a release, as returned by
// GET /repos/{owner}/{repo}/releases.
//
// PublishedAt is kept as the raw string so a malformed timestamp can still be
// shown to the user.
type GitRelease struct {
	TagName     string     `json:"tag_name"`
	Name        string     `json:"name"`
	PublishedAt string     `json:"published_at"`
	Assets      []GitAsset `json:"assets"`
}

// GitAsset describes the file in a particular version of a release.
type GitAsset struct {
	Name               string `json:"name"`
	ContentType        string `json:"content_type"`
	State              string `json:"state"`
	Size               int64  `json:"size"`
	DownloadCount      int64  `json:"download_count"`
	BrowserDownloadURL string `json:"browser_download_url"`
}
