package commands

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codingconcepts/dlstats/models"
	"go.uber.org/zap"
)

const (
	// GitHubAPI is the base URL of the GitHub REST API.
	GitHubAPI = "https://api.github.com"

	// Owner and Repo identify the project whose releases are reported on.
	Owner = "Leadaxe"
	Repo  = "singbox-launcher"

	acceptHeader = "application/vnd.github.v3+json"
	userAgent    = "singbox-launcher/1.0"
)

// NewClient returns an HTTP client with a fixed, request-wide timeout. When
// insecureSkipVerify is set the client accepts any TLS certificate; this
// exists for sandboxes that intercept TLS and must never be the default in a
// production build.
func NewClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	t := http.DefaultTransport.(*http.Transport).Clone()
	if insecureSkipVerify {
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: t,
	}
}

func releasesURL(baseURL, owner, repo string) string {
	return fmt.Sprintf("%s/repos/%s/%s/releases", strings.TrimRight(baseURL, "/"), owner, repo)
}

func getReleases(ctx context.Context, c *http.Client, logger *zap.Logger, url string) ([]models.GitRelease, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, models.NewTransportError("creating releases request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)

	logger.Debug("fetching releases", zap.String("url", url))

	resp, err := c.Do(req)
	if err != nil {
		return nil, models.NewTransportError("fetching releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if until, ok := models.ParseRateLimitResetTime(resp.Header, time.Now()); ok {
			return nil, models.NewTransportError("fetching releases: %s (rate-limit exceeded, try again in %s)", resp.Status, until)
		}
		return nil, models.NewTransportError("fetching releases: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewTransportError("reading releases: %w", err)
	}

	var releases []models.GitRelease
	if err = json.Unmarshal(body, &releases); err != nil {
		return nil, models.NewDecodeError("%w", err)
	}

	logger.Debug("fetched releases", zap.Int("count", len(releases)), zap.Int("bytes", len(body)))
	return releases, nil
}
