package commands

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/codingconcepts/dlstats/models"
	"github.com/codingconcepts/dlstats/report"
	"github.com/codingconcepts/dlstats/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Orderings accepted by the --order flag.
const (
	OrderVersion = "version"
	OrderSemver  = "semver"
)

// Stats prints download statistics for the project's releases.
func Stats(c *http.Client, logger *zap.Logger, baseURL string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		order, err := cmd.Flags().GetString("order")
		if err != nil {
			return err
		}

		var sortFn func([]models.ReleaseSummary)
		switch order {
		case OrderVersion:
			sortFn = stats.SortByVersion
		case OrderSemver:
			sortFn = stats.SortBySemver
		default:
			return fmt.Errorf("invalid order %q, must be %q or %q", order, OrderVersion, OrderSemver)
		}

		releases, err := getReleases(cmd.Context(), c, logger.Named("fetch"), releasesURL(baseURL, Owner, Repo))
		if err != nil {
			return err
		}

		summaries, total := stats.Summarize(releases)
		sortFn(summaries)

		logger.Info("aggregated releases",
			zap.Int("releases", len(summaries)),
			zap.Int64("downloads", total),
			zap.String("order", order),
		)

		return report.Render(cmd.OutOrStdout(), report.Report{
			Project:  Owner + "/" + Repo,
			Releases: summaries,
			Total:    total,
		})
	}
}

// Diagnostic formats err as the single line written to stderr before exiting.
func Diagnostic(err error) string {
	var decodeErr *models.DecodeError
	if errors.As(err, &decodeErr) {
		return fmt.Sprintf("Error parsing JSON: %v", decodeErr)
	}
	return fmt.Sprintf("Error: %v", err)
}
