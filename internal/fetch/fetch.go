package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Result is the outcome of one acquisition attempt. Empty Data with a
// non-empty Reason means the source was unavailable; callers branch to
// the fallback generator instead of treating that as an error.
type Result struct {
	Data   []byte
	Reason string
}

// Unavailable reports whether the attempt yielded no usable document.
func (r Result) Unavailable() bool {
	return len(r.Data) == 0
}

// Download performs a single best-effort GET of the catalog URL, bounded
// by timeout. No retries: this is a convenience fetch, not a guaranteed
// data source. Every failure mode (dial error, timeout, non-200 status,
// truncated body) collapses into an unavailable Result — nothing is
// raised past this boundary.
func Download(ctx context.Context, logger zerolog.Logger, url string, timeout time.Duration) Result {
	logger.Info().Str("url", url).Msg("downloading CCI mapping")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return unavailable(logger, fmt.Sprintf("build request: %v", err))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return unavailable(logger, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unavailable(logger, fmt.Sprintf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return unavailable(logger, fmt.Sprintf("read body: %v", err))
	}

	logger.Info().Int("bytes", len(data)).Msg("download complete")
	return Result{Data: data}
}

func unavailable(logger zerolog.Logger, reason string) Result {
	logger.Warn().Str("reason", reason).Msg("CCI source unavailable, fallback data will be used")
	return Result{Reason: reason}
}
