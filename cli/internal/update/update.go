// Package update compares the running version against the latest
// published release.
package update

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"
)

// latestKnown is the newest release baked into this build. A release
// pipeline stamps it; update checks never call out to the network.
var latestKnown = "0.1.0"

// Check reports whether a newer release than current exists. The
// returned string is the latest known version.
func Check(current string) (string, bool, error) {
	cur, err := version.NewVersion(current)
	if err != nil {
		return "", false, fmt.Errorf("invalid version %q: %w", current, err)
	}
	latest, err := version.NewVersion(latestKnown)
	if err != nil {
		return "", false, fmt.Errorf("invalid latest version %q: %w", latestKnown, err)
	}
	return latestKnown, cur.LessThan(latest), nil
}

// DownloadURL returns the release download URL for the current platform.
func DownloadURL(v string) string {
	return fmt.Sprintf(
		"https://github.com/datagrove-io/impala-dialect/releases/download/v%s/impala-dialect-%s-%s",
		v, runtime.GOOS, runtime.GOARCH)
}
