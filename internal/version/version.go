// Package version reports the build fixen was produced from.
package version

import "fmt"

// Set with -ldflags "-X github.com/example/fixen/internal/version.Version=..."
// (likewise Commit and BuildTime). Unreleased builds report "dev".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the text shown by --version.
func String() string {
	return fmt.Sprintf("fixen %s (commit: %s, built: %s)", Version, short(Commit), BuildTime)
}

// short trims a full commit hash to its usual seven-character form.
func short(commit string) string {
	const n = 7
	if len(commit) <= n {
		return commit
	}
	return commit[:n]
}
