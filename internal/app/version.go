package app

import "fmt"

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/notedefs/internal/app.Version=1.0.0" ./cmd/add-definition
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the add-definition build string for startup logs.
func BuildVersion() string {
	return fmt.Sprintf("add-definition %s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
