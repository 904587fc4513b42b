// Package version holds build metadata stamped at link time.
package version

// Set via -ldflags at build time; defaults cover go-run and test builds.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
