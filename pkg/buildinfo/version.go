// Package buildinfo carries version information stamped in at build time.
//
//	go build -ldflags "-X github.com/matzehuels/roadmap/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/roadmap/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/roadmap/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/roadmap
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the build information as "version / commit / built" lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the --version template used by the root command.
func Template() string {
	return "{{.Name}} version " + Version + "\n" + "commit: " + Commit + "\nbuilt: " + Date + "\n"
}
