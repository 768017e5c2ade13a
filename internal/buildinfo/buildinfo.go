// Package buildinfo holds version metadata stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/dmitrijs2005/lovesurprise/internal/buildinfo.Version=v1.0.0"
package buildinfo

import "fmt"

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// String renders the three values on separate lines.
func String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", Version, Date, Commit)
}
