// Package buildinfo exposes version metadata stamped at link time.
//
// The variables are set via -ldflags, e.g.:
//
//	go build -ldflags "-X 'github.com/mycomarket/mycomarket-go/internal/buildinfo.BuildVersion=v1.2.0'"
package buildinfo

import (
	"fmt"
	"io"
)

// Populated by the linker; "N/A" when built without the ldflags.
var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

// PrintBuildData writes the stamped build metadata to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", BuildVersion)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", BuildCommit)
}
