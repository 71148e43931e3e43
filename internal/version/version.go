// Package version carries the build metadata stamped into archdoc binaries.
package version

import "github.com/fatih/color"

// Populated at build time via -ldflags, e.g.
//
//	go build -ldflags "-X archdoc/internal/version.GitCommit=$(git rev-parse HEAD)"
var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit is the hash of the commit the binary was built from.
	GitCommit = ""

	// GitMessage is that commit's subject line.
	GitMessage = ""

	// BuildDate is the build timestamp in ISO-8601.
	BuildDate = ""
)
