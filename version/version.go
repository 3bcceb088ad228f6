// Package version reports build information for termview.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the VCS revision recorded by the Go toolchain.
	Revision = readRevision(debug.ReadBuildInfo)
)

// String returns a one-line description of the build suitable for
// --version output.
func String() string {
	return Format(Version, Revision, BuildDate)
}

// Format joins the build fields into the --version line. An empty version
// falls back to the main module version or "devel".
func Format(version, revision, date string) string {
	if version == "" {
		version = moduleVersion(debug.ReadBuildInfo)
	}

	var sb strings.Builder

	sb.WriteString(version)
	sb.WriteString(" (")
	sb.WriteString(revision)

	if date != "" {
		sb.WriteString(", built ")
		sb.WriteString(date)
	}

	sb.WriteString(", ")
	sb.WriteString(runtime.Version())
	sb.WriteString(" ")
	sb.WriteString(runtime.GOOS)
	sb.WriteString("/")
	sb.WriteString(runtime.GOARCH)
	sb.WriteString(")")

	return sb.String()
}

func moduleVersion(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "devel"
	}

	return info.Main.Version
}

func readRevision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	buildInfo, ok := read()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
