// Package buildinfo reports the version stamped into a binary.
package buildinfo

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/dmitrijs2005/sealkeeper/internal/buildinfo.buildVersion=...".
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// Resolve returns version, date and commit. Values missing from ldflags
// are taken from the module build info when present.
func Resolve(info *debug.BuildInfo) (version, date, commit string) {
	version, date, commit = buildVersion, buildDate, buildCommit
	if info == nil {
		return
	}
	if version == "N/A" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "N/A" && s.Value != "" {
				commit = s.Value
				if len(commit) > 7 {
					commit = commit[:7]
				}
			}
		case "vcs.time":
			if date == "N/A" && s.Value != "" {
				date = s.Value
			}
		}
	}
	return
}

func PrintBuildData(w io.Writer) {
	info, _ := debug.ReadBuildInfo()
	version, date, commit := Resolve(info)
	fmt.Fprintf(w, "Build version: %s\n", version)
	fmt.Fprintf(w, "Build date: %s\n", date)
	fmt.Fprintf(w, "Build commit: %s\n", commit)
}
