// ABOUTME: Version command to display build information
// ABOUTME: Falls back to Go toolchain VCS metadata when release info is absent
package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
}

// VersionInfo contains build information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// SetVersion sets the version information (called from main)
func SetVersion(version, commit, date string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.Date = date
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the mailvec version and the build it came from.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildLine())
		},
	}

	return cmd
}

// buildLine assembles the version string. Release builds stamp version,
// commit, and date through SetVersion; a plain `go install` gets whatever
// VCS metadata the toolchain embedded instead.
func buildLine() string {
	v := versionInfo
	if v.Commit == "none" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					v.Commit = s.Value
				case "vcs.time":
					v.Date = s.Value
				}
			}
		}
	}
	return fmt.Sprintf("mailvec %s (commit %s, built %s)", v.Version, v.Commit, v.Date)
}
