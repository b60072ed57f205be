package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// Version information, set at build time via ldflags
	Version   = "dev"     // Version string (e.g., "v0.3.0")
	GitCommit = "unknown" // Git commit hash
	GitTag    = "unknown" // Git tag
	BuildTime = "unknown" // Build timestamp
	GitDirty  = ""        // "dirty" if working directory has uncommitted changes
)

// Info is a snapshot of the build metadata
type Info struct {
	Version   string
	GitCommit string
	GitTag    string
	BuildTime string
	Dirty     bool
}

// Get collects the build metadata, resolving the version string
func Get() Info {
	return Info{
		Version:   GetVersion(),
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
	}
}

// String renders the info the way `vue-script-setup version` prints it
func (i Info) String() string {
	var b strings.Builder
	b.WriteString("vue-script-setup ")
	b.WriteString(i.Version)
	hasCommit := i.GitCommit != "unknown" && i.GitCommit != ""
	switch {
	case hasCommit && i.Dirty:
		fmt.Fprintf(&b, " (commit: %s, dirty)", i.GitCommit)
	case hasCommit:
		fmt.Fprintf(&b, " (commit: %s)", i.GitCommit)
	case i.Dirty:
		b.WriteString(" (dirty)")
	}
	if i.BuildTime != "unknown" && i.BuildTime != "" {
		fmt.Fprintf(&b, " built %s", i.BuildTime)
	}
	return b.String()
}

// GetVersion returns the version string for the application
func GetVersion() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}

	v := GitTag
	short := GitCommit
	if len(short) > 7 {
		short = short[:7]
	}
	if short != "" && !strings.HasSuffix(GitTag, short) {
		v = fmt.Sprintf("%s-%s", GitTag, short)
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}

// GetFullVersion returns the version line printed by the CLI
func GetFullVersion() string {
	return Get().String()
}
