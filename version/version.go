package version

import (
	"fmt"
	"runtime"
)

// Build metadata, stamped via -ldflags at release time. Untagged builds
// keep the "dev" defaults.
var (
	// CommitHash is the source revision the binary was built from
	CommitHash = "dev"

	// BuildTime records when the build ran
	BuildTime = "unknown"

	// Version is the release tag, "dev" when untagged
	Version = "dev"
)

// Info is a snapshot of build and runtime metadata
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get assembles the Info for the running binary
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String formats the full version line used by banners and `stringlens version`
func (i Info) String() string {
	return fmt.Sprintf("stringlens %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
}

// Short returns the abbreviated commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
