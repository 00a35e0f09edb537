// Package version reports build information for bubblechart.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
)

// Name is the program name printed in version strings.
const Name = "bubblechart"

// Info contains version information about the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo creates a new Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", Name, i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`%s %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, Name, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}

// JSON returns the info as indented JSON.
func (i *Info) JSON() (string, error) {
	b, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
