// Package version reports the build version of ampacity.
package version

import "runtime/debug"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/ampacity/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Set by the linker.
var version = ""

const develVersion = "dev"

// GetVersion returns the linker-provided version, then the module version
// recorded in the build info, then "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return develVersion
}
