// internal/version/version.go
//
// Package version contains the reaper build version string, surfaced
// by the CLI's --version flag.
package version

// Version is the current version of the reaper library.
//
// During early development this may be a "-dev" version. For tagged
// releases it should follow semantic versioning, e.g. "v1.0.0".
const Version = "v0.1.0-dev"
