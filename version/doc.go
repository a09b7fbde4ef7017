// Package version provides version information and build metadata for djsum.
//
// Version, Commit, and Date can be injected at build time via -ldflags:
//
//	-ldflags "-X github.com/dendrascience/djsum/version.Version=v1.0.0"
//
// When they are not set, the package falls back to Go's runtime build info
// (module version, vcs.revision, vcs.time) and finally to development
// defaults, so version reporting works in release, CI, and local builds
// alike.
package version
