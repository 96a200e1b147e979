package version

// Version is set at build time with -ldflags "-X github.com/c9s/indicators/pkg/version.Version=..."
var Version = "v0.1.0-dev"

var VersionGitRef = "unknown"
