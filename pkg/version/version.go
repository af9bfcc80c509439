package version

// Version is the batthud version. Overridden at build time via
// -ldflags "-X github.com/batthud/batthud/pkg/version.Version=...".
var Version = "dev"
