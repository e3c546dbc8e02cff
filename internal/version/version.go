package version

// Version is overridden at build time with -ldflags "-X seqpar/internal/version.Version=...".
var Version = "dev"
