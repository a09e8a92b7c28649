package version

// Version is the semantic version number reflecting the current release.
var Version = "0.1.0"
