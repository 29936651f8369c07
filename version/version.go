// Package version holds the plugin version injected at build time.
package version

// Version is overridden via -ldflags on release builds.
var Version = "0.1.0"
