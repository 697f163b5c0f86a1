package version

// Build metadata, overridden at release time via -ldflags. The defaults keep
// local `go run` output recognizable.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)
