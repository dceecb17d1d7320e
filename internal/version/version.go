package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/sdsync/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/sdsync/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/sdsync/internal/version.Date={{.Date}}
)

// String renders the version block printed by the version command.
func String(app string) string {
	return app + " version " + Version + "\n  commit: " + Commit + "\n  built:  " + Date + "\n"
}
