package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/savecrypt/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/savecrypt/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/savecrypt/internal/version.Date={{.Date}}
)

// Info returns a one-line summary of the build
func Info() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
