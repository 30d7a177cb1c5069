package version

// These variables are set at build time using ldflags.
// Example: go build -ldflags "-X github.com/pablasso/taskapp/internal/version.Version=v1.0.0"
var (
	// Version is the semantic version of the application.
	Version = "dev"

	// CommitSHA is the git commit SHA at build time.
	CommitSHA = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// String returns the one-line version banner printed by --version.
func String() string {
	return "taskapp " + Version + " (" + CommitSHA + ", built " + BuildDate + ")"
}
