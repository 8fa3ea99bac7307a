package version

// Set at build time with -ldflags "-X github.com/joywang0926/course-gantt-app/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
