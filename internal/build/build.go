// Package build holds build information set at link time with
//
//	-ldflags "-X github.com/hisamafahri/lagon/internal/build.Version=..."
package build

var (
	// Version is the released version of the b64 command.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
