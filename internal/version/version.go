package version

// Version is the current release of commitpush. Release builds override it
// with -ldflags "-X github.com/commitpush/commitpush/internal/version.Version=...".
var Version = "0.3.0"

// FullVersion returns the version with the v prefix.
func FullVersion() string {
	return "v" + Version
}
