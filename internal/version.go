package internal

// Application metadata constants. To update the version, change only
// AppVersion below; every formatted string derives from it.
const (
	// AppName is the official name of the application
	AppName = "albumview"

	// AppVersion follows semantic versioning (major.minor.patch)
	AppVersion = "0.3.1"

	// AppDesc is the tagline used in UI headers and documentation
	AppDesc = "Terminal Browser for Self-Hosted Photo & Video Albums"
)

// GetVersionString returns just the version number for programmatic use.
// Example: "0.3.1"
func GetVersionString() string {
	return AppVersion
}

// GetFullVersionString returns the application name with version for display.
// Example: "albumview v0.3.1"
func GetFullVersionString() string {
	return AppName + " v" + AppVersion
}

// GetAppTitle returns the complete application title including description.
// Used for the main header and the about screen.
func GetAppTitle() string {
	return AppName + " v" + AppVersion + " - " + AppDesc
}
