package cli

import (
	"codeberg.org/snonux/gtai/internal/gcloud"
	"codeberg.org/snonux/gtai/internal/settings"
)

// DefaultCredentialsFile is the service account key read when none is
// configured.
const DefaultCredentialsFile = "service-account.json"

// Flags holds all command-line flag values
type Flags struct {
	CfgFile         string
	SettingsFile    string
	CredentialsFile string
	Location        string
	Debug           bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		SettingsFile:    settings.DefaultFile,
		CredentialsFile: DefaultCredentialsFile,
		Location:        gcloud.DefaultLocation,
	}
}
