package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/gtai/internal"
)

// Viper keys the flags are bound to.
const (
	KeySettingsFile = "settings.file"
	KeyCredentials  = "google.credentials"
	KeyLocation     = "google.location"
	KeyDebug        = "log.debug"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gtai",
		Short: "Google Translate Advanced CLI",
		Long: `gtai translates text and files with Google Cloud Translation and
manages custom glossaries that steer the translation of terminology.

It authenticates with a service account key and keeps the default
language pair and the active glossary in a local settings file.

Examples:
  gtai                                        # Start the interactive menu
  gtai --credentials ~/keys/translate.json    # Use another service account
  gtai --location europe-west1                # Use glossaries in another region`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.gtai.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.SettingsFile, "settings", "s", flags.SettingsFile, "Settings file holding languages and the active glossary")
	cmd.Flags().StringVarP(&flags.CredentialsFile, "credentials", "c", flags.CredentialsFile, "Google Cloud service account key (JSON)")
	cmd.Flags().StringVarP(&flags.Location, "location", "l", flags.Location, "Google Cloud location for translation and glossaries")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Log diagnostic messages to stderr")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag(KeySettingsFile, cmd.Flags().Lookup("settings"))
	viper.BindPFlag(KeyCredentials, cmd.Flags().Lookup("credentials"))
	viper.BindPFlag(KeyLocation, cmd.Flags().Lookup("location"))
	viper.BindPFlag(KeyDebug, cmd.Flags().Lookup("debug"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".gtai" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gtai")
	}

	// Environment variables, e.g. GTAI_GOOGLE_LOCATION
	viper.SetEnvPrefix("GTAI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Resolve returns the effective options: flags given on the command line
// win, then environment and config file values, then the flag defaults.
func Resolve(flags *Flags) Flags {
	resolved := *flags
	if v := viper.GetString(KeySettingsFile); v != "" {
		resolved.SettingsFile = v
	}
	if v := viper.GetString(KeyCredentials); v != "" {
		resolved.CredentialsFile = v
	}
	if v := viper.GetString(KeyLocation); v != "" {
		resolved.Location = v
	}
	resolved.Debug = viper.GetBool(KeyDebug)
	return resolved
}
