package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/gtai/internal/cli"
	"codeberg.org/snonux/gtai/internal/credential"
	"codeberg.org/snonux/gtai/internal/gcloud"
	"codeberg.org/snonux/gtai/internal/glossary"
	"codeberg.org/snonux/gtai/internal/prompt"
	"codeberg.org/snonux/gtai/internal/session"
	"codeberg.org/snonux/gtai/internal/settings"
	"codeberg.org/snonux/gtai/internal/translation"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cli.Resolve(flags), os.Stdin, os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// reportedError is an error the user has already been shown.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// printError prints err unless it was already reported.
func printError(w io.Writer, err error) {
	var reported reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func run(ctx context.Context, opts cli.Flags, in io.Reader, out io.Writer) error {
	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ui := prompt.NewTerminal(in, out)

	cred, err := credential.Load(opts.CredentialsFile)
	if err != nil {
		ui.Error(credentialHint(err, opts.CredentialsFile))
		return reportedError{err}
	}
	logger.Debug("loaded credential", "project", cred.ProjectID, "client", cred.ClientEmail)

	clients, err := gcloud.Dial(ctx, cred, opts.Location, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to Google Cloud: %w", err)
	}
	defer clients.Close()

	cfg := session.Config{
		UI:         ui,
		Store:      settings.NewStore(opts.SettingsFile),
		Glossaries: glossary.NewRegistry(clients.Storage(), clients.Glossaries(), clients.Parent()),
		Translator: translation.NewTranslator(clients.Translation(), clients.Parent(), logger),
		Files:      session.OSFiles{},
		Logger:     logger,
	}
	if !clipboard.Unsupported {
		cfg.Clipboard = systemClipboard{}
	}

	return session.New(cfg).Run(ctx)
}

func credentialHint(err error, path string) string {
	switch {
	case errors.Is(err, credential.ErrMissing):
		return fmt.Sprintf("Service account file %s not found. Download a key for a service account with Cloud Translation and Storage access.", path)
	case errors.Is(err, credential.ErrMalformed):
		return fmt.Sprintf("Service account file %s is not valid JSON.", path)
	default:
		return err.Error()
	}
}

// systemClipboard copies to the desktop clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
