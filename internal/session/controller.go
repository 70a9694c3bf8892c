package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"codeberg.org/snonux/gtai/internal/archive"
	"codeberg.org/snonux/gtai/internal/glossary"
	"codeberg.org/snonux/gtai/internal/prompt"
	"codeberg.org/snonux/gtai/internal/settings"
	"codeberg.org/snonux/gtai/internal/translation"
)

// SettingsStore persists settings.
type SettingsStore interface {
	Exists() bool
	Load() (settings.Settings, bool)
	Save(settings.Settings) error
	Path() string
}

// Glossaries is the glossary registry used by the glossary menu.
type Glossaries interface {
	ListBuckets(ctx context.Context) ([]string, error)
	UploadAndCreate(ctx context.Context, localPath, bucket, name, sourceLang, targetLang string) (string, error)
	List(ctx context.Context) ([]glossary.Info, error)
	Delete(ctx context.Context, name string) error
}

// Translator translates a single request.
type Translator interface {
	Translate(ctx context.Context, req translation.Request) (string, error)
}

// Files reads and writes local files.
type Files interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Exists(path string) bool
}

// Clipboard receives translated text.
type Clipboard interface {
	WriteAll(text string) error
}

// Config wires the controller's collaborators. Clipboard is optional.
type Config struct {
	UI         prompt.UI
	Store      SettingsStore
	Glossaries Glossaries
	Translator Translator
	Files      Files
	Clipboard  Clipboard
	Logger     *slog.Logger
}

// Controller is the interactive session state machine.
type Controller struct {
	ui         prompt.UI
	store      SettingsStore
	glossaries Glossaries
	translator Translator
	files      Files
	clipboard  Clipboard
	logger     *slog.Logger

	settings settings.Settings
}

const (
	actionTranslate     = "translation"
	actionTranslateFile = "file"
	actionSettings      = "settings"
	actionExit          = "exit"

	actionLanguages  = "languages"
	actionIgnoreCase = "ignore-case"
	actionGlossary   = "glossary"
	actionBack       = "back"
)

// New creates a controller from cfg.
func New(cfg Config) *Controller {
	if cfg.Files == nil {
		cfg.Files = OSFiles{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Controller{
		ui:         cfg.UI,
		store:      cfg.Store,
		glossaries: cfg.Glossaries,
		translator: cfg.Translator,
		files:      cfg.Files,
		clipboard:  cfg.Clipboard,
		logger:     cfg.Logger,
	}
}

// Settings returns the current settings.
func (c *Controller) Settings() settings.Settings {
	return c.settings
}

// Run loads or creates settings and runs the main menu until the user exits
// or cancels. Cancellation returns nil; any other error is fatal.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.ensureSettings(ctx); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			c.ui.Outro("Setup cancelled.")
			return nil
		}
		return err
	}

	c.ui.Intro("Google Translate Advanced CLI")

	mainMenu := []prompt.Option{
		{Value: actionTranslate, Label: "🌐 Translate text"},
		{Value: actionTranslateFile, Label: "📄 Translate file"},
		{Value: actionSettings, Label: "🔧 Settings"},
		{Value: actionExit, Label: "🚪 Exit"},
	}

	for {
		choice, err := c.ui.Select(ctx, "- Main Menu -", mainMenu)
		if errors.Is(err, prompt.ErrCancelled) {
			c.ui.Outro("Operation cancelled.")
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case actionTranslate:
			err = c.translateText(ctx)
		case actionTranslateFile:
			err = c.translateFile(ctx)
		case actionSettings:
			err = c.settingsMenu(ctx)
		case actionExit:
			c.ui.Outro("Goodbye!")
			return nil
		}
		if err = settle(err); err != nil {
			return err
		}
	}
}

// settle drops cancellation, which only ends the current action.
func settle(err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		return nil
	}
	return err
}

func (c *Controller) ensureSettings(ctx context.Context) error {
	if c.store.Exists() {
		if loaded, ok := c.store.Load(); ok {
			c.settings = loaded
			return nil
		}

		c.ui.Warn("Settings file is corrupted. Let's set it up again.")
		if archived, err := archive.Preserve(c.store.Path()); err != nil {
			c.logger.Warn("could not preserve corrupted settings", "path", c.store.Path(), "error", err)
		} else {
			c.ui.Info("Previous settings file kept as " + archived)
		}
	} else {
		c.ui.Intro("Google Translate Advanced - First Time Setup")
	}

	configured, err := c.promptLanguages(ctx, settings.Settings{})
	if err != nil {
		return err
	}
	c.settings = configured
	return nil
}

// promptLanguages asks for both language codes and saves them on top of
// current.
func (c *Controller) promptLanguages(ctx context.Context, current settings.Settings) (settings.Settings, error) {
	c.ui.Info("Let's set up your default languages.")

	source, err := c.ui.Text(ctx, prompt.TextQuestion{
		Message:     "Enter your source language code",
		Placeholder: "en, en-US, ru, es, pt-BR, etc.",
		Validate:    validateLanguage("Source"),
	})
	if err != nil {
		return current, err
	}

	target, err := c.ui.Text(ctx, prompt.TextQuestion{
		Message:     "Enter your target language code",
		Placeholder: "en, en-US, ru, es, pt-BR, etc.",
		Validate:    validateLanguage("Target"),
	})
	if err != nil {
		return current, err
	}

	next := current.WithLanguages(strings.TrimSpace(source), strings.TrimSpace(target))
	if err := c.store.Save(next); err != nil {
		return current, err
	}

	c.ui.Success("Settings saved successfully!")
	return next, nil
}

func validateLanguage(which string) func(string) error {
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("%s language cannot be empty", which)
		}
		if !settings.ValidLanguageCode(value) {
			return errors.New("please enter a valid language code (en, en-US, ru, es, pt-BR, etc.)")
		}
		return nil
	}
}

// save persists next and makes it current. Failures are reported and leave
// the current settings unchanged.
func (c *Controller) save(next settings.Settings) bool {
	if err := c.store.Save(next); err != nil {
		c.ui.Error("Failed to save settings: " + err.Error())
		return false
	}
	c.settings = next
	return true
}

func (c *Controller) settingsMenu(ctx context.Context) error {
	for {
		c.ui.Note(c.describeSettings())

		caseLabel := "🔠 Make glossary matching case-sensitive"
		if !c.settings.IgnoreCase() {
			caseLabel = "🔡 Make glossary matching case-insensitive"
		}

		choice, err := c.ui.Select(ctx, "- Settings Menu -", []prompt.Option{
			{Value: actionLanguages, Label: "🌐 Change languages"},
			{Value: actionIgnoreCase, Label: caseLabel},
			{Value: actionGlossary, Label: "📖 Manage glossaries"},
			{Value: actionBack, Label: "🏠 Back to main menu"},
		})
		if err != nil {
			return err
		}

		switch choice {
		case actionLanguages:
			next, err := c.promptLanguages(ctx, c.settings)
			if errors.Is(err, prompt.ErrCancelled) {
				continue
			}
			if err != nil {
				c.ui.Error("Failed to save settings: " + err.Error())
				continue
			}
			c.settings = next
		case actionIgnoreCase:
			if c.save(c.settings.WithIgnoreCase(!c.settings.IgnoreCase())) {
				c.ui.Success("Glossary case sensitivity updated!")
			}
		case actionGlossary:
			if err := settle(c.glossaryMenu(ctx)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (c *Controller) describeSettings() string {
	matching := "case-insensitive"
	if !c.settings.IgnoreCase() {
		matching = "case-sensitive"
	}

	return fmt.Sprintf("Source language: %s (%s)\nTarget language: %s (%s)\nActive glossary: %s\nGlossary matching: %s",
		c.settings.DefaultSourceLanguage, settings.LanguageName(c.settings.DefaultSourceLanguage),
		c.settings.DefaultTargetLanguage, settings.LanguageName(c.settings.DefaultTargetLanguage),
		c.settings.ActiveGlossaryShortName(),
		matching)
}
