package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/gtai/internal"
	"codeberg.org/snonux/gtai/internal/prompt"
	"codeberg.org/snonux/gtai/internal/translation"
)

const (
	// MaxTextLength limits interactive text input, in characters.
	MaxTextLength = 20000
	// MaxFileLength limits translated file contents, in characters.
	MaxFileLength = 50000

	actionCopy    = "copy"
	actionRestart = "restart"
	actionMenu    = "menu"
)

func (c *Controller) describeTranslation() string {
	desc := fmt.Sprintf("Translating from %s to %s", c.settings.DefaultSourceLanguage, c.settings.DefaultTargetLanguage)
	if c.settings.HasActiveGlossary() {
		desc += fmt.Sprintf(" using glossary %s", c.settings.ActiveGlossaryShortName())
	}
	return desc + "..."
}

func (c *Controller) translateText(ctx context.Context) error {
	for {
		text, err := c.ui.Text(ctx, prompt.TextQuestion{
			Message:     "Enter the text to translate",
			Placeholder: "Type or paste your text here",
			Validate:    validateText,
		})
		if err != nil {
			return err
		}

		c.ui.Info(c.describeTranslation())

		result, err := c.translator.Translate(ctx, translation.NewRequest(text, c.settings))
		if err != nil {
			c.ui.Error("Translation failed: " + err.Error())
			return nil
		}
		c.ui.Note(result)

		var options []prompt.Option
		if c.clipboard != nil {
			options = append(options, prompt.Option{Value: actionCopy, Label: "📋 Copy to clipboard and restart"})
		}
		options = append(options,
			prompt.Option{Value: actionRestart, Label: "🔄 Restart translation"},
			prompt.Option{Value: actionMenu, Label: "🏠 Back to main menu"},
		)

		next, err := c.ui.Select(ctx, "What would you like to do next?", options)
		if err != nil {
			return err
		}

		switch next {
		case actionCopy:
			if err := c.clipboard.WriteAll(result); err != nil {
				c.logger.Debug("clipboard write failed", "error", err)
				c.ui.Warn("Could not copy to clipboard. Translation is displayed above for manual copying.")
			} else {
				c.ui.Success("Translation copied to clipboard!")
			}
		case actionRestart:
		default:
			return nil
		}
	}
}

func (c *Controller) translateFile(ctx context.Context) error {
	for {
		inputPath, err := c.ui.Text(ctx, prompt.TextQuestion{
			Message:     "Enter path to file (TXT or MD)",
			Placeholder: "./document.md",
			Validate:    validateTextFilePath,
		})
		if err != nil {
			return err
		}
		inputPath = strings.TrimSpace(inputPath)

		if !c.files.Exists(inputPath) {
			c.ui.Error("File does not exist: " + inputPath)
			return nil
		}

		data, err := c.files.ReadFile(inputPath)
		if err != nil {
			c.ui.Error("Could not read file: " + err.Error())
			return nil
		}

		text := string(data)
		if strings.TrimSpace(text) == "" {
			c.ui.Error("File is empty.")
			return nil
		}
		if utf8.RuneCountInString(text) > MaxFileLength {
			c.ui.Error(fmt.Sprintf("File is too large (max %d characters).", MaxFileLength))
			return nil
		}

		c.ui.Info(c.describeTranslation())

		result, err := c.translator.Translate(ctx, translation.NewRequest(text, c.settings))
		if err != nil {
			c.ui.Error("Translation failed: " + err.Error())
			return nil
		}

		outputPath := internal.TranslatedFilePath(inputPath, c.settings.DefaultTargetLanguage)
		if err := c.files.WriteFile(outputPath, []byte(result)); err != nil {
			c.ui.Error("Could not write translated file: " + err.Error())
			return nil
		}
		c.ui.Success("File translated and saved as: " + outputPath)

		next, err := c.ui.Select(ctx, "What would you like to do next?", []prompt.Option{
			{Value: actionRestart, Label: "📄 Translate another file"},
			{Value: actionMenu, Label: "🏠 Back to main menu"},
		})
		if err != nil {
			return err
		}
		if next != actionRestart {
			return nil
		}
	}
}

func validateText(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("text cannot be empty")
	}
	if utf8.RuneCountInString(value) > MaxTextLength {
		return fmt.Errorf("text is too long (max %d characters)", MaxTextLength)
	}
	return nil
}

func validateTextFilePath(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("file path cannot be empty")
	}
	switch strings.ToLower(filepath.Ext(value)) {
	case ".txt", ".md":
		return nil
	}
	return errors.New("only .txt and .md files are supported")
}
