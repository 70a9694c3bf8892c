package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/gtai/internal"
	"codeberg.org/snonux/gtai/internal/glossary"
	"codeberg.org/snonux/gtai/internal/prompt"
	"codeberg.org/snonux/gtai/internal/settings"
)

const (
	actionSetActive = "list"
	actionUpload    = "upload"
	actionDelete    = "delete"

	noGlossary = "none"
)

func (c *Controller) glossaryMenu(ctx context.Context) error {
	for {
		choice, err := c.ui.Select(ctx, "- Glossary Management -", []prompt.Option{
			{Value: actionSetActive, Label: "📋 List and set active glossary"},
			{Value: actionUpload, Label: "📤 Upload new glossary"},
			{Value: actionDelete, Label: "🗑️ Delete glossary"},
			{Value: actionBack, Label: "⬅️ Back to settings"},
		})
		if err != nil {
			return err
		}

		switch choice {
		case actionSetActive:
			err = c.setActiveGlossary(ctx)
		case actionUpload:
			err = c.uploadGlossary(ctx)
		case actionDelete:
			err = c.deleteGlossary(ctx)
		default:
			return nil
		}
		if err = settle(err); err != nil {
			return err
		}
	}
}

// listGlossaries loads the remote glossaries and repairs a stale active
// glossary. ok is false when the listing failed.
func (c *Controller) listGlossaries(ctx context.Context) ([]glossary.Info, bool) {
	c.ui.Info("Loading glossaries...")

	infos, err := c.glossaries.List(ctx)
	if err != nil {
		c.ui.Error("Error loading glossaries: " + err.Error())
		return nil, false
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}

	if next, changed := c.settings.OnGlossariesListed(names); changed {
		c.logger.Debug("clearing stale active glossary", "glossary", c.settings.ActiveGlossary)
		c.repair(next, "Active glossary has been cleared.")
	}

	return infos, true
}

func (c *Controller) setActiveGlossary(ctx context.Context) error {
	infos, ok := c.listGlossaries(ctx)
	if !ok {
		return nil
	}
	if len(infos) == 0 {
		c.ui.Warn("No glossaries found. Upload a glossary first.")
		return nil
	}

	options := []prompt.Option{{Value: noGlossary, Label: "None (disable glossary)"}}
	for _, info := range infos {
		label := info.Label()
		if info.Name == c.settings.ActiveGlossary {
			label += " (active)"
		}
		options = append(options, prompt.Option{Value: info.Name, Label: label})
	}

	selected, err := c.ui.Select(ctx, "Select active glossary", options)
	if err != nil {
		return err
	}

	if selected == noGlossary {
		if c.save(c.settings.WithActiveGlossary("")) {
			c.ui.Success("Glossary disabled.")
		}
		return nil
	}

	if c.save(c.settings.WithActiveGlossary(selected)) {
		c.ui.Success(fmt.Sprintf("Active glossary set to %s.", c.settings.ActiveGlossaryShortName()))
	}
	return nil
}

func (c *Controller) uploadGlossary(ctx context.Context) error {
	localPath, err := c.ui.Text(ctx, prompt.TextQuestion{
		Message:     "Enter path to glossary file (CSV or TSV)",
		Placeholder: "./glossary.csv",
		Validate:    validateGlossaryPath,
	})
	if err != nil {
		return err
	}
	localPath = strings.TrimSpace(localPath)

	if !c.files.Exists(localPath) {
		c.ui.Error("File does not exist: " + localPath)
		return nil
	}

	bucket, ok, err := c.chooseBucket(ctx)
	if err != nil || !ok {
		return err
	}

	suggested := internal.SanitizeFilename(filepath.Base(localPath))
	name, err := c.ui.Text(ctx, prompt.TextQuestion{
		Message:     "Enter glossary name",
		Placeholder: suggested,
		Default:     suggested,
		Validate:    validateGlossaryName,
	})
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	source, target := c.settings.DefaultSourceLanguage, c.settings.DefaultTargetLanguage
	c.ui.Info(fmt.Sprintf("Using language pair from settings: %s → %s", source, target))
	c.ui.Info("Uploading and creating glossary...")

	if _, err := c.glossaries.UploadAndCreate(ctx, localPath, bucket, name, source, target); err != nil {
		c.ui.Error("Upload failed: " + err.Error())
		if errors.Is(err, glossary.ErrRegistration) {
			c.ui.Warn(fmt.Sprintf("The uploaded file remains in bucket %s as %s%s.",
				bucket, glossary.KeyPrefix, filepath.Base(localPath)))
		}
		return nil
	}

	c.ui.Success(fmt.Sprintf("Glossary %q has been created and is ready to use.", name))
	return nil
}

// chooseBucket offers the project's buckets. When they cannot be listed the
// user may type a bucket name instead. ok is false when there is nothing to
// choose from.
func (c *Controller) chooseBucket(ctx context.Context) (string, bool, error) {
	buckets, err := c.glossaries.ListBuckets(ctx)
	if err != nil {
		c.ui.Error("Error loading buckets: " + err.Error())

		bucket, err := c.ui.Text(ctx, prompt.TextQuestion{
			Message:  "Enter Google Cloud Storage bucket name manually",
			Validate: notEmpty("Bucket name"),
		})
		if err != nil {
			return "", false, err
		}
		return strings.TrimSpace(bucket), true, nil
	}

	if len(buckets) == 0 {
		c.ui.Error("No buckets found in your Google Cloud project. Please create a bucket first.")
		return "", false, nil
	}

	options := make([]prompt.Option, 0, len(buckets))
	for _, b := range buckets {
		options = append(options, prompt.Option{Value: b, Label: b})
	}

	bucket, err := c.ui.Select(ctx, "Select a bucket for the glossary", options)
	if err != nil {
		return "", false, err
	}
	return bucket, true, nil
}

func (c *Controller) deleteGlossary(ctx context.Context) error {
	infos, ok := c.listGlossaries(ctx)
	if !ok {
		return nil
	}
	if len(infos) == 0 {
		c.ui.Warn("No glossaries found to delete.")
		return nil
	}

	options := make([]prompt.Option, 0, len(infos))
	for _, info := range infos {
		options = append(options, prompt.Option{Value: info.Name, Label: info.Label()})
	}

	selected, err := c.ui.Select(ctx, "Select glossary to delete", options)
	if err != nil {
		return err
	}

	confirmed, err := c.ui.Confirm(ctx, "Are you sure you want to delete this glossary? This cannot be undone.", false)
	if err != nil {
		return err
	}
	if !confirmed {
		c.ui.Info("Deletion cancelled.")
		return nil
	}

	if err := c.glossaries.Delete(ctx, selected); err != nil {
		c.ui.Error("Error deleting glossary: " + err.Error())
		return nil
	}
	c.ui.Success("Glossary deleted successfully.")

	if next, changed := c.settings.OnGlossaryDeleted(selected); changed {
		c.repair(next, "Active glossary has been cleared since it was deleted.")
	}
	return nil
}

// repair applies a settings change that removes a reference to a glossary
// that no longer exists. The change takes effect for this session even when
// it cannot be persisted.
func (c *Controller) repair(next settings.Settings, message string) {
	c.settings = next
	if err := c.store.Save(next); err != nil {
		c.ui.Warn("Active glossary was cleared for this session but could not be saved: " + err.Error())
		return
	}
	c.ui.Info(message)
}

func validateGlossaryPath(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("file path cannot be empty")
	}
	switch strings.ToLower(filepath.Ext(value)) {
	case ".csv", ".tsv":
		return nil
	}
	return errors.New("only CSV and TSV files are supported")
}

func validateGlossaryName(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("glossary name cannot be empty")
	}
	if !internal.ValidGlossaryName(value) {
		return errors.New("glossary name may only contain letters, numbers, hyphens and underscores")
	}
	return nil
}

func notEmpty(what string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}
