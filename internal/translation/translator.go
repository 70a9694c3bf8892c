package translation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/translate/apiv3/translatepb"
	"github.com/googleapis/gax-go/v2"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/gtai/internal/settings"
)

const (
	mimeTypePlain = "text/plain"

	breakerFailures = 5
	breakerCooldown = 30 * time.Second
)

// TextTranslator is the Cloud Translation call used by Translator.
// *translate.TranslationClient satisfies it.
type TextTranslator interface {
	TranslateText(ctx context.Context, req *translatepb.TranslateTextRequest, opts ...gax.CallOption) (*translatepb.TranslateTextResponse, error)
}

// Request is a single translation.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
	// Glossary is the full resource name of the glossary to apply, if any.
	Glossary   string
	IgnoreCase bool
}

// NewRequest builds a request for text from the user's settings
func NewRequest(text string, s settings.Settings) Request {
	return Request{
		Text:       text,
		SourceLang: s.DefaultSourceLanguage,
		TargetLang: s.DefaultTargetLanguage,
		Glossary:   s.ActiveGlossary,
		IgnoreCase: s.IgnoreCase(),
	}
}

// Translator sends translation requests to Cloud Translation. It never
// retries; a circuit breaker rejects calls for a short while after
// repeated provider failures.
type Translator struct {
	client  TextTranslator
	parent  string
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewTranslator creates a translator issuing requests under parent
// (projects/<project>/locations/<location>).
func NewTranslator(client TextTranslator, parent string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "cloud-translation",
		Timeout: breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isCallerError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &Translator{
		client:  client,
		parent:  parent,
		breaker: breaker,
		logger:  logger,
	}
}

// Translate validates req, sends it and returns the translated text. A
// glossary translation is preferred over the plain one.
func (t *Translator) Translate(ctx context.Context, req Request) (string, error) {
	text := strings.TrimSpace(req.Text)
	if err := checkRequest(text, req); err != nil {
		return "", err
	}

	pbReq := &translatepb.TranslateTextRequest{
		Parent:             t.parent,
		Contents:           []string{text},
		MimeType:           mimeTypePlain,
		SourceLanguageCode: req.SourceLang,
		TargetLanguageCode: req.TargetLang,
	}
	if req.Glossary != "" {
		pbReq.GlossaryConfig = &translatepb.TranslateTextGlossaryConfig{
			Glossary:   req.Glossary,
			IgnoreCase: req.IgnoreCase,
		}
	}

	start := time.Now()
	result, err := t.breaker.Execute(func() (interface{}, error) {
		return t.client.TranslateText(ctx, pbReq)
	})
	if err != nil {
		t.logger.Debug("translation failed", "source", req.SourceLang, "target", req.TargetLang, "error", err)
		return "", mapError(err)
	}

	t.logger.Debug("translated text",
		"source", req.SourceLang,
		"target", req.TargetLang,
		"glossary", req.Glossary != "",
		"chars", len(text),
		"elapsed", time.Since(start))

	resp, _ := result.(*translatepb.TranslateTextResponse)
	return pickTranslation(resp)
}

func checkRequest(text string, req Request) error {
	var errs []error
	if text == "" {
		errs = append(errs, ErrEmptyText)
	}
	if req.SourceLang == "" || req.TargetLang == "" {
		errs = append(errs, ErrMissingLanguage)
	} else if req.SourceLang == req.TargetLang {
		errs = append(errs, ErrSameLanguage)
	}
	return errors.Join(errs...)
}

func pickTranslation(resp *translatepb.TranslateTextResponse) (string, error) {
	if g := resp.GetGlossaryTranslations(); len(g) > 0 && g[0].GetTranslatedText() != "" {
		return g[0].GetTranslatedText(), nil
	}
	if tr := resp.GetTranslations(); len(tr) > 0 && tr[0].GetTranslatedText() != "" {
		return tr[0].GetTranslatedText(), nil
	}
	return "", ErrEmptyTranslation
}
