// Package messaging generates patient-facing confirmation and retention
// texts. Generation is best-effort: a single attempt against the model, and
// any failure substitutes a fixed local template so callers never block or
// error on this dependency.
package messaging

import (
	"context"

	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Generator produces text from a prompt. Implemented by GeminiClient.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service builds the practice's outbound messages.
type Service struct {
	gen    Generator
	logger *logging.Logger
}

// NewService constructs a messaging service. gen may be nil when no API key
// is configured; every message then uses its fallback template.
func NewService(gen Generator, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{gen: gen, logger: logger}
}

// ConfirmationMessage returns the booking confirmation text. Never fails.
func (s *Service) ConfirmationMessage(ctx context.Context, clientName, date, timeOfDay, meetLink string) string {
	fallback := ConfirmationFallback(clientName, date, timeOfDay, meetLink)
	return s.generate(ctx, "confirmation", ConfirmationPrompt(clientName, date, timeOfDay, meetLink), fallback)
}

// RetentionMessage returns the no-show outreach text. Never fails.
func (s *Service) RetentionMessage(ctx context.Context, clientName, lastSession string) string {
	fallback := RetentionFallback(clientName)
	return s.generate(ctx, "retention", RetentionPrompt(clientName, lastSession), fallback)
}

func (s *Service) generate(ctx context.Context, kind, prompt, fallback string) string {
	if s.gen == nil {
		return fallback
	}
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		// One attempt only; the fixed template keeps the flow moving.
		s.logger.Warn("message generation failed, using fallback", "kind", kind, "error", err)
		return fallback
	}
	return text
}
