package messaging

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/karinanutri/clinic-platform/pkg/logging"
)

type stubGenerator struct {
	text string
	err  error

	lastPrompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.text, s.err
}

func TestConfirmationMessageUsesGeneratedText(t *testing.T) {
	gen := &stubGenerator{text: "Olá Ana! Consulta confirmada."}
	svc := NewService(gen, logging.Default())

	msg := svc.ConfirmationMessage(context.Background(), "Ana", "10/09/2026", "09:10", "https://meet.google.com/karina-abc")
	if msg != gen.text {
		t.Fatalf("expected generated text, got %q", msg)
	}
	for _, want := range []string{"Ana", "10/09/2026", "09:10", "https://meet.google.com/karina-abc"} {
		if !strings.Contains(gen.lastPrompt, want) {
			t.Errorf("prompt missing %q: %s", want, gen.lastPrompt)
		}
	}
}

func TestConfirmationMessageFallsBackOnError(t *testing.T) {
	svc := NewService(&stubGenerator{err: errors.New("quota exceeded")}, logging.Default())

	msg := svc.ConfirmationMessage(context.Background(), "Ana", "10/09/2026", "09:10", "link")
	if !strings.Contains(msg, "Ana") || !strings.Contains(msg, "confirmada") {
		t.Fatalf("expected fallback template, got %q", msg)
	}
}

func TestNilGeneratorAlwaysFallsBack(t *testing.T) {
	svc := NewService(nil, logging.Default())

	msg := svc.RetentionMessage(context.Background(), "Bruno", "2026-05-01")
	if !strings.Contains(msg, "Bruno") {
		t.Fatalf("expected fallback mentioning client, got %q", msg)
	}
}

func TestRetentionPromptHandlesMissingLastSession(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	svc := NewService(gen, logging.Default())

	svc.RetentionMessage(context.Background(), "Bruno", "")
	if !strings.Contains(gen.lastPrompt, "algum tempo") {
		t.Fatalf("expected placeholder for missing last session, got %s", gen.lastPrompt)
	}
}
