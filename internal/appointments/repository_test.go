package appointments

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/karinanutri/clinic-platform/internal/store"
	"github.com/karinanutri/clinic-platform/pkg/logging"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRepository(store.New(client, logging.Default()))
}

func TestCreateRejectsTakenSlot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	req := &CreateAppointmentRequest{
		ClientID: "c1",
		Date:     "2026-09-10",
		Time:     "09:10",
		Price:    200,
		Duration: 60,
	}
	first, err := repo.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Status != StatusScheduled || first.Type != TypeClinical {
		t.Fatalf("unexpected defaults: %+v", first)
	}

	if _, err := repo.Create(ctx, req); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestCreateAllowsSlotAfterCancellation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	req := &CreateAppointmentRequest{ClientID: "c1", Date: "2026-09-10", Time: "10:20"}
	first, err := repo.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.SetStatus(ctx, first.ID, StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// Cancelled appointments no longer hold the slot.
	if _, err := repo.Create(ctx, req); err != nil {
		t.Fatalf("expected slot released, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateAppointmentRequest
		want error
	}{
		{"missing client", CreateAppointmentRequest{Date: "2026-09-10", Time: "08:00"}, ErrMissingClient},
		{"bad date", CreateAppointmentRequest{ClientID: "c1", Date: "10/09/2026", Time: "08:00"}, ErrInvalidDate},
		{"bad time", CreateAppointmentRequest{ClientID: "c1", Date: "2026-09-10", Time: "8am"}, ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := repo.Create(ctx, &tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestListByDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	repo.Create(ctx, &CreateAppointmentRequest{ClientID: "c1", Date: "2026-09-10", Time: "08:00"})
	repo.Create(ctx, &CreateAppointmentRequest{ClientID: "c2", Date: "2026-09-11", Time: "08:00"})

	list, err := repo.ListByDate(ctx, "2026-09-10")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ClientID != "c1" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestSetStatusUnknownValues(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.SetStatus(ctx, "missing", StatusCancelled); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := repo.SetStatus(ctx, "missing", "no-show"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}
