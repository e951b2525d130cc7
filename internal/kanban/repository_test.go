package kanban

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

func TestCreateDefaultsToTodo(t *testing.T) {
	repo := newTestRepo(t)

	task, err := repo.Create(context.Background(), &CreateTaskRequest{Title: "Ajuste de Plano Alimentar - Ana"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != ColumnTodo {
		t.Fatalf("expected todo column, got %s", task.Status)
	}
}

func TestMoveAcrossColumns(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	task, err := repo.Create(ctx, &CreateTaskRequest{Title: "Análise de Exames - Bruno"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	moved, err := repo.Move(ctx, task.ID, ColumnDoing)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.Status != ColumnDoing {
		t.Fatalf("expected doing, got %s", moved.Status)
	}

	if _, err := repo.Move(ctx, task.ID, "archived"); !errors.Is(err, ErrInvalidColumn) {
		t.Fatalf("expected invalid column, got %v", err)
	}
	if _, err := repo.Move(ctx, "missing", ColumnDone); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	task, _ := repo.Create(ctx, &CreateTaskRequest{Title: "Revisar protocolos"})
	if err := repo.Delete(ctx, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
