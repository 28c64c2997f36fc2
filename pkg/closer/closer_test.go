package closer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestClose_LIFOOrder(t *testing.T) {
	c := NewCloser(0)

	var order []string
	for _, name := range []string{"db", "redis", "http"} {
		name := name
		c.Add(func(ctx context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"http", "redis", "db"}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("expected close order %v, got %v", want, order)
		}
	}
}

func TestClose_CollectsErrors(t *testing.T) {
	c := NewCloser(0)
	c.Add(func(ctx context.Context) error { return nil })
	c.Add(func(ctx context.Context) error { return errors.New("redis close failed") })

	err := c.Close(context.Background())
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
}

func TestClose_RunsOnce(t *testing.T) {
	c := NewCloser(0)

	calls := 0
	c.Add(func(ctx context.Context) error {
		calls++
		return nil
	})

	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("unexpected error on repeat close: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single invocation, got %d", calls)
	}
}

func TestClose_ForcedOnExpiredContext(t *testing.T) {
	c := NewCloser(time.Second)

	slowDone := make(chan struct{})
	c.Add(func(ctx context.Context) error {
		close(slowDone)
		return nil
	})
	c.Add(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	if err == nil {
		t.Fatalf("expected interrupted shutdown error")
	}

	// Оставшийся ресурс всё равно закрывается, принудительно
	select {
	case <-slowDone:
	case <-time.After(2 * time.Second):
		t.Fatalf("remaining func was not force-closed")
	}
}
