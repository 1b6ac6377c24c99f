package collection

import (
	"context"
	"testing"
	"time"

	"rb-admin-console/internal/domain"
)

func TestWorkspace_SweepEvictsIdle(t *testing.T) {
	ws := NewWorkspace(domain.DefaultRegistry(), nil, nil, nil, time.Minute)
	ctx := context.Background()

	st, _ := ws.Store("token-a", domain.ResourceChats)
	st.EnsureLoaded(ctx, "token-a", nil)
	if err := st.Delete(ctx, "token-a", "1", yes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := ws.Sweep(time.Now()); n != 0 {
		t.Fatalf("expected fresh session to survive, evicted %d", n)
	}
	if n := ws.Sweep(time.Now().Add(2 * time.Minute)); n != 1 {
		t.Fatalf("expected 1 idle session evicted, got %d", n)
	}

	again, _ := ws.Store("token-a", domain.ResourceChats)
	if again == st {
		t.Fatalf("expected a new store after eviction")
	}
	if again.Snapshot().Loaded {
		t.Fatalf("expected recreated store to be empty until loaded")
	}
	again.EnsureLoaded(ctx, "token-a", nil)
	if again.Find("1") == nil {
		t.Fatalf("expected seed data back after eviction")
	}
}

func TestWorkspace_SweepDisabledWithoutIdle(t *testing.T) {
	ws := NewWorkspace(domain.DefaultRegistry(), nil, nil, nil, 0)
	ws.Store("token-a", domain.ResourceChats)

	if n := ws.Sweep(time.Now().Add(24 * time.Hour)); n != 0 {
		t.Fatalf("expected no eviction without idle timeout, got %d", n)
	}
}

func TestWorkspace_RunStopsOnCancel(t *testing.T) {
	ws := NewWorkspace(domain.DefaultRegistry(), nil, nil, nil, 20*time.Millisecond)
	ws.Store("token-a", domain.ResourceChats)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for ws.Sessions() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if ws.Sessions() != 0 {
		t.Fatalf("expected idle session to be swept by Run")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected Run to return after cancel")
	}
}

func TestWorkspace_Forget(t *testing.T) {
	ws := NewWorkspace(domain.DefaultRegistry(), nil, nil, nil, 0)

	st, _ := ws.Store("token-a", domain.ResourceChats)
	ws.Store("token-b", domain.ResourceChats)
	ws.Forget("token-a")

	if ws.Sessions() != 1 {
		t.Fatalf("expected 1 session left, got %d", ws.Sessions())
	}
	if again, _ := ws.Store("token-a", domain.ResourceChats); again == st {
		t.Fatalf("expected forgotten session to start over")
	}
}

func TestWorkspace_EvictsOldestWhenFull(t *testing.T) {
	ws := NewWorkspace(domain.DefaultRegistry(), nil, nil, nil, 0)
	ws.SetMaxSessions(2)

	a, _ := ws.Store("token-a", domain.ResourceChats)
	time.Sleep(2 * time.Millisecond)
	b, _ := ws.Store("token-b", domain.ResourceChats)
	time.Sleep(2 * time.Millisecond)
	ws.Store("token-a", domain.ResourceChats)
	time.Sleep(2 * time.Millisecond)

	ws.Store("token-c", domain.ResourceChats)
	if ws.Sessions() != 2 {
		t.Fatalf("expected sessions capped at 2, got %d", ws.Sessions())
	}
	if got, _ := ws.Store("token-a", domain.ResourceChats); got != a {
		t.Fatalf("expected recently used session to survive")
	}
	if got, _ := ws.Store("token-b", domain.ResourceChats); got == b {
		t.Fatalf("expected least recently used session to be evicted")
	}
	if ws.Sessions() != 2 {
		t.Fatalf("expected sessions capped at 2, got %d", ws.Sessions())
	}
}
