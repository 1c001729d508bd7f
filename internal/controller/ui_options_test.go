package controller

import "testing"

func TestStartOptions(t *testing.T) {
	called := false
	cfg := newStartConfig([]StartOption{WithTotal(3), WithInterrupt(func() { called = true })})

	if cfg.total != 3 {
		t.Fatalf("WithTotal(3) total = %d, want 3", cfg.total)
	}

	cfg.interrupt()

	if !called {
		t.Fatalf("WithInterrupt() did not register the callback")
	}
}
