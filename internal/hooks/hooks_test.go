package hooks

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

func TestRegistry_RunsInRegistrationOrder(t *testing.T) {
	var calls []string
	r := NewRegistry()
	r.Register("before:deploy:cleanup", func(ctx context.Context) error {
		calls = append(calls, "first")
		return nil
	})
	r.Register("before:deploy:cleanup", func(ctx context.Context) error {
		calls = append(calls, "second")
		return nil
	})

	if err := r.Run(context.Background(), "before:deploy:cleanup"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !reflect.DeepEqual(calls, []string{"first", "second"}) {
		t.Errorf("Expected [first second], got: %v", calls)
	}
}

func TestRegistry_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	ran := false

	r := NewRegistry()
	r.Register("encrypt:encrypt", func(ctx context.Context) error { return boom })
	r.Register("encrypt:encrypt", func(ctx context.Context) error {
		ran = true
		return nil
	})

	err := r.Run(context.Background(), "encrypt:encrypt")
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped boom error, got: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "encrypt:encrypt: ") {
		t.Errorf("Expected error to be prefixed with the event, got: %v", err)
	}
	if ran {
		t.Error("Expected later callbacks to be skipped")
	}
}

func TestRegistry_UnknownEvent(t *testing.T) {
	var r Registry
	err := r.Run(context.Background(), "deploy:deploy")
	if !errors.Is(err, kerrors.ErrUnknownEvent) {
		t.Errorf("Expected ErrUnknownEvent, got: %v", err)
	}
}

func TestRegistry_EventsAndHas(t *testing.T) {
	r := NewRegistry()
	noop := func(ctx context.Context) error { return nil }
	r.Register("decrypt:decrypt", noop)
	r.Register("before:deploy:cleanup", noop)
	r.Register("encrypt:encrypt", noop)

	expected := []string{"before:deploy:cleanup", "decrypt:decrypt", "encrypt:encrypt"}
	if got := r.Events(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got: %v", expected, got)
	}
	if !r.Has("encrypt:encrypt") {
		t.Error("Expected encrypt:encrypt to be registered")
	}
	if r.Has("deploy:deploy") {
		t.Error("Expected deploy:deploy not to be registered")
	}
}

func TestRegistry_CancelledContext(t *testing.T) {
	r := NewRegistry()
	r.Register("encrypt:encrypt", func(ctx context.Context) error {
		t.Error("Expected callback not to run")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Run(ctx, "encrypt:encrypt"); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
}
