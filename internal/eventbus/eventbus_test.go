package eventbus

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type created struct{ key int }

type deleted struct{ key int }

func bufferLogger(buf *bytes.Buffer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(buf)
	log.SetLevel(logrus.WarnLevel)
	return log
}

func TestPublishWarnsWithoutSubscribers(t *testing.T) {
	var buf bytes.Buffer
	b := New(bufferLogger(&buf))
	b.Subscribe(func(e *created) {
		t.Error("should not be called")
	})
	b.Publish(&deleted{key: 1})

	if !strings.Contains(buf.String(), "no matching subscribers") {
		t.Fatalf("expected warning, got %q", buf.String())
	}
}

func TestPublishCallsMatchingSubscriber(t *testing.T) {
	b := New(bufferLogger(&bytes.Buffer{}))
	got := 0
	b.Subscribe(func(e *created) { got = e.key })
	b.Publish(&created{key: 7})
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestPublishRecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	b := New(bufferLogger(&buf))
	calls := 0
	b.Subscribe(func(e *created) { panic("boom") })
	b.Subscribe(func(e *created) { calls++ })
	b.Publish(&created{})
	if calls != 1 {
		t.Fatalf("second subscriber calls = %d, want 1", calls)
	}
	if !strings.Contains(buf.String(), "panicked") {
		t.Fatalf("expected panic to be logged, got %q", buf.String())
	}
}

func TestPublishECollectsErrors(t *testing.T) {
	b := New(nil)
	sentinel := errors.New("save failed")
	b.Subscribe(func(e *created) error { return sentinel })
	b.Subscribe(func(e *created) error { return nil })
	b.Subscribe(func(e *created) int { return 1 })

	err := b.PublishE(&created{})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel in %v", err)
	}
	if !errors.Is(err, ErrInvalidHandlerReturn) {
		t.Fatalf("expected invalid return error in %v", err)
	}
	if err := b.PublishE(&deleted{}); !errors.Is(err, ErrNoSubscribers) {
		t.Fatalf("err = %v, want ErrNoSubscribers", err)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New(nil)
	h := func(e *created) {}
	b.Subscribe(h)
	b.Subscribe(func(e *deleted) {})
	b.Unsubscribe(h)
	if b.SubscribersCount() != 1 {
		t.Fatalf("count = %d, want 1", b.SubscribersCount())
	}
	b.Clear()
	if b.SubscribersCount() != 0 {
		t.Fatalf("count = %d after clear", b.SubscribersCount())
	}
}

func TestMatchSignature(t *testing.T) {
	if !MatchSignature(func(e *created) {}, []any{&created{}}) {
		t.Error("expected match")
	}
	if MatchSignature(func(e *created) {}, []any{&deleted{}}) {
		t.Error("expected mismatch on type")
	}
	if MatchSignature(func(e *created) {}, []any{}) {
		t.Error("expected mismatch on arity")
	}
	if !MatchSignature(func(ctx context.Context) {}, []any{context.Background()}) {
		t.Error("expected interface match")
	}
	if !MatchSignature(func(e *created) {}, []any{nil}) {
		t.Error("expected nil to match pointer param")
	}
}
