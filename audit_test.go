package goPassCheck

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestDispatcherDeliversToSink(t *testing.T) {
	sink := NewChannelSink(4)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 4}, sink)
	defer d.Close()

	d.Emit(context.Background(), AuditEvent{EventType: "password_check", Score: 7})

	select {
	case event := <-sink.Events():
		if event.EventType != "password_check" || event.Score != 7 {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestDispatcherDisabledReturnsNil(t *testing.T) {
	if d := newAuditDispatcher(AuditConfig{Enabled: false}, NoOpSink{}); d != nil {
		t.Fatal("expected nil dispatcher when audit disabled")
	}

	// Nil dispatcher methods must be safe.
	var d *auditDispatcher
	d.Emit(context.Background(), AuditEvent{})
	d.Close()
	if d.Dropped() != 0 {
		t.Fatal("expected 0 dropped for nil dispatcher")
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	// A blocking sink keeps the worker busy so the buffer fills up.
	block := make(chan struct{})
	sink := blockingSink{release: block}

	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, sink)

	for i := 0; i < 10; i++ {
		d.Emit(context.Background(), AuditEvent{})
	}

	if d.Dropped() == 0 {
		t.Fatal("expected dropped events under backpressure")
	}

	close(block)
	d.Close()
}

func TestDispatcherCloseDrainsBuffer(t *testing.T) {
	sink := NewChannelSink(16)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 16}, sink)

	for i := 0; i < 5; i++ {
		d.Emit(context.Background(), AuditEvent{Score: i})
	}
	d.Close()

	received := 0
	for {
		select {
		case <-sink.Events():
			received++
		default:
			if received != 5 {
				t.Fatalf("expected 5 drained events, got %d", received)
			}
			return
		}
	}
}

func TestJSONWriterSinkWritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{EventType: "password_check", HashPrefix: "5BAA6", Score: 0, Success: true})

	line := bytes.TrimSpace(buf.Bytes())
	var decoded map[string]any
	if err := json.Unmarshal(line, &decoded); err != nil {
		t.Fatalf("expected valid JSON line, got %q: %v", line, err)
	}
	if decoded["event_type"] != "password_check" {
		t.Fatalf("unexpected event_type: %v", decoded["event_type"])
	}
	if decoded["hash_prefix"] != "5BAA6" {
		t.Fatalf("unexpected hash_prefix: %v", decoded["hash_prefix"])
	}
}

type blockingSink struct {
	release chan struct{}
}

func (s blockingSink) Emit(context.Context, AuditEvent) {
	<-s.release
}
