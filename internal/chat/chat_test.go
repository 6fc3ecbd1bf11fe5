package chat

import (
	"context"
	"errors"
	"testing"
)

const reply = "This is a response from the AI."

func TestCannedAlwaysSameReply(t *testing.T) {
	a := NewCanned(reply)
	for _, in := range []string{"hello", "draw me a cat", "?"} {
		got, err := a.Respond(context.Background(), in)
		if err != nil {
			t.Fatalf("Respond(%q): %v", in, err)
		}
		if got != reply {
			t.Errorf("Respond(%q) = %q, want %q", in, got, reply)
		}
	}
}

func TestCannedModelCall(t *testing.T) {
	got, err := cannedModel{reply: reply}.Call(context.Background(), "hi")
	if err != nil || got != reply {
		t.Fatalf("Call = %q, %v", got, err)
	}
}

func TestCannedHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewCanned(reply).Respond(ctx, "hi"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTranscriptSend(t *testing.T) {
	tr := NewTranscript(NewCanned(reply))
	var seen []string
	tr.OnLine = func(l string) { seen = append(seen, l) }

	sent, err := tr.Send(context.Background(), "  hello  ")
	if err != nil || !sent {
		t.Fatalf("Send = %v, %v", sent, err)
	}
	want := []string{"You: hello", "AI: " + reply}
	lines := tr.Lines()
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] || seen[i] != want[i] {
			t.Errorf("line %d = %q (callback %q), want %q", i, lines[i], seen[i], want[i])
		}
	}
	if tr.Text() != "You: hello\nAI: "+reply+"\n" {
		t.Errorf("unexpected text %q", tr.Text())
	}
}

func TestTranscriptIgnoresBlank(t *testing.T) {
	tr := NewTranscript(NewCanned(reply))
	sent, err := tr.Send(context.Background(), "   ")
	if sent || err != nil {
		t.Fatalf("Send(blank) = %v, %v", sent, err)
	}
	if len(tr.Lines()) != 0 {
		t.Errorf("blank input should not be recorded")
	}
}

type failing struct{}

func (failing) Respond(context.Context, string) (string, error) { return "", errors.New("offline") }

func TestTranscriptResponderError(t *testing.T) {
	tr := NewTranscript(failing{})
	sent, err := tr.Send(context.Background(), "hi")
	if !sent || err == nil {
		t.Fatalf("Send = %v, %v; want sent with error", sent, err)
	}
	if lines := tr.Lines(); len(lines) != 1 || lines[0] != "You: hi" {
		t.Errorf("lines = %v", lines)
	}
}
