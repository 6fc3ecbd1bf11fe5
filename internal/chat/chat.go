package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// Responder answers one line of user text.
type Responder interface {
	Respond(ctx context.Context, text string) (string, error)
}

// cannedModel is an llms.Model that ignores its prompt and always gives the
// same reply. No inference happens.
type cannedModel struct {
	reply string
}

var _ llms.Model = cannedModel{}

func (m cannedModel) GenerateContent(ctx context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.reply}},
	}, nil
}

func (m cannedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

// Assistant sends user text to an llms.Model and returns the first choice.
type Assistant struct {
	llm llms.Model
}

func NewAssistant(llm llms.Model) *Assistant {
	return &Assistant{llm: llm}
}

// NewCanned returns the simulated assistant that always answers reply.
func NewCanned(reply string) *Assistant {
	return NewAssistant(cannedModel{reply: reply})
}

func (a *Assistant) Respond(ctx context.Context, text string) (string, error) {
	msgs := []llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, text)}
	resp, err := a.llm.GenerateContent(ctx, msgs)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from model")
	}
	return resp.Choices[0].Content, nil
}

// Transcript is the running conversation shown in the chat panel.
type Transcript struct {
	responder Responder
	lines     []string
	OnLine    func(line string)
}

func NewTranscript(r Responder) *Transcript {
	return &Transcript{responder: r}
}

// Send records the user's text and the reply. Blank input is ignored and
// reports false.
func (t *Transcript) Send(ctx context.Context, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}
	t.append("You: " + text)

	reply, err := t.responder.Respond(ctx, text)
	if err != nil {
		log.Printf("[CHAT] Responder failed: %v", err)
		return true, fmt.Errorf("chat respond: %w", err)
	}
	t.append("AI: " + reply)
	return true, nil
}

func (t *Transcript) append(line string) {
	t.lines = append(t.lines, line)
	if t.OnLine != nil {
		t.OnLine(line)
	}
}

func (t *Transcript) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Text is the transcript joined with newlines, as shown in the panel.
func (t *Transcript) Text() string {
	if len(t.lines) == 0 {
		return ""
	}
	return strings.Join(t.lines, "\n") + "\n"
}
