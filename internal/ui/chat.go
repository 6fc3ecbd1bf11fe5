package ui

import (
	"context"

	"LocalWhiteboard/internal/chat"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ChatPanel is the "Chat with AI" window content.
type ChatPanel struct {
	transcript *chat.Transcript
	history    *widget.Label
	input      *widget.Entry
	send       *widget.Button
	onError    func(error)
}

func NewChatPanel(r chat.Responder) *ChatPanel {
	p := &ChatPanel{
		transcript: chat.NewTranscript(r),
		history:    widget.NewLabel(""),
		input:      widget.NewEntry(),
	}
	p.history.Wrapping = fyne.TextWrapWord
	p.input.SetPlaceHolder("Type a message...")
	p.input.OnSubmitted = func(string) { p.Send() }
	p.send = widget.NewButton("Send", p.Send)
	return p
}

// Send posts whatever is in the entry box.
func (p *ChatPanel) Send() {
	sent, err := p.transcript.Send(context.Background(), p.input.Text)
	if sent {
		p.input.SetText("")
	}
	p.history.SetText(p.transcript.Text())
	if err != nil && p.onError != nil {
		p.onError(err)
	}
}

func (p *ChatPanel) Content() fyne.CanvasObject {
	bottom := container.NewBorder(nil, nil, nil, p.send, p.input)
	return container.NewBorder(nil, bottom, nil, nil, container.NewVScroll(p.history))
}

func showChat(a fyne.App, r chat.Responder) {
	w := a.NewWindow("Chat with AI")
	w.Resize(fyne.NewSize(400, 500))
	panel := NewChatPanel(r)
	panel.onError = func(err error) { dialog.ShowError(err, w) }
	w.SetContent(panel.Content())
	w.Show()
}
