package ui

import (
	"log"

	"LocalWhiteboard/internal/chat"
	"LocalWhiteboard/internal/config"
	"LocalWhiteboard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

const appID = "io.localwhiteboard.app"

func RunApp() {
	myApp := app.NewWithID(appID)
	cfg := config.Load(myApp.Preferences())

	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	board := NewBoardWidget(cfg)
	dialogs := &fyneDialogs{win: myWindow, status: board.SetStatus}
	assistant := chat.NewCanned(cfg.ChatReply)

	ctrl := board.Controller()
	ctrl.OnStyle = func(s state.Style) {
		board.showStyle()
		if ctrl.Tool() != state.ToolEraser {
			config.Remember(myApp.Preferences(), s.Color, s.Width)
		}
	}
	board.showStyle()

	toolbar := NewToolbar(board, toolbarActions{
		chooseColor: func() { ctrl.ChooseColor(dialogs) },
		export:      func() { ctrl.Export(dialogs, dialogs) },
		chat:        func() { showChat(myApp, assistant) },
	})

	content := container.NewBorder(nil, board.statusBar, toolbar, nil, board)
	myWindow.SetContent(content)

	log.Printf("[BOARD] Window ready (%.0fx%.0f)", cfg.WindowWidth, cfg.WindowHeight)
	myWindow.ShowAndRun()
}
