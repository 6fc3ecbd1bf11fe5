package main

import (
	"log"

	"LocalWhiteboard/internal/ui"
)

func main() {
	log.Println("Starting whiteboard")
	ui.RunApp()
}
