package main

import (
	"os"

	"github.com/qasimmansoori/insta-chat-analyzer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
