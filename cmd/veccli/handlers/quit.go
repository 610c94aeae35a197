package handlers

import (
	"regexp"

	"github.com/chzyer/readline"
)

var quitHandler = handler{
	Name:        "QUIT",
	Mnemonic:    "QUIT, Q or EXIT",
	Completer:   readline.PcItem("quit"),
	Parser:      regexp.MustCompile(`^(?i)(QUIT|Q|EXIT)$`),
	Description: "Exit the shell.",
	Callback: func(cmd string, args []string, s *Session) error {
		return ErrQuit
	},
}
