package handlers

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/chzyer/readline"
)

var showHandler = handler{
	Name:        "SHOW",
	Mnemonic:    "SHOW or S <NAME> [<LIMIT>]",
	Completer:   readline.PcItem("show"),
	Parser:      regexp.MustCompile(`^(?i)(SHOW|S)\s+([^\s]+)\s*(\d*)$`),
	Description: "Print vector <NAME>, optionally only its first <LIMIT> elements.",
	Callback: func(cmd string, args []string, s *Session) error {
		v, err := find(s, args[0])
		if err != nil {
			return err
		}

		if args[1] == "" {
			fmt.Fprint(s.Out, v.String())
			return nil
		}

		limit, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(s.Out, "[ %s ]\n", dataAsString(&v.View, limit))

		return nil
	},
}
