package handlers

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/evilsocket/vek/vector"

	"github.com/chzyer/readline"
)

var deleteHandler = handler{
	Name:        "DELETE",
	Mnemonic:    "DELETE or D <NAME>",
	Completer:   readline.PcItem("delete"),
	Parser:      regexp.MustCompile(`^(?i)(DELETE|D)\s+([^\s]+)$`),
	Description: "Delete vector <NAME> and its data file.",
	Callback: func(cmd string, args []string, s *Session) error {
		if s.Store.Delete(args[0]) == nil {
			_, err := find(s, args[0])
			return err
		}

		fmt.Fprintf(s.Out, "vector %s successfully deleted.\n", args[0])

		return nil
	},
}

var resizeHandler = handler{
	Name:        "RESIZE",
	Mnemonic:    "RESIZE <NAME> <DIM>",
	Completer:   readline.PcItem("resize"),
	Parser:      regexp.MustCompile(`^(?i)(RESIZE)\s+([^\s]+)\s+(\d+)$`),
	Description: "Change the dimension of <NAME>, keeping its prefix and zero filling any growth.",
	Callback: func(cmd string, args []string, s *Session) error {
		v, err := find(s, args[0])
		if err != nil {
			return err
		}

		dim, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		resized := v.Clone()
		if err = resized.Resize(dim, vector.CopyData); err != nil {
			return err
		} else if err = s.Store.Update(args[0], resized); err != nil {
			return err
		}

		fmt.Fprintf(s.Out, "vector %s resized to %d elements.\n", args[0], dim)

		return nil
	},
}
