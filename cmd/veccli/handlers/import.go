package handlers

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/evilsocket/vek/vector"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/fs"
)

// files ending in .txt use the text format
func isText(fileName string) bool {
	return strings.EqualFold(filepath.Ext(fileName), ".txt")
}

var readHandler = handler{
	Name:        "READ",
	Mnemonic:    "READ or R <NAME> <FILE>",
	Completer:   readline.PcItem("read"),
	Parser:      regexp.MustCompile(`^(?i)(READ|R)\s+([^\s]+)\s+(.+)$`),
	Description: "Import <FILE> into vector <NAME>, .txt files are parsed as text, anything else as binary.",
	Callback: func(cmd string, args []string, s *Session) error {
		name, fileName := args[0], args[1]
		if !fs.Exists(fileName) {
			return fmt.Errorf("%s does not exist", fileName)
		}

		f, err := os.Open(fileName)
		if err != nil {
			return err
		}
		defer f.Close()

		v, err := vector.New[float64](0, vector.Undefined)
		if err != nil {
			return err
		} else if err = v.Read(bufio.NewReader(f), !isText(fileName), false); err != nil {
			return err
		} else if err = save(s, name, v); err != nil {
			return err
		}

		fmt.Fprintf(s.Out, "%d elements read from %s into %s.\n", v.Dim(), fileName, name)

		return nil
	},
}

var writeHandler = handler{
	Name:        "WRITE",
	Mnemonic:    "WRITE or W <NAME> <FILE>",
	Completer:   readline.PcItem("write"),
	Parser:      regexp.MustCompile(`^(?i)(WRITE|W)\s+([^\s]+)\s+(.+)$`),
	Description: "Export vector <NAME> to <FILE>, as text if it ends in .txt, as binary otherwise.",
	Callback: func(cmd string, args []string, s *Session) error {
		name, fileName := args[0], args[1]
		v, err := find(s, name)
		if err != nil {
			return err
		}

		f, err := os.Create(fileName)
		if err != nil {
			return err
		}
		defer f.Close()

		w := bufio.NewWriter(f)
		if err = v.Write(w, !isText(fileName)); err != nil {
			return err
		} else if err = w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(s.Out, "%s saved to %s.\n", name, fileName)

		return nil
	},
}
