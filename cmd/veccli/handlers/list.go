package handlers

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/evilsocket/vek/vector"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/tui"
)

func dataAsString(v *vector.View[float64], limit int) string {
	tot := v.Dim()
	num := tot
	if limit > 0 && limit < tot {
		num = limit
	}
	strs := make([]string, num)
	for i := 0; i < num; i++ {
		strs[i] = strconv.FormatFloat(v.At(i), 'g', 6, 64)
	}
	s := strings.Join(strs, " ")
	if num < tot {
		s += " ..."
	}
	return s
}

var listHandler = handler{
	Name:        "LIST",
	Mnemonic:    "LIST or L",
	Completer:   readline.PcItem("list"),
	Parser:      regexp.MustCompile(`^(?i)(LIST|L)$`),
	Description: "Show the vectors of the workspace.",
	Callback: func(cmd string, args []string, s *Session) error {
		columns := []string{
			"name",
			"dim",
			"size",
			"file",
			"data",
		}
		rows := [][]string{}

		s.Store.ForEach(func(name string, v *vector.Vector[float64]) error {
			fileName, _ := s.Store.FileFor(name)
			rows = append(rows, []string{
				name,
				fmt.Sprintf("%d", v.Dim()),
				bytesOf(v),
				filepath.Base(fileName),
				dataAsString(&v.View, 8),
			})
			return nil
		})

		tui.Table(s.Out, columns, rows)

		fmt.Fprintf(s.Out, "[%d vectors]\n", len(rows))

		return nil
	},
}
