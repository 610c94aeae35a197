package handlers

import (
	"fmt"
	"runtime"

	"github.com/evilsocket/vek/backend"
	"github.com/evilsocket/vek/vector"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/tui"
)

func bytesOf(v *vector.Vector[float64]) string {
	return humanize.Bytes(uint64(v.Dim()) * 8)
}

var infoHandler = handler{
	Name:        "INFO",
	Mnemonic:    "INFO",
	Completer:   readline.PcItem("info"),
	Description: "Display backend and workspace information.",
	Callback: func(cmd string, args []string, s *Session) error {
		total := uint64(0)
		s.Store.ForEach(func(name string, v *vector.Vector[float64]) error {
			total += uint64(v.Dim()) * 8
			return nil
		})

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		rows := [][]string{
			{"backend", backend.Name()},
			{"workspace", s.Store.Path()},
			{"compression", s.Store.Compression().String()},
			{"vectors", fmt.Sprintf("%d", s.Store.Size())},
			{"data", humanize.Bytes(total)},
			{"allocated", humanize.Bytes(backend.Used())},
			{"memory", humanize.Bytes(backend.Space())},
			{"heap", humanize.Bytes(m.HeapAlloc)},
		}

		tui.Table(s.Out, []string{"name", "value"}, rows)

		return nil
	},
}
