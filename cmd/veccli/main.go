package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/evilsocket/vek/backend"
	"github.com/evilsocket/vek/cmd/veccli/handlers"
	"github.com/evilsocket/vek/common"
	"github.com/evilsocket/vek/storage"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/fs"
	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/islazy/str"
)

const (
	prompt  = "\033[31m»\033[0m "
	history = "/tmp/veccli.tmp"
)

var (
	backendName = flag.String("backend", "blas", "Computation backend, 'blas' or 'naive'.")
	workspace   = flag.String("workspace", "/var/lib/veccli/data", "Folder holding the vector data files.")
	compression = flag.String("compression", "none", "Compression of new data files: 'none', 'lz4' or 'zstd'.")
	evalString  = flag.String("eval", "", "List of commands to run, divided by a semicolon.")
	logFile     = flag.String("log-file", "", "If filled, the shell will log to this file.")
	logDebug    = flag.Bool("debug", false, "Enable debug logs.")
	cpuProfile  = flag.String("cpu-profile", "", "Write CPU profile to this file.")
	memProfile  = flag.String("mem-profile", "", "Write memory profile to this file.")
)

func cleanup() {
	common.DoCleanup(cpuProfile, memProfile)
	common.TeardownLogging()
}

// false when the shell has to exit
func run(line string, session *handlers.Session) bool {
	for _, cmd := range str.SplitBy(line, ";") {
		if err := handlers.Dispatch(cmd, session); errors.Is(err, handlers.ErrQuit) {
			return false
		} else if err != nil {
			fmt.Printf("%s\n", err)
		}
	}
	return true
}

func main() {
	flag.Parse()

	common.SetupLogging(logFile, logDebug)
	common.SetupSignals(func(_ os.Signal) { cleanup() })
	common.StartProfiling(cpuProfile)
	defer cleanup()

	if err := backend.Select(*backendName); err != nil {
		log.Fatal("%v", err)
	}

	comp, err := storage.ParseCompression(*compression)
	if err != nil {
		log.Fatal("%v", err)
	}

	if !fs.Exists(*workspace) {
		log.Debug("creating %s ...", *workspace)
		if err := os.MkdirAll(*workspace, 0755); err != nil {
			log.Fatal("%v", err)
		}
	}

	store := storage.Open[float64](*workspace, comp)
	if err := store.Load(); err != nil {
		log.Fatal("%v", err)
	}
	log.Debug("backend %s, %d vectors in %s", backend.Name(), store.Size(), store.Path())

	session := &handlers.Session{
		Store: store,
		Out:   os.Stdout,
	}

	if *evalString != "" && !run(*evalString, session) {
		return
	}

	reader, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("veccli@%s %s", backend.Name(), prompt),
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    handlers.Completers,
	})
	if err != nil {
		log.Fatal("%v", err)
	}
	defer reader.Close()

	for {
		if line, err := reader.Readline(); err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		} else if !run(line, session) {
			break
		}
	}
}
