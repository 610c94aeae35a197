package handlers

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/evilsocket/vek/storage"
	"github.com/evilsocket/vek/vector"

	"github.com/chzyer/readline"
)

// ErrQuit is returned by the quit command.
var ErrQuit = errors.New("quit")

// Session holds what commands operate on.
type Session struct {
	Store *storage.Store[float64]
	Out   io.Writer
}

type handlerCb func(cmd string, args []string, s *Session) error

type handler struct {
	Parser      *regexp.Regexp
	Completer   *readline.PrefixCompleter
	Name        string
	Mnemonic    string
	Description string
	Callback    handlerCb
}

var Handlers = []handler{}
var Completers = (*readline.PrefixCompleter)(nil)

func init() {
	Handlers = []handler{
		helpHandler,
		quitHandler,
		infoHandler,
		// workspace
		listHandler,
		newHandler,
		readHandler,
		writeHandler,
		showHandler,
		deleteHandler,
		resizeHandler,
		// math
		normHandler,
		statsHandler,
		softMaxHandler,
		logSoftMaxHandler,
		scaleHandler,
		addHandler,
	}

	tmp := []readline.PrefixCompleterInterface{}
	for _, h := range Handlers {
		if h.Completer != nil {
			tmp = append(tmp, h.Completer)
		}
	}
	Completers = readline.NewPrefixCompleter(tmp...)
}

// vector preconditions are raised as panics, a mistyped command must not
// take the shell down
func safeCall(h handler, cmd string, args []string, s *Session) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if verr, ok := r.(*vector.Error); ok {
				err = verr
			} else {
				panic(r)
			}
		}
	}()
	return h.Callback(cmd, args, s)
}

// Dispatch runs the command matching cmd.
func Dispatch(cmd string, s *Session) error {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	for _, handler := range Handlers {
		match := false
		args := []string{}

		if handler.Parser != nil {
			if result := handler.Parser.FindStringSubmatch(cmd); result != nil && len(result) == handler.Parser.NumSubexp()+1 {
				cmd = result[1:][0]
				args = result[1:][1:]
				match = true
			}
		} else if strings.EqualFold(handler.Name, cmd) {
			match = true
		}

		if match {
			return safeCall(handler, cmd, args, s)
		}
	}

	return fmt.Errorf("command not found: %s", cmd)
}

func find(s *Session, name string) (*vector.Vector[float64], error) {
	if v := s.Store.Find(name); v != nil {
		return v, nil
	}
	return nil, fmt.Errorf("%s: %w", name, storage.ErrRecordNotFound)
}

// create or update
func save(s *Session, name string, v vector.Viewer[float64]) error {
	if s.Store.Find(name) != nil {
		return s.Store.Update(name, v)
	}
	return s.Store.Create(name, v)
}
