package handlers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/evilsocket/vek/vector"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/str"
)

func makeVector(def string) (*vector.Vector[float64], error) {
	if strings.HasPrefix(def, "[") {
		v, err := vector.New[float64](0, vector.Undefined)
		if err != nil {
			return nil, err
		} else if err = v.Read(strings.NewReader(def), false, false); err != nil {
			return nil, err
		}
		return v, nil
	}

	parts := str.SplitBy(def, " ")
	if len(parts) == 0 {
		return nil, fmt.Errorf("missing dimension")
	}
	dim, err := strconv.Atoi(parts[0])
	if err != nil || dim < 0 {
		return nil, fmt.Errorf("invalid dimension '%s'", parts[0])
	}

	fill := "zero"
	if len(parts) > 1 {
		fill = strings.ToLower(parts[1])
	}

	v, err := vector.New[float64](dim, vector.SetZero)
	if err != nil {
		return nil, err
	}

	switch fill {
	case "zero":
	case "randn":
		v.SetRandn()
	case "uniform":
		v.SetRandUniform()
	default:
		if c, err := strconv.ParseFloat(fill, 64); err != nil {
			return nil, fmt.Errorf("unknown fill '%s', use zero, randn, uniform or a number", fill)
		} else {
			v.Set(c)
		}
	}
	return v, nil
}

var newHandler = handler{
	Name:        "NEW",
	Mnemonic:    "NEW or N <NAME> <DIM> [zero|randn|uniform|<VALUE>] or NEW <NAME> [ <V1> <V2> ... ]",
	Completer:   readline.PcItem("new"),
	Parser:      regexp.MustCompile(`^(?i)(NEW|N)\s+([^\s]+)\s+(.+)$`),
	Description: "Create a vector either filled as requested or from its text representation.",
	Callback: func(cmd string, args []string, s *Session) error {
		v, err := makeVector(str.Trim(args[1]))
		if err != nil {
			return err
		} else if err = s.Store.Create(args[0], v); err != nil {
			return err
		}

		fmt.Fprintf(s.Out, "vector %s created with %d elements.\n", args[0], v.Dim())

		return nil
	},
}
