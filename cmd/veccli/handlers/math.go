package handlers

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/evilsocket/vek/vector"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/tui"
)

func parseNumber(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "inf", "+inf":
		return math.Inf(1), nil
	}
	return strconv.ParseFloat(s, 64)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// runs op on a copy of <NAME> and persists the result
func transform(s *Session, name string, op func(v *vector.Vector[float64]) error) error {
	v, err := find(s, name)
	if err != nil {
		return err
	}
	v = v.Clone()
	if err = op(v); err != nil {
		return err
	}
	return s.Store.Update(name, v)
}

var normHandler = handler{
	Name:        "NORM",
	Mnemonic:    "NORM <NAME> [<P>]",
	Completer:   readline.PcItem("norm"),
	Parser:      regexp.MustCompile(`^(?i)(NORM)\s+([^\s]+)\s*([^\s]*)$`),
	Description: "Print the p-norm of <NAME>, p defaults to 2 and can be 'inf'.",
	Callback: func(cmd string, args []string, s *Session) error {
		v, err := find(s, args[0])
		if err != nil {
			return err
		}

		p := 2.0
		if args[1] != "" {
			if p, err = parseNumber(args[1]); err != nil {
				return err
			}
		}

		fmt.Fprintf(s.Out, "%s\n", ftoa(v.Norm(p)))

		return nil
	},
}

var statsHandler = handler{
	Name:        "STATS",
	Mnemonic:    "STATS <NAME>",
	Completer:   readline.PcItem("stats"),
	Parser:      regexp.MustCompile(`^(?i)(STATS)\s+([^\s]+)$`),
	Description: "Show reductions of vector <NAME>.",
	Callback: func(cmd string, args []string, s *Session) error {
		v, err := find(s, args[0])
		if err != nil {
			return err
		}

		rows := [][]string{
			{"dim", fmt.Sprintf("%d", v.Dim())},
			{"size", bytesOf(v)},
			{"sum", ftoa(v.Sum())},
		}

		if v.Dim() > 0 {
			lo, loIdx := v.MinIndex()
			hi, hiIdx := v.MaxIndex()
			rows = append(rows,
				[]string{"min", fmt.Sprintf("%s (at %d)", ftoa(lo), loIdx)},
				[]string{"max", fmt.Sprintf("%s (at %d)", ftoa(hi), hiIdx)},
				[]string{"mean", ftoa(v.Sum() / float64(v.Dim()))},
				[]string{"norm1", ftoa(v.Norm(1))},
				[]string{"norm2", ftoa(v.Norm(2))},
				[]string{"logsumexp", ftoa(v.LogSumExp(-1))},
			)
			if lo >= 0 {
				rows = append(rows, []string{"sumlog", ftoa(v.SumLog())})
			}
		}

		tui.Table(s.Out, []string{"name", "value"}, rows)

		return nil
	},
}

var softMaxHandler = handler{
	Name:        "SOFTMAX",
	Mnemonic:    "SOFTMAX <NAME>",
	Completer:   readline.PcItem("softmax"),
	Parser:      regexp.MustCompile(`^(?i)(SOFTMAX)\s+([^\s]+)$`),
	Description: "Replace <NAME> with its softmax and print the log normalizer.",
	Callback: func(cmd string, args []string, s *Session) error {
		var norm float64
		err := transform(s, args[0], func(v *vector.Vector[float64]) error {
			norm = v.ApplySoftMax()
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(s.Out, "%s\n", ftoa(norm))

		return nil
	},
}

var logSoftMaxHandler = handler{
	Name:        "LOGSOFTMAX",
	Mnemonic:    "LOGSOFTMAX <NAME>",
	Completer:   readline.PcItem("logsoftmax"),
	Parser:      regexp.MustCompile(`^(?i)(LOGSOFTMAX)\s+([^\s]+)$`),
	Description: "Replace <NAME> with its log softmax and print the log normalizer.",
	Callback: func(cmd string, args []string, s *Session) error {
		var norm float64
		err := transform(s, args[0], func(v *vector.Vector[float64]) error {
			norm = v.ApplyLogSoftMax()
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(s.Out, "%s\n", ftoa(norm))

		return nil
	},
}

var scaleHandler = handler{
	Name:        "SCALE",
	Mnemonic:    "SCALE <NAME> <ALPHA>",
	Completer:   readline.PcItem("scale"),
	Parser:      regexp.MustCompile(`^(?i)(SCALE)\s+([^\s]+)\s+([^\s]+)$`),
	Description: "Multiply every element of <NAME> by <ALPHA>.",
	Callback: func(cmd string, args []string, s *Session) error {
		alpha, err := parseNumber(args[1])
		if err != nil {
			return err
		}

		err = transform(s, args[0], func(v *vector.Vector[float64]) error {
			v.Scale(alpha)
			return nil
		})

		return err
	},
}

var addHandler = handler{
	Name:        "ADD",
	Mnemonic:    "ADD <DST> <ALPHA> <SRC>",
	Completer:   readline.PcItem("add"),
	Parser:      regexp.MustCompile(`^(?i)(ADD)\s+([^\s]+)\s+([^\s]+)\s+([^\s]+)$`),
	Description: "Compute <DST> += <ALPHA> * <SRC>.",
	Callback: func(cmd string, args []string, s *Session) error {
		alpha, err := parseNumber(args[1])
		if err != nil {
			return err
		}

		src, err := find(s, args[2])
		if err != nil {
			return err
		}

		err = transform(s, args[0], func(v *vector.Vector[float64]) error {
			v.AddVec(alpha, src)
			return nil
		})

		return err
	},
}
