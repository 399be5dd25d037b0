package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/inoxlang/seqlist/internal/config"
	"github.com/inoxlang/seqlist/internal/memds"
	"github.com/inoxlang/seqlist/internal/seqlist"
	"github.com/inoxlang/seqlist/internal/utils"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

type opsFlag []string

func (f *opsFlag) String() string {
	return strings.Join(*f, " ")
}

func (f *opsFlag) Set(s string) error {
	*f = append(*f, s)
	return nil
}

// Eval implements the eval subcommand: it reads an array, applies the operations given with
// -op from left to right and writes the result.
func Eval(subcommand string, args []string, outW, errW io.Writer) (exitCode int) {
	flags := newFlagSet(subcommand, errW)

	var (
		inputFormat  string
		outputFormat string
		debug        bool
		ops          opsFlag
	)

	flags.StringVar(&inputFormat, "i", JSON_FORMAT, "input format: json or yaml")
	flags.StringVar(&outputFormat, "o", JSON_FORMAT, "output format: json or yaml")
	flags.BoolVar(&debug, "debug", false, "log buffer allocations and copies to stderr")
	flags.Var(&ops, "op", "operation to apply, can be repeated")
	flags.Usage = func() {
		fmt.Fprintf(errW, "Usage: seqlist eval [-i json|yaml] [-o json|yaml] [-debug] -op <op> ... [file]\n")
		flags.PrintDefaults()
		fmt.Fprint(errW, OPERATIONS_HELP)
	}

	if err := flags.Parse(args); err != nil {
		return flagParsingExitCode(err)
	}

	if flags.NArg() > 1 {
		printError(errW, fmt.Errorf("eval expects at most one file, got %d arguments", flags.NArg()))
		return ERROR_STATUS_CODE
	}

	pipeline, err := parsePipeline(ops)
	if err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}

	if debug {
		logger := config.NewLogger(errW).Level(min(config.LOG_LEVEL, zerolog.DebugLevel))
		seqlist.SetLogger(logger)
		memds.SetLogger(logger)
		defer seqlist.ResetLogger()
		defer memds.ResetLogger()
	}

	var input []byte
	if flags.NArg() == 1 {
		input, err = os.ReadFile(flags.Arg(0))
	} else {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			printError(errW, errors.New("no input: pass a file or pipe an array to the command"))
			return ERROR_STATUS_CODE
		}
		input, err = io.ReadAll(stdin)
	}
	if err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}

	list, err := decodeList(input, inputFormat)
	if err != nil {
		printError(errW, fmt.Errorf("failed to decode input: %w", err))
		return ERROR_STATUS_CODE
	}

	defer func() {
		//growing a list beyond seqlist.MaxLength panics.
		if e := recover(); e != nil {
			printError(errW, utils.ConvertPanicValueToError(e))
			exitCode = ERROR_STATUS_CODE
		}
	}()

	result, err := runPipeline(pipeline, list)
	if err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}

	if err := writeValue(outW, outputFormat, result); err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}
	return
}

func decodeList(input []byte, format string) (list seqlist.List[any], err error) {
	switch format {
	case JSON_FORMAT:
		err = json.Unmarshal(input, &list)
	case YAML_FORMAT:
		err = yaml.Unmarshal(input, &list)
	default:
		return list, fmt.Errorf("unknown format %q, supported formats are %v", format, FORMATS)
	}

	if err != nil {
		return
	}
	return seqlist.Map(list, normalizeElement).ReleaseExcessCapacity(), nil
}

// runPipeline dequeues and applies the operations, a terminal operation ends the pipeline.
func runPipeline(pipeline *memds.ArrayQueue[operation], list seqlist.List[any]) (any, error) {
	for {
		op, ok := pipeline.Dequeue()
		if !ok {
			return list, nil
		}

		if op.finish != nil {
			result, err := op.finish(list)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op.text, err)
			}
			return result, nil
		}

		list, ok = op.transform(list)
		if !ok {
			return nil, fmt.Errorf("%s: %w", op.text, seqlist.ErrListWasEmpty)
		}
	}
}

func newFlagSet(name string, errW io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(errW)
	return flags
}

func flagParsingExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return ERROR_STATUS_CODE
}
