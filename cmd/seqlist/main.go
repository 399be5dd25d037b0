package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"unicode"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/inoxlang/seqlist/internal/config"
	"github.com/inoxlang/seqlist/internal/seqlist"
	"github.com/inoxlang/seqlist/internal/utils"
	"github.com/posener/complete/v2/install"
)

const (
	ERROR_STATUS_CODE = 1
	COMMAND_NAME      = "seqlist"

	EVAL_SUBCMD                  = "eval"
	RANGE_SUBCMD                 = "range"
	HELP_SUBCMD                  = "help"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"

	MAX_RANGE_LENGTH = 1_000_000

	JSON_FORMAT = "json"
	YAML_FORMAT = "yaml"

	ERROR_COLOR   = "1"
	WARNING_COLOR = "3"
)

var (
	SUBCOMMANDS = []string{
		EVAL_SUBCMD, RANGE_SUBCMD, HELP_SUBCMD, INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD,
	}

	FORMATS = []string{JSON_FORMAT, YAML_FORMAT}

	//input of eval when no file is given.
	stdin io.Reader = os.Stdin
)

const SEQLIST_CMD_HELP = `Usage:
	seqlist <command> [arguments]

The commands are:
	eval                  read an array and apply a pipeline of list operations to it
	range                 print the integers between two bounds (inclusive)
	help                  print this help message, or the help of a command: help <command>
	install-completions   install shell completions
	uninstall-completions uninstall shell completions

Examples:
	seqlist eval -op sort -op take:3 data.json
	echo '[3, 1, 2]' | seqlist eval -op reverse -op sum
	seqlist range -o yaml 1 5

Environment:
	SEQLIST_GROWTH_FACTOR   growth factor of list buffers (2-16, default 2)
	SEQLIST_MIN_ALLOCATION  minimum capacity of a grown buffer (default 4)
	SEQLIST_LOG_LEVEL       level of the -debug logger (default info)
	NO_COLOR, FORCE_COLOR
`

func main() {
	//handle completions
	completer.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	if len(args) == 1 { //no subcommand specified
		fmt.Fprint(outW, SEQLIST_CMD_HELP)
		return ERROR_STATUS_CODE
	}

	mainSubCommand := args[1]
	mainSubCommandArgs := args[2:]

	//if the command has the shape help <subcommand> ... we modify the arguments to ask the subcommand to print its help message.
	if mainSubCommand == HELP_SUBCMD && len(mainSubCommandArgs) > 0 && mainSubCommandArgs[0] != "" && unicode.IsLetter(rune(mainSubCommandArgs[0][0])) {
		mainSubCommand = mainSubCommandArgs[0]
		mainSubCommandArgs = []string{"-h"}
	}

	if mainSubCommand == "--help" || mainSubCommand == "-h" {
		mainSubCommand = HELP_SUBCMD
	}

	//unknown command
	if !slices.Contains(SUBCOMMANDS, mainSubCommand) {
		fmt.Fprintf(errW, "unknown command '%s'", mainSubCommand)

		closest, _, ok := utils.FindClosestString(context.Background(), SUBCOMMANDS, mainSubCommand, 2)
		if ok {
			fmt.Fprintf(errW, ", did you mean '%s' ?\n", closest)
		} else {
			fmt.Fprint(errW, "\n"+SEQLIST_CMD_HELP)
		}
		return ERROR_STATUS_CODE
	}

	if config.ENV_ERR != nil {
		fmt.Fprintln(errW, config.Colorize("invalid environment: "+config.ENV_ERR.Error(), WARNING_COLOR))
	}

	if err := config.Apply(); err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}

	switch mainSubCommand {
	case HELP_SUBCMD:
		fmt.Fprint(outW, SEQLIST_CMD_HELP)
		return
	case INSTALL_COMPLETIONS_SUBCMD:
		err := install.Install(COMMAND_NAME)
		if err != nil {
			printError(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "installed")
		return
	case UNINSTALL_COMPLETIONS_SUBCMD:
		err := install.Uninstall(COMMAND_NAME)
		if err != nil {
			printError(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "uninstalled")
		return
	case EVAL_SUBCMD:
		return Eval(mainSubCommand, mainSubCommandArgs, outW, errW)
	case RANGE_SUBCMD:
		return PrintRange(mainSubCommand, mainSubCommandArgs, outW, errW)
	default:
		panic(fmt.Errorf("subcommand %q is not handled", mainSubCommand))
	}
}

func printError(errW io.Writer, err error) {
	fmt.Fprintln(errW, config.Colorize(err.Error(), ERROR_COLOR))
}

// writeValue encodes v in the given format and writes it to w followed by a newline.
func writeValue(w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case JSON_FORMAT:
		data, err = json.Marshal(v)
	case YAML_FORMAT:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown format %q, supported formats are %v", format, FORMATS)
	}

	if err != nil {
		return err
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

// PrintRange implements the range subcommand.
func PrintRange(subcommand string, args []string, outW, errW io.Writer) (exitCode int) {
	flags := newFlagSet(subcommand, errW)
	var outputFormat string
	flags.StringVar(&outputFormat, "o", JSON_FORMAT, "output format: json or yaml")
	flags.Usage = func() {
		fmt.Fprintf(errW, "Usage: seqlist range [-o json|yaml] LO HI\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return flagParsingExitCode(err)
	}

	if flags.NArg() != 2 {
		printError(errW, fmt.Errorf("range expects two integers, got %d argument(s)", flags.NArg()))
		return ERROR_STATUS_CODE
	}

	lo, err := strconv.ParseInt(flags.Arg(0), 10, 64)
	if err != nil {
		printError(errW, fmt.Errorf("invalid lower bound: %w", err))
		return ERROR_STATUS_CODE
	}

	hi, err := strconv.ParseInt(flags.Arg(1), 10, 64)
	if err != nil {
		printError(errW, fmt.Errorf("invalid upper bound: %w", err))
		return ERROR_STATUS_CODE
	}

	if length, ok := utils.SpanLen(lo, hi); !ok || length > MAX_RANGE_LENGTH {
		printError(errW, fmt.Errorf("%w: range [%d, %d] has more than %d elements", seqlist.ErrAllocationFailure, lo, hi, MAX_RANGE_LENGTH))
		return ERROR_STATUS_CODE
	}

	if err := writeValue(outW, outputFormat, seqlist.Range(lo, hi)); err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}
	return
}
