package main

import (
	"strings"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	predictFormat = predict.Set(FORMATS)

	completer = &complete.Command{
		Sub: map[string]*complete.Command{
			EVAL_SUBCMD: {
				Flags: map[string]complete.Predictor{
					"i":     predictFormat,
					"o":     predictFormat,
					"debug": predict.Nothing,
					"op":    complete.PredictFunc(predictOperation),
				},
				Args: predict.Files("*"),
			},
			RANGE_SUBCMD: {
				Flags: map[string]complete.Predictor{
					"o": predictFormat,
				},
			},
			HELP_SUBCMD: {
				Args: predict.Set(SUBCOMMANDS),
			},
			INSTALL_COMPLETIONS_SUBCMD:   {},
			UNINSTALL_COMPLETIONS_SUBCMD: {},
		},
	}
)

func predictOperation(prefix string) (results []string) {
	for _, name := range OPERATION_NAMES {
		if strings.HasPrefix(name, prefix) {
			results = append(results, name)
		}
	}
	return
}
