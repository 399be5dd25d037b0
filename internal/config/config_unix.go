//go:build unix

package config

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

const (
	UNIX = true
)

func targetSpecificInit() {
	//TERMCOLOR

	TRUECOLOR_COLORTERM = os.Getenv("COLORTERM") == "truecolor"

	//TERM

	term := os.Getenv("TERM")
	if strings.Contains(term, "256color") {
		TERM_256COLOR_CAPABLE = true
	}

	//

	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || TRUECOLOR_COLORTERM || TERM_256COLOR_CAPABLE)

	if SHOULD_COLORIZE {
		COLOR_PROFILE = termenv.EnvColorProfile()
		if COLOR_PROFILE == termenv.Ascii {
			COLOR_PROFILE = termenv.ANSI
		}
	}
}
