//go:build !unix

package config

const (
	UNIX = false
)

func targetSpecificInit() {
	SHOULD_COLORIZE = !NO_COLOR && FORCE_COLOR
}
