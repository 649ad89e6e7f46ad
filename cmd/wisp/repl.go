package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/wisplang/wisp/internal/config"
	"github.com/wisplang/wisp/internal/eval"
	"github.com/wisplang/wisp/internal/object"
)

// runREPL drops into an interactive read-eval-print loop, persisting
// history via chzyer/readline and reusing a single root environment and
// parse cache across every line typed.
func runREPL(cfg config.Config, useColor, noLint bool) error {
	historyFile := cfg.HistoryFile
	if historyFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = home + "/.wisp_history"
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Colorize("wisp> ", colorCyan, useColor),
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return &CLIError{Type: "io", Message: "could not start the REPL", Details: err.Error()}
	}
	defer func() { _ = rl.Close() }()

	env := eval.NewRootEnv()
	cache := openCache(cfg)

	fmt.Fprintln(os.Stdout, Colorize("wisp REPL — Ctrl-D to exit", colorGray, useColor))

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}
			return &CLIError{Type: "io", Message: "REPL read error", Details: err.Error()}
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		result, err := evalTracked(line, env, cache, useColor, noLint)
		if err != nil {
			FormatError(os.Stdout, err, useColor)
			continue
		}
		if _, isVoid := result.(object.Void); !isVoid {
			fmt.Fprintln(os.Stdout, object.Print(result, true))
		}
	}

	_ = cache.Save()
	return nil
}
