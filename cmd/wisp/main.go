// Command wisp is the command-line front end for the interpreter: it
// runs a source file, pipes stdin, drops into a REPL, or watches a file
// and re-runs it on every save.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/internal/config"
	"github.com/wisplang/wisp/internal/eval"
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/lint"
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/parser"
	"github.com/wisplang/wisp/internal/replcache"
)

func main() {
	var (
		file       string
		debug      bool
		noColor    bool
		noLint     bool
		watch      bool
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:           "wisp [file]",
		Short:         "Run or explore wisp programs",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				file = args[0]
			}

			cfg := loadConfig(configPath, debug)
			useColor := !noColor && !cfg.NoColor
			useDebug := debug || cfg.Debug
			if useDebug {
				if err := os.Setenv("WISP_DEBUG", "1"); err != nil {
					return &CLIError{Type: "io", Message: fmt.Sprintf("could not enable debug logging: %v", err)}
				}
			}

			if file == "" && !hasPipedInput() {
				return runREPL(cfg, useColor, noLint)
			}

			cache := openCache(cfg)
			if watch {
				return runWatch(file, cache, useColor, noLint)
			}
			return runFile(file, cache, useColor, noLint)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&file, "file", "f", "", "path to a wisp source file (- for stdin; omit for the REPL)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable lexer debug logging (WISP_DEBUG)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noLint, "no-lint", false, "disable 'did you mean' unbound-symbol warnings")
	rootCmd.PersistentFlags().BoolVarP(&watch, "watch", "w", false, "re-run the file whenever it changes on disk")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default ~/.wisprc.yaml)")

	if err := rootCmd.Execute(); err != nil {
		FormatError(os.Stderr, err, !noColor)
		os.Exit(1)
	}
}

func loadConfig(explicitPath string, debugFlag bool) config.Config {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	path := explicitPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return config.Default()
		}
		path = p
	}
	return config.Load(path, logger)
}

func openCache(cfg config.Config) *replcache.Cache {
	if cfg.DisableCache {
		return replcache.Open("")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return replcache.Open("")
	}
	return replcache.Open(home + "/.wisp_cache.cbor")
}

// hasPipedInput reports whether stdin is connected to a pipe rather
// than a terminal, so `wisp` with no arguments still does the right
// thing when data is piped into it.
func hasPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// getInputReader resolves file into a readable source plus a close
// function: "-" or the piped-stdin case both read from os.Stdin, and
// any other path opens the named file.
func getInputReader(file string) (io.Reader, func() error, error) {
	if file == "-" || (file == "" && hasPipedInput()) {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, &CLIError{Type: "io", Message: fmt.Sprintf("cannot open %s", file), Details: err.Error()}
	}
	return f, f.Close, nil
}

// runFile reads, lints, and evaluates one source file (or stdin) once,
// printing its final result the way the REPL would.
func runFile(file string, cache *replcache.Cache, useColor, noLint bool) error {
	reader, closeFunc, err := getInputReader(file)
	if err != nil {
		return err
	}
	defer func() { _ = closeFunc() }()

	source, err := io.ReadAll(reader)
	if err != nil {
		return &CLIError{Type: "io", Message: "error reading input", Details: err.Error()}
	}

	env := eval.NewRootEnv()
	result, err := evalTracked(string(source), env, cache, useColor, noLint)
	if err != nil {
		return err
	}
	if _, isVoid := result.(object.Void); !isVoid {
		fmt.Println(object.Print(result, true))
	}
	return nil
}

// evalTracked parses source through cache (storing a fresh parse on a
// miss), runs internal/lint's typo check over every top-level form
// before evaluating it, and evaluates the parsed forms against env.
func evalTracked(source string, env *object.Environment, cache *replcache.Cache, useColor, noLint bool) (object.Value, error) {
	tree, ok := cache.Lookup(source)
	if !ok {
		var err error
		tree, err = parseForCache(source)
		if err != nil {
			return nil, err
		}
		cache.Store(source, tree)
	}

	if !noLint {
		for _, expr := range tree.Exprs {
			for _, s := range lint.CheckForm(expr, env, eval.SpecialForms()) {
				fmt.Fprintln(os.Stderr, Colorize(s.String(), colorYellow, useColor))
			}
		}
	}

	var result object.Value = object.Void{}
	for _, expr := range tree.Exprs {
		v, err := eval.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// parseForCache lexes and parses source on a cache miss.
func parseForCache(source string) (*parser.Tree, error) {
	l := lexer.New()
	l.Init([]byte(source))
	tree, err := parser.Parse(l.Tokens(), source)
	if err != nil {
		return nil, eval.EvalError{Message: "ParseError: " + err.Error()}
	}
	return tree, nil
}
