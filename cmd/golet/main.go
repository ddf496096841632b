package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mattn/golet"
)

const (
	exitOK = iota
	exitEval
	exitParse
	exitFault
)

var (
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

type flags struct {
	ConfigFile  string
	NoPrelude   bool
	NoBuiltins  bool
	DumpAST     bool
	Trace       bool
	Color       string
	HistoryFile string
}

func (f *flags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path of the YAML config file.",
			EnvVars:     []string{configEnv},
			Destination: &f.ConfigFile,
		},
		&cli.BoolFlag{
			Name:        "no-prelude",
			Usage:       "Do not load the prelude functions.",
			Destination: &f.NoPrelude,
		},
		&cli.BoolFlag{
			Name:        "no-builtins",
			Usage:       "Do not provide the native functions.",
			Destination: &f.NoBuiltins,
		},
		&cli.BoolFlag{
			Name:        "dump-ast",
			Usage:       "Print the syntax tree to stderr before evaluating.",
			Destination: &f.DumpAST,
		},
		&cli.BoolFlag{
			Name:        "trace",
			Usage:       "Log let bindings and function calls to stderr.",
			EnvVars:     []string{"GOLET_TRACE"},
			Destination: &f.Trace,
		},
		&cli.StringFlag{
			Name:        "color",
			Usage:       "Colorize errors: auto, always or never.",
			Destination: &f.Color,
		},
		&cli.StringFlag{
			Name:        "history",
			Usage:       "REPL history file.",
			Destination: &f.HistoryFile,
		},
	}
}

// apply overrides cfg with the flags given on the command line.
func (f *flags) apply(c *cli.Context, cfg *Config) error {
	if c.IsSet("no-prelude") {
		cfg.Prelude = !f.NoPrelude
	}
	if c.IsSet("no-builtins") {
		cfg.Builtins = !f.NoBuiltins
	}
	if c.IsSet("dump-ast") {
		cfg.DumpAST = f.DumpAST
	}
	if c.IsSet("trace") {
		cfg.Trace = f.Trace
	}
	if c.IsSet("color") {
		cfg.Color = f.Color
	}
	if c.IsSet("history") {
		cfg.HistoryFile = f.HistoryFile
	}
	return cfg.Validate()
}

func main() {
	var f flags
	app := &cli.App{
		Name:      "golet",
		Usage:     "Evaluate a golet program.",
		ArgsUsage: "[FILE|-]",
		Flags:     f.AsCliFlags(),
		Action: func(c *cli.Context) error {
			return run(c, &f)
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, red("error:"), err)
		os.Exit(exitEval)
	}
}

func run(c *cli.Context, f *flags) error {
	cfg, err := LoadConfig(f.ConfigFile)
	if err != nil {
		return err
	}
	if err := f.apply(c, &cfg); err != nil {
		return err
	}
	switch cfg.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	log := newLogger(os.Stderr, cfg.Trace)
	env, err := newEnv(cfg, log)
	if err != nil {
		return err
	}

	var src string
	switch c.NArg() {
	case 0:
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return repl(env, cfg, log)
		}
		src, err = readSource("-")
	case 1:
		src, err = readSource(c.Args().First())
	default:
		cli.ShowAppHelp(c)
		return cli.Exit("", exitParse)
	}
	if err != nil {
		return err
	}

	if code := execute(os.Stdout, os.Stderr, env, src, cfg.DumpAST, false); code != exitOK {
		return cli.Exit("", code)
	}
	return nil
}

func newLogger(w io.Writer, trace bool) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.Level = logrus.WarnLevel
	if trace {
		log.Level = logrus.DebugLevel
	}
	return log
}

func newEnv(cfg Config, log logrus.FieldLogger) (*golet.Env, error) {
	opts := []golet.Option{golet.WithLogger(log)}
	if cfg.Builtins {
		opts = append(opts, golet.WithBuiltins())
	}
	env := golet.NewEnv(opts...)
	if cfg.Prelude {
		if err := golet.LoadLib(env); err != nil {
			return nil, errors.Wrap(err, "load prelude")
		}
	}
	return env, nil
}

// readSource reads the program from the named file, or from standard input
// when name is "-".
func readSource(name string) (string, error) {
	var b []byte
	var err error
	if name == "-" {
		b, err = ioutil.ReadAll(os.Stdin)
	} else {
		b, err = ioutil.ReadFile(name)
	}
	if err != nil {
		return "", errors.Wrapf(err, "read %s", name)
	}
	return string(b), nil
}

type faultError struct {
	*golet.ArithmeticError
}

// evaluate runs node in env. When load is set a declaration-only program is
// kept in env instead of being evaluated. An arithmetic fault comes back as
// a *faultError so that the caller can report it; any other panic goes on.
func evaluate(env *golet.Env, node golet.Node, load bool) (v golet.Value, loaded bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*golet.ArithmeticError)
			if !ok {
				panic(r)
			}
			err = &faultError{ae}
		}
	}()
	if load && golet.IsDecl(node) {
		return golet.Value{}, true, env.Load(node)
	}
	v, err = env.Eval(node)
	return v, false, err
}

// execute parses and evaluates src, printing the result to w and problems
// to ew. It returns the process exit code.
func execute(w, ew io.Writer, env *golet.Env, src string, dumpAST, load bool) int {
	node, err := golet.Parse(src)
	if err != nil {
		for _, perr := range golet.ParseErrors(err) {
			fmt.Fprintln(ew, red("Parse error:"), perr)
		}
		return exitParse
	}
	if dumpAST {
		spew.Fdump(ew, node)
	}

	v, loaded, err := evaluate(env, node, load)
	if err != nil {
		if fe, ok := err.(*faultError); ok {
			fmt.Fprintln(ew, red("fatal:"), fe.Error())
			return exitFault
		}
		fmt.Fprintln(ew, red("error:"), err)
		return exitEval
	}
	if loaded {
		fmt.Fprintln(w, yellow("ok"))
		return exitOK
	}
	fmt.Fprintln(w, v)
	return exitOK
}
