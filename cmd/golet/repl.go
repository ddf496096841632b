package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/mattn/golet"
)

const (
	prompt   = "> "
	replHelp = `Each line is a program. Lines that only declare (let x = 1; or
func f(a) { a }) are kept for the following lines.

  :ast   parse the rest of the line and print its syntax tree
  :env   list the visible variables and functions
  :help  show this message
  :quit  exit`
)

func repl(env *golet.Env, cfg Config, log logrus.FieldLogger) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	history := expandHome(cfg.HistoryFile)
	if history != "" {
		if f, err := os.Open(history); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.WithError(err).Warn("cannot read history")
			}
			f.Close()
		}
		defer func() {
			f, err := os.Create(history)
			if err != nil {
				log.WithError(err).Warn("cannot write history")
				return
			}
			defer f.Close()
			if _, err := ln.WriteHistory(f); err != nil {
				log.WithError(err).Warn("cannot write history")
			}
		}()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if !replLine(os.Stdout, os.Stderr, env, line, cfg.DumpAST) {
			return nil
		}
	}
}

// replLine handles one line of input. It returns false when the session
// should end.
func replLine(w, ew io.Writer, env *golet.Env, line string, dumpAST bool) bool {
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Fprintln(w, replHelp)
		return true
	case ":env":
		fmt.Fprintf(w, "vars:  %s\n", strings.Join(env.Vars(), " "))
		fmt.Fprintf(w, "funcs: %s\n", strings.Join(env.Funcs(), " "))
		return true
	}
	if rest := strings.TrimSpace(line); strings.HasPrefix(rest, ":ast ") {
		node, err := golet.Parse(strings.TrimPrefix(rest, ":ast "))
		if err != nil {
			for _, perr := range golet.ParseErrors(err) {
				fmt.Fprintln(ew, red("Parse error:"), perr)
			}
			return true
		}
		fmt.Fprintln(w, node)
		return true
	}
	execute(w, ew, env, line, dumpAST, true)
	return true
}
