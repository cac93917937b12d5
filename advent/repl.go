package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/chzyer/readline"
)

// runREPL reads one input per line and prints the solution's answer for it.
func runREPL(e *env, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: advent repl solution")
	}
	name := args[0]
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      name + "> ",
		HistoryFile: e.cfg.history,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			log.Println("Readline error:", err)
			continue
		}
		if line == "" {
			continue
		}
		answer, err := fn(e, []byte(line))
		if err != nil {
			fmt.Fprintln(l.Stderr(), "error:", err)
			continue
		}
		fmt.Fprintln(l.Stdout(), answer)
	}
}
