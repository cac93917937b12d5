package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

func main() {
	log.SetFlags(0)

	configPath := pflag.String("config", defaultConfigPath(), "config file")
	human := pflag.Bool("human", false, "print numeric answers with thousands separators")
	workers := pflag.Int("workers", runtime.NumCPU(), "goroutines used to analyze multi-line inputs")
	addr := pflag.String("addr", "localhost:8016", "listen address for serve")
	format := pflag.String("format", "pretty", "dump format: pretty, yaml, or text")
	profile := pflag.String("fgprof", "", "write an fgprof profile of the run to this file")
	pflag.Usage = usage
	pflag.Parse()
	if pflag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if pflag.CommandLine.Changed("human") {
		cfg.human = *human
	}
	if pflag.CommandLine.Changed("workers") || cfg.workers == 0 {
		cfg.workers = *workers
	}
	if pflag.CommandLine.Changed("addr") || cfg.addr == "" {
		cfg.addr = *addr
	}
	if pflag.CommandLine.Changed("format") || cfg.format == "" {
		cfg.format = *format
	}

	var stopProfile func() error
	if *profile != "" {
		stopProfile, err = startProfile(*profile)
		if err != nil {
			log.Fatal(err)
		}
	}
	e := &env{cfg: cfg, stdin: os.Stdin, stdout: os.Stdout}
	err = run(e, pflag.Args())
	if stopProfile != nil {
		if err := stopProfile(); err != nil {
			log.Println("Error writing profile:", err)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [input-file]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "   or: %s [flags] check|repl|serve|dump|import [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	pflag.PrintDefaults()
}

// An env is what solutions and commands run against.
type env struct {
	cfg    config
	stdin  io.Reader
	stdout io.Writer
}

// A solution computes the answer to one part of a day's puzzle.
type solution func(e *env, input []byte) (string, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

var commands = map[string]func(*env, []string) error{
	"check":  runCheck,
	"repl":   runREPL,
	"serve":  runServe,
	"dump":   runDump,
	"import": runImport,
}

func run(e *env, args []string) error {
	if cmd, ok := commands[args[0]]; ok {
		return cmd(e, args[1:])
	}
	fn, ok := solutions[args[0]]
	if !ok {
		return fmt.Errorf("unknown solution %q", args[0])
	}
	if len(args) > 2 {
		return errors.New("too many arguments")
	}
	input, err := e.readInput(args[0], args[1:])
	if err != nil {
		return err
	}
	answer, err := fn(e, input)
	if err != nil {
		return fmt.Errorf("%s: %s", args[0], err)
	}
	fmt.Fprintln(e.stdout, answer)
	return nil
}

func (e *env) formatInt(n int64) string {
	if e.cfg.human {
		return humanize.Comma(n)
	}
	return strconv.FormatInt(n, 10)
}

func (e *env) formatBig(n *big.Int) string {
	if e.cfg.human {
		return humanize.BigComma(n)
	}
	return n.String()
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "advent.ini")
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

// splitName splits a solution name like "16b" into its day and part.
func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
