// Command minilang is the CLI shell spec.md §1 names as an external
// collaborator and SPEC_FULL.md §4.7 builds out: it opens a source file,
// drives lex -> parse -> evaluate, and reports diagnostics with position
// on stderr. Two supplemental flags, -ast and -repl, are not part of the
// core interpreter but exercise the same pipeline interactively.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kr/pretty"
	"github.com/peterh/liner"

	"minilang/diag"
	"minilang/interp"
	"minilang/parser"
)

const historyFile = ".minilang_history"

func main() {
	astFlag := flag.Bool("ast", false, "pretty-print the parsed statement tree before running")
	replFlag := flag.Bool("repl", false, "start an interactive read-eval-print loop instead of running a file")
	flag.Parse()

	if *replFlag {
		os.Exit(runRepl())
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: minilang [-ast] <source-file>")
		fmt.Fprintln(os.Stderr, "       minilang -repl")
		os.Exit(5)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "minilang: cannot read %s: %v\n", flag.Arg(0), err)
		os.Exit(5)
	}

	os.Exit(run(string(src), *astFlag, os.Stdin, os.Stdout))
}

// run executes one program from src against stdin/stdout and returns the
// exit code SPEC_FULL.md §6 pins: 0 success, 1-4 by diag.Category, 5 for
// a CLI-level usage failure (none possible once src is already in hand).
func run(src string, showAST bool, stdin io.Reader, stdout io.Writer) int {
	p, err := parser.New(src)
	if err != nil {
		return report(err)
	}
	prog, err := p.Parse()
	if err != nil {
		return report(err)
	}

	if showAST {
		if _, err := fmt.Fprintf(stdout, "%# v\n", pretty.Formatter(prog.Items)); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	ip := interp.New(prog.Funcs, stdin, stdout)
	if err := ip.Run(prog.Items); err != nil {
		return report(err)
	}
	return 0
}

func report(err error) int {
	fmt.Fprintln(os.Stderr, err.Error())
	de, ok := err.(*diag.Error)
	if !ok {
		return 4
	}
	switch de.Category.String() {
	case "syntax error":
		return 1
	case "symbol error":
		return 2
	case "type error":
		return 3
	default:
		return 4
	}
}

// runRepl accumulates statements into one running program, so
// declarations and functions persist across lines. The value of a bare
// expression statement is not printed; output comes only from println.
func runRepl() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	fmt.Println("minilang REPL. Ctrl+D to exit.")

	p, err := parser.New("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	ip := interp.New(p.Funcs(), os.Stdin, os.Stdout)

	for {
		line, err := ln.Prompt("minilang> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			return 0
		}
		ln.AppendHistory(line)

		if err := p.Feed(line + "\n"); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		items, err := p.ParseItems()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		if err := ip.Run(items); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}
}
