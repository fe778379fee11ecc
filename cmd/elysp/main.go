package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	elysp "github.com/Alligator/elysp"
)

const (
	appName     = "elysp"
	historyFile = ".elysp_history"
	prompt      = "elysp> "
)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) > 1 {
		os.Exit(runFile(os.Args[1]))
	}
	os.Exit(repl())
}

// runFile reads the whole file and read-evals top-level forms until
// end-of-input, printing nothing but evaluation side effects. The first
// error prints its description and stops the file.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}

	ip := elysp.NewInterp()
	env := ip.NewRootEnv()

	r := elysp.NewReader(string(src), ip.Interner())
	for {
		form, rerr := r.Read()
		if rerr == io.EOF {
			return 0
		}
		if rerr != nil {
			fmt.Fprintln(os.Stderr, red(rerr.Error()))
			return 1
		}
		if ip.ReaderDebug(env) {
			fmt.Println(elysp.FormatColor(form))
		}
		if _, eerr := ip.Eval(env, form); eerr != nil {
			fmt.Fprintln(os.Stderr, red(eerr.Error()))
			return 1
		}
	}
}

// repl prompts for one form per line and prints the colorized result. A
// blank or unreadable line ends the loop; evaluation errors print and the
// loop continues.
func repl() int {
	ip := elysp.NewInterp()
	env := ip.NewRootEnv()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
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

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			// EOF or Ctrl-C.
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(line) == "" {
			return 0
		}

		form, rerr := elysp.NewReader(line, ip.Interner()).Read()
		if rerr == io.EOF {
			return 0
		}
		if rerr != nil {
			fmt.Fprintln(os.Stderr, red(rerr.Error()))
			return 0
		}
		ln.AppendHistory(line)

		if ip.ReaderDebug(env) {
			fmt.Println(elysp.FormatColor(form))
		}
		v, eerr := ip.Eval(env, form)
		if eerr != nil {
			fmt.Fprintln(os.Stderr, red(eerr.Error()))
			continue
		}
		fmt.Println(elysp.FormatColor(v))
	}
}
