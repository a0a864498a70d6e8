package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	bauble "github.com/AbooMinister25/bauble"
)

const (
	appName     = "bauble"
	historyFile = ".bauble_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("Bauble %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", bauble.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "repl":
		os.Exit(cmdRepl())
	case "lex":
		os.Exit(cmdLex(os.Args[2:]))
	case "parse":
		os.Exit(cmdParse(os.Args[2:]))
	case "version":
		fmt.Println(bauble.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Bauble %s (built %s)

Usage:
  %s repl                 Start the REPL.
  %s lex <file.bl>        Print the token stream of a file.
  %s parse <file.bl>      Parse a file and print its expressions.
  %s version              Print the compiled version

`, bauble.Version, bauble.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// lex
// -----------------------------------------------------------------------------

func cmdLex(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s lex <file.bl>\n", appName)
		return 2
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	ret := 0
	for _, tok := range bauble.NewLexer(string(src)).Tokenize() {
		if tok.Kind == bauble.ERROR {
			fmt.Fprintln(os.Stderr, red(fmt.Sprintf("%d:%d error: %s",
				tok.Position.Line, tok.Position.Column, tok.Value)))
			ret = 1
			continue
		}
		fmt.Printf("%d:%d %v %q\n", tok.Position.Line, tok.Position.Column, tok.Kind, tok.Value)
	}
	return ret
}

// -----------------------------------------------------------------------------
// parse
// -----------------------------------------------------------------------------

func cmdParse(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s parse <file.bl>\n", appName)
		return 2
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	p := bauble.NewParser(string(src), filepath.Base(args[0]))
	for !p.AtEnd() {
		expr, err := p.ParseExpression()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		fmt.Println(expr)
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

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

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			continue
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(code, ":") {
			if done := replCommand(code); done {
				return 0
			}
			continue
		}

		expr, perr := bauble.ParseExpr(code, "<repl>")
		if perr != nil {
			fmt.Fprintln(os.Stderr, red(perr.Error()))
			continue
		}
		fmt.Println(blue(expr.String()))
	}
}

// replCommand handles ':' commands; it reports whether the REPL should exit.
func replCommand(code string) bool {
	switch {
	case code == ":quit":
		return true
	case strings.HasPrefix(code, ":ast "):
		expr, err := bauble.ParseExpr(strings.TrimPrefix(code, ":ast "), "<repl>")
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return false
		}
		fmt.Println(blue(bauble.Repr(expr)))
	case code == ":help":
		fmt.Print(`REPL commands:
  :ast <expr>   Print the debug form of an expression
  :help         Show this help
  :quit         Exit the REPL
`)
	default:
		fmt.Println("unknown command. Type :help for help, :quit to exit.")
	}
	return false
}
