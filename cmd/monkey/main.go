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

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"

	monkey "github.com/torcor-dev/intpbk"
)

const appName = "monkey"

var (
	errText    = color.New(color.FgRed)
	bannerText = color.New(color.FgGreen)
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "lex":
		os.Exit(cmdLex(os.Args[2:]))
	case "parse":
		os.Exit(cmdParse(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Printf("%s %s (built %s)\n", appName, monkey.Version, monkey.BuildDate)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Monkey %s

Usage:
  %s lex <file.mky>       Tokenize a file and print the token table.
  %s parse <file.mky>     Parse a file and print the program rendering.
  %s repl                 Start the REPL.
  %s version              Print the compiled version.

`, monkey.Version, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// lex
// -----------------------------------------------------------------------------

func cmdLex(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s lex <file.mky>\n", appName)
		return 2
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"TYPE", "LITERAL", "POS"})

	l := monkey.NewLexer(string(src))
	for {
		tok := l.NextToken()
		table.Append([]string{typeName(tok.Type), tok.Literal, fmt.Sprintf("%d:%d", tok.Line, tok.Col+1)})
		if tok.Type == monkey.EOF {
			break
		}
	}
	table.Render()
	return 0
}

// -----------------------------------------------------------------------------
// parse
// -----------------------------------------------------------------------------

func cmdParse(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s parse <file.mky>\n", appName)
		return 2
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}

	p := monkey.NewParser(monkey.NewLexer(string(src)))
	program := p.ParseProgram()

	if diags := p.Diagnostics(); len(diags) > 0 {
		for _, d := range diags {
			errText.Fprintln(os.Stderr, monkey.PrettyDiagnostic(string(src), d))
		}
		return 1
	}

	fmt.Println(program.String())
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	cfg := loadConfig()
	if !cfg.Color {
		color.NoColor = true
	}

	bannerText.Printf("Monkey %s REPL\n", monkey.Version)
	fmt.Println("Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit, :tokens / :parse to switch mode.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, cfg.HistoryFile)

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

	mode := "parse"
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			errText.Fprintln(os.Stderr, err)
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			case ":tokens":
				mode = "tokens"
			case ":parse":
				mode = "parse"
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		ln.AppendHistory(line)
		if mode == "tokens" {
			printTokens(line)
		} else {
			parseAndPrint(line)
		}
	}
}

func printTokens(src string) {
	l := monkey.NewLexer(src)
	var parts []string
	for {
		tok := l.NextToken()
		if tok.Type == monkey.EOF {
			break
		}
		parts = append(parts, tokenLabel(tok))
	}
	fmt.Println(strings.Join(parts, " "))
}

func parseAndPrint(src string) {
	p := monkey.NewParser(monkey.NewLexer(src))
	program := p.ParseProgram()
	for _, d := range p.Diagnostics() {
		errText.Fprintln(os.Stderr, monkey.PrettyDiagnostic(src, d))
	}
	if out := program.String(); out != "" {
		fmt.Println(out)
	}
}

// tokenLabel renders one token for the REPL token stream, keeping the
// literal visible for tokens that carry one.
func tokenLabel(t monkey.Token) string {
	switch t.Type {
	case monkey.IDENT, monkey.INT, monkey.ILLEGAL:
		return fmt.Sprintf("%s(%s)", typeName(t.Type), t.Literal)
	}
	return t.String()
}

func typeName(tt monkey.TokenType) string {
	switch tt {
	case monkey.IDENT:
		return "IDENT"
	case monkey.INT:
		return "INT"
	case monkey.ILLEGAL:
		return "ILLEGAL"
	case monkey.EOF:
		return "EOF"
	}
	return tt.String()
}
