/*
Package main is the entry point for the front end: a lexer and Pratt
parser with no evaluator attached. It provides two modes of
operation:
 1. REPL mode (default): an interactive loop that tokenizes and parses
    each line typed.
 2. File mode: parse a source file given on the command line and print
    either its AST or its accumulated parse errors.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/kodeflow/monkey/lexer"
	"github.com/kodeflow/monkey/parser"
	"github.com/kodeflow/monkey/repl"
)

var (
	version = "v0.1.0"
	author  = "kodeflow"
	prompt  = "monkey >> "
	line    = "----------------------------------------------------------------"
	banner  = `
 888b     d888                    888
 8888b   d8888                    888
 88888b.d88888                    888
 888Y88888P888  .d88b.  88888b.   888  888  .d88b.  888  888
 888 Y888P 888 d88""88b 888 "88b  888 .88P  d8P  Y8b888  888
 888  Y8P  888 888  888 888  888  888888K   88888888Y88  88P
 888   "   888 Y88..88P 888  888  888 "88b  Y8b.     Y8bd8P
 888       888  "Y88P"  888  888  888  888   "Y8888   Y88P
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		default:
			runFile(os.Args[1])
		}
		return
	}

	repler := repl.NewRepl(banner, version, author, line, prompt)
	repler.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("monkey - lexer and Pratt parser for a small expression language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  monkey                    start the interactive REPL")
	fmt.Println("  monkey <path-to-file>     parse a source file and print its AST")
	fmt.Println("  monkey --help             display this help message")
	fmt.Println("  monkey --version          display version information")
}

func showVersion() {
	cyanColor.Printf("monkey %s\n", version)
}

// runFile reads, lexes, and parses a source file, printing either the
// parser's accumulated errors or the resulting program's pretty-printed
// form.
func runFile(fileName string) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	p := parser.New(lexer.New(string(src)))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(os.Stderr, "parse error: %s\n", msg)
		}
		os.Exit(1)
	}

	fmt.Println(program.String())
}
