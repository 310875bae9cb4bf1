/*
Package repl implements the Read-Eval-Print Loop for the toy language's
front end. Since there is no evaluator in this module, "eval" here
means lex-and-parse-and-print: each line is tokenized and pretty
printed, and any parser errors are shown in place of a result.

The REPL uses the readline library for line editing and history and
fatih/color for the same banner-and-feedback treatment the interpreter
this front end was split out of uses.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/kodeflow/monkey/lexer"
	"github.com/kodeflow/monkey/parser"
	"github.com/kodeflow/monkey/token"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the
// prompt readline should show.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a line of source and press enter to see its tokens and AST.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until EOF, an error from readline, or the
// user typing .exit.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		r.execute(writer, line)
	}
}

// execute lexes and parses one line, printing its token stream and
// then either the accumulated parser errors or, when there are none,
// its pretty-printed AST.
func (r *Repl) execute(writer io.Writer, line string) {
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		blueColor.Fprintf(writer, "%+v\n", tok)
	}

	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	yellowColor.Fprintf(writer, "%s\n", program.String())
}
