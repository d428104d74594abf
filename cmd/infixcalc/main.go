// Command infixcalc evaluates infix arithmetic expressions.
//
// Expressions given as arguments are evaluated one by one. With no
// arguments, the command reads expressions line by line from stdin (or the
// -in file) and prints the postfix form and the result of each.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	rpn "github.com/ha-shine/infix-calculator"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		verb   string
		quiet  bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&quiet, "q", false, "do not print the postfix form of each expression")
	flag.Parse()

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			eval(arg, verb, quiet)
		}
		return
	}

	in, prompt, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	scan := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Print("> ")
		}
		if !scan.Scan() {
			break
		}
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		eval(line, verb, quiet)
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

// eval converts and evaluates one expression, reporting any error without
// ending the process.
func eval(src, verb string, quiet bool) {
	q, err := rpn.FromInfix(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	if !quiet {
		fmt.Println("RPN:", q)
	}
	r, err := q.Eval()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf(verb+"\n", r)
}

// infile opens the input reader. The prompt result reports whether the
// input is interactive stdin.
func infile(inname string) (io.Reader, bool, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, true, nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, false, err
	}
	return f, false, nil
}
