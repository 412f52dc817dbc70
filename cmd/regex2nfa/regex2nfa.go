// The regex2nfa command compiles a restricted regular expression into an
// NFA, writes the Graphviz digraph for it to stdout, then reads a test
// string and reports whether the automaton accepts it.
//
// The expression is read from the file named by the first argument, or from
// an interactive prompt when no argument is given.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joeyoneill/automata"
)

func main() {
	var expr string
	switch len(os.Args) {
	case 1:
		fmt.Println("Please enter a regular expression:")
		expr = readLine()
	case 2:
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't read expression file: %v\n", err)
			os.Exit(1)
		}
		expr = strings.TrimRight(string(data), " \t\r\n")
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [exprfile]\n", os.Args[0])
		os.Exit(1)
	}

	m, err := automata.Compile(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := m.WriteDot(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Please enter a string:")
	input := readLine()
	fmt.Println()

	res, err := m.RunWithConfig(input, automata.RunConfig{ReturnToStart: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if res.Accepted {
		fmt.Println("Transition steps:")
		for _, step := range res.Trace {
			fmt.Println(step)
		}
		fmt.Println()
		fmt.Println("The string is accepted by the graph.")
	} else {
		fmt.Println("The string is not accepted by the graph.")
	}
}

func readLine() string {
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		fmt.Fprintln(os.Stderr, "Couldn't read line")
		os.Exit(1)
	}
	return sc.Text()
}
