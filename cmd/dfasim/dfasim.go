// The dfasim command loads a DFA definition from a YAML file, validates it,
// writes its Graphviz digraph to stdout, then reads a test string and
// reports the transition steps and whether the DFA accepts it.
//
// The YAML document holds an alphabet, a start state, accept states, and a
// transition table whose rows are states and whose columns follow the
// alphabet, all 1-relative.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/joeyoneill/automata"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s dfafile\n", os.Args[0])
		os.Exit(1)
	}

	def, err := automata.LoadDefinitionFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't load definition: %v\n", err)
		os.Exit(1)
	}
	if err := def.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failure: %v\n", err)
		os.Exit(1)
	}

	m := def.Automaton()
	fmt.Fprintf(os.Stderr, "%+v\n", m)

	if err := m.WriteDot(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Please enter a string:")
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		fmt.Fprintln(os.Stderr, "Couldn't read line")
		os.Exit(1)
	}
	input := sc.Text()
	fmt.Println()

	res, err := m.Run(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Transition steps:")
	for _, step := range res.Trace {
		fmt.Println(step)
	}
	fmt.Println()
	if res.Accepted {
		fmt.Println("The string is accepted by the graph.")
	} else {
		fmt.Println("The string is not accepted by the graph.")
	}
}
