// The fagraph command loads an edge-layout automaton definition from a YAML
// file, validates every edge endpoint against the listed state set, prints
// the automaton in arrow notation (accept states parenthesized), and writes
// the unlabeled Graphviz digraph to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/joeyoneill/automata"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s fafile\n", os.Args[0])
		os.Exit(1)
	}

	def, err := automata.LoadDefinitionFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't load definition: %v\n", err)
		os.Exit(1)
	}
	if err := def.ValidateEdges(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failure: %v\n", err)
		os.Exit(1)
	}
	if err := def.ValidateMembership(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failure: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("g by nodes:")
	for _, node := range def.NodeList() {
		fmt.Println(node)
	}

	fmt.Println()
	if err := def.WriteEdgeDot(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}
