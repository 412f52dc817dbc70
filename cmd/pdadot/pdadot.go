// The pdadot command loads a stylized pushdown automaton definition from a
// YAML file, validates it, and writes its Graphviz digraph to stdout with
// synthesized `read, pop -> push` edge labels. No stack machine is run; the
// labels describe the stack discipline for visualization only.
//
// The YAML document holds an alphabet, a start state, accept states, a list
// of (from, to) transition pairs, and optionally the state whose self-loop
// pushes input symbols (pushstate, default 2).
package main

import (
	"fmt"
	"os"

	"github.com/joeyoneill/automata"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s pdafile\n", os.Args[0])
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

	fmt.Fprintf(os.Stderr, "%+v\n", def)

	if err := def.WritePDADot(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}
