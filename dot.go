package automata

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// dotHeader emits the lines shared by every digraph: the header, the
// point-shaped start marker, one doublecircle declaration per accept state,
// and the default circle shape, followed by the edge into the start state.
func dotHeader(accept []int, start int) []string {
	lines := []string{
		"digraph {",
		"\trankdir=LR;",
		"\tnode [shape=point]; start;",
	}
	for _, a := range accept {
		lines = append(lines, fmt.Sprintf("\tnode [shape=doublecircle]; q%d;", a))
	}
	lines = append(lines,
		"\tnode [shape=circle];",
		fmt.Sprintf("\tstart -> q%d;", start),
	)
	return lines
}

// Dot renders the automaton as a Graphviz digraph. Each transition becomes
// one edge per associated symbol, labeled with that symbol. The model is
// trusted; no validation happens here.
func (m *Automaton) Dot() string {
	lines := dotHeader(m.Accept, m.Start)
	for _, t := range m.Transitions {
		for _, s := range t.Symbols {
			lines = append(lines, fmt.Sprintf("\tq%d -> q%d [label=\"%c\"];", t.From, t.To, s))
		}
	}
	return strings.Join(append(lines, "}"), "\n") + "\n"
}

// WriteDot writes the digraph to w.
func (m *Automaton) WriteDot(w io.Writer) error {
	_, err := io.WriteString(w, m.Dot())
	return err
}

// WriteSVG renders the automaton to SVG by piping the digraph through
// Graphviz's `dot` command, which must be on PATH.
func (m *Automaton) WriteSVG(output io.Writer) error {
	dotProc := exec.Command("dot", "-Tsvg")
	dotProc.Stdin = strings.NewReader(m.Dot())
	dotProc.Stdout = output
	return dotProc.Run()
}

// PDADot renders an edge-layout definition as a pushdown automaton digraph.
// No stack machine is executed; the stack operations are synthesized
// positionally onto the edge labels as `read, pop -> push` triples:
//
//   - the edge leaving the start state pushes the bottom marker '$';
//   - an edge entering an accept state pops the marker;
//   - a self-loop on the push state reads and pushes each alphabet symbol;
//   - any other self-loop reads and pops each alphabet symbol;
//   - every remaining edge changes state without reading or stack effect.
//
// The push state defaults to state 2 when the definition does not set one.
func (d *Definition) PDADot() string {
	pushState := d.PushState
	if pushState == 0 {
		pushState = 2
	}
	accept := func(q int) bool {
		for _, a := range d.Accept {
			if a == q {
				return true
			}
		}
		return false
	}

	lines := dotHeader(d.Accept, d.Start)
	edge := func(from, to int, read, pop, push string) string {
		return fmt.Sprintf("\tq%d -> q%d [label=\"%s, %s -> %s\"];", from, to, read, pop, push)
	}
	for _, row := range d.Transitions {
		from, to := row[0], row[1]
		switch {
		case from == d.Start:
			lines = append(lines, edge(from, to, "e", "e", "$"))
		case accept(to):
			lines = append(lines, edge(from, to, "e", "$", "e"))
		case from != to:
			lines = append(lines, edge(from, to, "e", "e", "e"))
		case from == pushState:
			for _, s := range d.symbols() {
				lines = append(lines, edge(from, to, string(s), "e", string(s)))
			}
		default:
			for _, s := range d.symbols() {
				lines = append(lines, edge(from, to, string(s), string(s), "e"))
			}
		}
	}
	return strings.Join(append(lines, "}"), "\n") + "\n"
}

// WritePDADot writes the pushdown automaton digraph to w.
func (d *Definition) WritePDADot(w io.Writer) error {
	_, err := io.WriteString(w, d.PDADot())
	return err
}

// EdgeDot renders an edge-layout definition as an unlabeled digraph, one
// edge per row.
func (d *Definition) EdgeDot() string {
	lines := dotHeader(d.Accept, d.Start)
	for _, row := range d.Transitions {
		lines = append(lines, fmt.Sprintf("\tq%d -> q%d;", row[0], row[1]))
	}
	return strings.Join(append(lines, "}"), "\n") + "\n"
}

// WriteEdgeDot writes the unlabeled digraph to w.
func (d *Definition) WriteEdgeDot(w io.Writer) error {
	_, err := io.WriteString(w, d.EdgeDot())
	return err
}
