package automata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	m, err := Compile("ab")
	assert.NoError(t, err)

	want := strings.Join([]string{
		"digraph {",
		"\trankdir=LR;",
		"\tnode [shape=point]; start;",
		"\tnode [shape=doublecircle]; q3;",
		"\tnode [shape=circle];",
		"\tstart -> q1;",
		"\tq1 -> q2 [label=\"a\"];",
		"\tq2 -> q3 [label=\"b\"];",
		"}",
	}, "\n") + "\n"
	assert.Equal(t, want, m.Dot())
}

// A transition carrying several symbols renders as one edge per symbol.
func TestDotMultiSymbolEdge(t *testing.T) {
	m, err := Compile("(a|b)*")
	assert.NoError(t, err)

	dot := m.Dot()
	assert.Contains(t, dot, "\tq2 -> q1 [label=\"a\"];")
	assert.Contains(t, dot, "\tq2 -> q1 [label=\"b\"];")
	assert.Contains(t, dot, "\tq3 -> q1 [label=\"a\"];")
	assert.Contains(t, dot, "\tq3 -> q1 [label=\"b\"];")
}

func TestWriteDot(t *testing.T) {
	m, err := Compile("a")
	assert.NoError(t, err)

	var sb strings.Builder
	assert.NoError(t, m.WriteDot(&sb))
	assert.Equal(t, m.Dot(), sb.String())
}

func TestPDADot(t *testing.T) {
	want := strings.Join([]string{
		"digraph {",
		"\trankdir=LR;",
		"\tnode [shape=point]; start;",
		"\tnode [shape=doublecircle]; q4;",
		"\tnode [shape=circle];",
		"\tstart -> q1;",
		"\tq1 -> q2 [label=\"e, e -> $\"];",
		"\tq2 -> q2 [label=\"x, e -> x\"];",
		"\tq2 -> q2 [label=\"y, e -> y\"];",
		"\tq2 -> q3 [label=\"e, e -> e\"];",
		"\tq3 -> q3 [label=\"x, x -> e\"];",
		"\tq3 -> q3 [label=\"y, y -> e\"];",
		"\tq3 -> q4 [label=\"e, $ -> e\"];",
		"}",
	}, "\n") + "\n"
	assert.Equal(t, want, pdaDefinition().PDADot())
}

// The push state is a definition field, defaulting to state 2.
func TestPDADotPushState(t *testing.T) {
	d := pdaDefinition()
	d.PushState = 3

	dot := d.PDADot()
	assert.Contains(t, dot, "\tq2 -> q2 [label=\"x, x -> e\"];")
	assert.Contains(t, dot, "\tq3 -> q3 [label=\"x, e -> x\"];")
}

func TestEdgeDot(t *testing.T) {
	d := &Definition{
		Alphabet:    []string{"a"},
		Start:       1,
		Accept:      []int{2},
		Transitions: [][]int{{1, 2}, {2, 2}},
	}
	want := strings.Join([]string{
		"digraph {",
		"\trankdir=LR;",
		"\tnode [shape=point]; start;",
		"\tnode [shape=doublecircle]; q2;",
		"\tnode [shape=circle];",
		"\tstart -> q1;",
		"\tq1 -> q2;",
		"\tq2 -> q2;",
		"}",
	}, "\n") + "\n"
	assert.Equal(t, want, d.EdgeDot())
}
