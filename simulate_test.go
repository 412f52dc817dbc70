package automata

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunConcat(t *testing.T) {
	m, err := Compile("ab")
	assert.NoError(t, err)

	tests := []struct {
		input    string
		accepted bool
		steps    int
	}{
		{input: "ab", accepted: true, steps: 2},
		{input: "a", accepted: false, steps: 1},
		// 'b' is stuck at the start state, then 'a' fires: the trace stays
		// shorter than the input, so the length check rejects.
		{input: "ba", accepted: false, steps: 1},
		{input: "", accepted: false, steps: 0},
	}

	for _, tc := range tests {
		testName := fmt.Sprintf("%q:%t", tc.input, tc.accepted)
		t.Run(testName, func(t *testing.T) {
			res, err := m.Run(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.accepted, res.Accepted)
			assert.Len(t, res.Trace, tc.steps)
		})
	}
}

func TestRunTrace(t *testing.T) {
	m, err := Compile("ab")
	assert.NoError(t, err)

	res, err := m.Run("ab")
	assert.NoError(t, err)
	assert.Equal(t, []Step{
		{From: 1, Symbol: 'a', To: 2},
		{From: 2, Symbol: 'b', To: 3},
	}, res.Trace)
	assert.Equal(t, "d(q1, a) -> q2", res.Trace[0].String())
}

func TestRunInputOutsideAlphabet(t *testing.T) {
	m, err := Compile("ab")
	assert.NoError(t, err)

	_, err = m.Run("ac")
	assert.True(t, errors.Is(err, ErrInput), "expected ErrInput, got %v", err)
}

func TestRunStarReturn(t *testing.T) {
	m, err := Compile("(a)*")
	assert.NoError(t, err)

	tests := []struct {
		input    string
		accepted bool
		steps    int
	}{
		// Zero transitions fired, state 1 accepts, 0 == input length.
		{input: "", accepted: true, steps: 0},
		{input: "a", accepted: true, steps: 1},
		// The return edge to the start state is a free hop that fires
		// mid-scan, after the entry edge has already been passed, so the
		// second 'a' consumes nothing.
		{input: "aa", accepted: false, steps: 1},
	}

	for _, tc := range tests {
		testName := fmt.Sprintf("%q:%t", tc.input, tc.accepted)
		t.Run(testName, func(t *testing.T) {
			res, err := m.RunWithConfig(tc.input, RunConfig{ReturnToStart: true})
			assert.NoError(t, err)
			assert.Equal(t, tc.accepted, res.Accepted)
			assert.Len(t, res.Trace, tc.steps)
		})
	}
}

func TestRunDefinitionTable(t *testing.T) {
	d := &Definition{
		Alphabet:    []string{"a", "b"},
		Start:       1,
		Accept:      []int{2},
		Transitions: [][]int{{2, 1}, {2, 2}},
	}
	assert.NoError(t, d.Validate())
	m := d.Automaton()

	tests := []struct {
		input    string
		accepted bool
	}{
		{input: "a", accepted: true},
		{input: "ab", accepted: true},
		{input: "b", accepted: false},
		{input: "", accepted: false},
		{input: "aba", accepted: true},
	}

	for _, tc := range tests {
		testName := fmt.Sprintf("%q:%t", tc.input, tc.accepted)
		t.Run(testName, func(t *testing.T) {
			res, err := m.Run(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.accepted, res.Accepted)
			// The table is a total function, so the simulation never
			// sticks and every character leaves a trace entry.
			assert.Len(t, res.Trace, len(tc.input))
		})
	}
}
