// Package automata compiles a restricted regular-expression language into a
// nondeterministic finite automaton and simulates finite automata over an
// input alphabet, producing an acceptance verdict, a transition trace, and a
// Graphviz description of the automaton's structure.
//
// The expression language supports concatenation, alternation with `|`,
// Kleene star with `*`, and grouping with parentheses. Letters, digits, and
// space are the only symbol characters.
package automata

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by the package wraps one of these, so
// callers can switch on errors.Is.
var (
	// ErrExpression reports a malformed regular expression, detected before
	// any state is built.
	ErrExpression = errors.New("invalid expression")

	// ErrDefinition reports an inconsistent automaton definition, detected
	// before simulation or export.
	ErrDefinition = errors.New("invalid automaton definition")

	// ErrInput reports an input string containing a character outside the
	// automaton's alphabet, detected before simulation begins.
	ErrInput = errors.New("input not in alphabet")
)

// Transition is a directed edge between two states. A transition carries one
// or more symbols: the edge closing a starred group is labeled with the entry
// symbol of every alternative, so Symbols must always be treated as a set.
type Transition struct {
	From    int
	To      int
	Symbols []rune
}

// hasSymbol reports whether the transition consumes r.
func (t *Transition) hasSymbol(r rune) bool {
	for _, s := range t.Symbols {
		if s == r {
			return true
		}
	}
	return false
}

// Automaton is a finite automaton: an alphabet, a start state, a set of
// accept states, and an ordered transition list. States are 1-relative
// integers; state 1 is the start state for every compiled expression.
//
// The transition relation is not required to be total, nor deterministic:
// compiled NFAs may have several transitions leaving a state on the same
// symbol, or none at all.
type Automaton struct {
	Alphabet    []rune
	Start       int
	Accept      []int
	Transitions []Transition

	// NStates is the total number of states; the state set is {1..NStates}.
	NStates int
}

// IsAccept reports whether state q is an accept state.
func (m *Automaton) IsAccept(q int) bool {
	for _, a := range m.Accept {
		if a == q {
			return true
		}
	}
	return false
}

// InAlphabet reports whether r is a symbol of the automaton's alphabet.
func (m *Automaton) InAlphabet(r rune) bool {
	for _, s := range m.Alphabet {
		if s == r {
			return true
		}
	}
	return false
}

// CheckInput validates that every character of input belongs to the
// alphabet. It is the precondition for Run: membership is checked once,
// up front, never mid-simulation.
func (m *Automaton) CheckInput(input string) error {
	for _, r := range input {
		if !m.InAlphabet(r) {
			return fmt.Errorf("%w: %q", ErrInput, r)
		}
	}
	return nil
}
