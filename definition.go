package automata

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is a pre-built automaton description deserialized from YAML.
//
// Two transition layouts share this type. In table layout (DFA), row r and
// column c hold the destination of state r on alphabet symbol c, so the
// state set is implicitly {1..rows} and the transition function is total.
// In edge layout (PDA and plain graph listings), each row is a (from, to)
// pair and the state set is given explicitly by start and accept. All state
// numbers are 1-relative.
type Definition struct {
	Alphabet    []string `yaml:"alphabet"`
	Start       int      `yaml:"start"`
	Accept      []int    `yaml:"accept"`
	Transitions [][]int  `yaml:"transitions"`

	// PushState designates the state whose self-loop is rendered as a stack
	// push in the PDA visualization. Zero means state 2.
	PushState int `yaml:"pushstate,omitempty"`
}

// LoadDefinition deserializes a YAML definition from r.
func LoadDefinition(r io.Reader) (*Definition, error) {
	var d Definition
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDefinition, err)
	}
	return &d, nil
}

// LoadDefinitionFile deserializes a YAML definition from the named file.
func LoadDefinitionFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadDefinition(f)
}

// symbols returns the alphabet as runes. Call after validation.
func (d *Definition) symbols() []rune {
	rs := make([]rune, 0, len(d.Alphabet))
	for _, s := range d.Alphabet {
		for _, r := range s {
			rs = append(rs, r)
			break
		}
	}
	return rs
}

// checkDefined rejects a definition missing any of the required sections.
func (d *Definition) checkDefined() error {
	if len(d.Alphabet) == 0 {
		return fmt.Errorf("%w: no alphabet defined", ErrDefinition)
	}
	for _, s := range d.Alphabet {
		if len([]rune(s)) != 1 {
			return fmt.Errorf("%w: alphabet entry %q is not a single character", ErrDefinition, s)
		}
	}
	if len(d.Transitions) == 0 {
		return fmt.Errorf("%w: no transitions defined", ErrDefinition)
	}
	if len(d.Accept) == 0 {
		return fmt.Errorf("%w: no accept states defined", ErrDefinition)
	}
	return nil
}

// checkStates rejects a start or accept state outside {1..n}.
func (d *Definition) checkStates(n int) error {
	if d.Start < 1 || d.Start > n {
		return fmt.Errorf("%w: start state(%d) is not valid", ErrDefinition, d.Start)
	}
	for _, a := range d.Accept {
		if a < 1 || a > n {
			return fmt.Errorf("%w: accept state(%d) is not valid", ErrDefinition, a)
		}
	}
	return nil
}

// Validate checks a table-layout definition: every row as wide as the
// alphabet, and every destination, the start state, and every accept state
// within {1..rows}. Runs before any simulation or export.
func (d *Definition) Validate() error {
	if err := d.checkDefined(); err != nil {
		return err
	}
	n := len(d.Transitions)
	for rnum, row := range d.Transitions {
		if len(row) != len(d.Alphabet) {
			return fmt.Errorf("%w: wrong number of columns(%d) in row %d, should be %d",
				ErrDefinition, len(row), rnum+1, len(d.Alphabet))
		}
	}
	for rnum, row := range d.Transitions {
		for cnum, state := range row {
			if state < 1 || state > n {
				return fmt.Errorf("%w: invalid transition state(%d) in row %d, column %d",
					ErrDefinition, state, rnum+1, cnum+1)
			}
		}
	}
	return d.checkStates(n)
}

// ValidateEdges checks an edge-layout definition: every row a (from, to)
// pair, with endpoints, start, and accept states within {1..rows}. Bounding
// states by the row count mirrors the table-layout check; edge-layout
// definitions in practice list one row per transition of a chain-shaped
// machine, where the two counts coincide.
func (d *Definition) ValidateEdges() error {
	if err := d.checkDefined(); err != nil {
		return err
	}
	n := len(d.Transitions)
	for rnum, row := range d.Transitions {
		if len(row) != 2 {
			return fmt.Errorf("%w: row %d is not a (from, to) pair", ErrDefinition, rnum+1)
		}
		for _, state := range row {
			if state < 1 || state > n {
				return fmt.Errorf("%w: invalid transition state(%d) in row %d",
					ErrDefinition, state, rnum+1)
			}
		}
	}
	return d.checkStates(n)
}

// ExplicitStates is the explicitly listed state set of an edge-layout
// definition: the start state followed by the accept states.
func (d *Definition) ExplicitStates() []int {
	states := make([]int, 0, 1+len(d.Accept))
	states = append(states, d.Start)
	return append(states, d.Accept...)
}

// ValidateMembership checks that both endpoints of every edge-layout row
// are members of the explicit state set.
func (d *Definition) ValidateMembership() error {
	states := d.ExplicitStates()
	member := func(q int) bool {
		for _, s := range states {
			if s == q {
				return true
			}
		}
		return false
	}
	for rnum, row := range d.Transitions {
		for _, state := range row {
			if !member(state) {
				return fmt.Errorf("%w: state(%d) in row %d is not a listed state",
					ErrDefinition, state, rnum+1)
			}
		}
	}
	return nil
}

// Automaton expands a table-layout definition into an automaton, one
// transition per (state, symbol) cell. Validate the definition first.
func (d *Definition) Automaton() *Automaton {
	m := &Automaton{
		Alphabet: d.symbols(),
		Start:    d.Start,
		Accept:   append([]int(nil), d.Accept...),
		NStates:  len(d.Transitions),
	}
	for rnum, row := range d.Transitions {
		for cnum, dest := range row {
			m.add(rnum+1, dest, m.Alphabet[cnum])
		}
	}
	return m
}

// NodeList renders an edge-layout definition in arrow notation, one line
// per edge, with accept states parenthesized. The first entry marks the
// start state.
func (d *Definition) NodeList() []string {
	accept := func(q int) bool {
		for _, a := range d.Accept {
			if a == q {
				return true
			}
		}
		return false
	}
	name := func(q int) string {
		if accept(q) {
			return fmt.Sprintf("(%d)", q)
		}
		return fmt.Sprintf("%d", q)
	}

	nodes := make([]string, 0, len(d.Transitions)+1)
	nodes = append(nodes, fmt.Sprintf(" -> %d", d.Start))
	for _, row := range d.Transitions {
		nodes = append(nodes, fmt.Sprintf("%s -> %s", name(row[0]), name(row[1])))
	}
	return nodes
}
