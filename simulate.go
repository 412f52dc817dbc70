package automata

import "fmt"

// Step records one fired transition during a simulation.
type Step struct {
	From   int
	Symbol rune
	To     int
}

// String renders the step in delta notation, e.g. "d(q1, a) -> q2".
func (s Step) String() string {
	return fmt.Sprintf("d(q%d, %c) -> q%d", s.From, s.Symbol, s.To)
}

// Result is the outcome of simulating one input string.
type Result struct {
	// Accepted is true iff the final state is an accept state and every
	// input character fired a transition.
	Accepted bool

	// Final is the state the simulation ended in.
	Final int

	// Trace lists the fired transitions, in order. A stuck simulation has
	// fewer entries than the input has characters.
	Trace []Step
}

// RunConfig defines the configuration options available to Run, useable
// through the RunWithConfig function.
type RunConfig struct {
	// ReturnToStart enables the free transitions back to the start state
	// that the regex-compiled NFAs rely on: while scanning for the current
	// character, passing a transition from the current state into the start
	// state moves the simulation to the start state without consuming input
	// and without a trace entry.
	ReturnToStart bool
}

// Run replays input against the automaton (see also: RunWithConfig).
func (m *Automaton) Run(input string) (Result, error) {
	return m.RunWithConfig(input, RunConfig{})
}

// RunWithConfig replays input symbol-by-symbol against the transition
// relation, starting from the start state.
//
// For each character, the transition list is scanned in order and the first
// transition leaving the current state whose symbol set contains the
// character fires. There is no backtracking: when several transitions could
// fire, transition order decides, which is a deliberate simplification
// rather than a full nondeterministic search. A character with no matching
// transition consumes nothing; the simulation is then stuck and the length
// check in Result.Accepted rejects the input.
//
// Every input character must belong to the alphabet; otherwise an error
// wrapping ErrInput is returned before any transition fires.
func (m *Automaton) RunWithConfig(input string, config RunConfig) (Result, error) {
	if err := m.CheckInput(input); err != nil {
		return Result{}, err
	}

	cur := m.Start
	var trace []Step
	length := 0
	for _, r := range input {
		length++
		for i := range m.Transitions {
			t := &m.Transitions[i]
			if config.ReturnToStart && t.From == cur && t.To == m.Start {
				cur = m.Start
			}
			if t.From == cur && t.hasSymbol(r) {
				trace = append(trace, Step{From: t.From, Symbol: r, To: t.To})
				cur = t.To
				break
			}
		}
	}

	return Result{
		Accepted: m.IsAccept(cur) && len(trace) == length,
		Final:    cur,
		Trace:    trace,
	}, nil
}
