package automata

import "sort"

// Compile builds an NFA from a restricted regular expression. The expression
// is validated first (CheckExpression), split on top-level alternation,
// simplified, and walked once to allocate states and emit transitions.
//
// The construction deliberately diverges from the textbook Thompson
// construction: the repetition path of every starred group re-enters the
// global start state rather than a private loop state, so state 1 doubles
// as the loop head for all starred alternatives.
func Compile(expr string) (*Automaton, error) {
	if err := CheckExpression(expr); err != nil {
		return nil, err
	}
	rs := []rune(expr)
	chains := simplify(splitAlternation(rs))
	return build(chains, alphabetOf(rs)), nil
}

// build consumes fully simplified chains. State 1 is reserved as the global
// start state; the counter for newly allocated states starts at 2 and is
// threaded through the per-chain builders.
func build(chains []chain, alphabet []rune) *Automaton {
	m := &Automaton{Alphabet: alphabet, Start: 1}

	// First symbol of every chain. The edge closing a starred group carries
	// all of them, because re-entering the start state may begin any chain.
	entry := make([]rune, 0, len(chains))
	for _, c := range chains {
		entry = append(entry, c.seq[0])
	}

	next := 2
	for _, c := range chains {
		if c.starred {
			next = m.buildStarred(c.seq, next, entry)
		} else {
			next = m.buildPlain(c.seq, next)
		}
	}
	m.NStates = next - 1

	sort.Ints(m.Accept)
	m.Accept = dedup(m.Accept)
	return m
}

// buildPlain emits transitions for a flat chain. Each symbol moves from the
// previously allocated state to a fresh one; a '*' instead emits a self-loop
// on the previous state, labeled with the symbol before it. The last state
// allocated for the chain is an accept state.
func (m *Automaton) buildPlain(seq []rune, next int) int {
	m.add(1, next, seq[0])
	next++
	for i := 1; i < len(seq); i++ {
		if seq[i] == '*' {
			m.add(next-1, next-1, seq[i-1])
			continue
		}
		m.add(next-1, next, seq[i])
		next++
	}
	m.Accept = append(m.Accept, next-1)
	return next
}

// buildStarred emits transitions for a starred chain. The entry edge leaves
// the global start state; the interior behaves as in buildPlain, with inner
// parentheses tracked so they allocate nothing; on reaching the end of the
// group an edge returns to the start state, labeled with the entry symbols
// of every chain. Both state 1 and the last allocated state accept.
func (m *Automaton) buildStarred(seq []rune, next int, entry []rune) int {
	m.add(1, next, seq[0])
	next++
	for i := 1; i < len(seq); i++ {
		switch seq[i] {
		case '(', ')':
		case '*':
			m.add(next-1, next-1, seq[i-1])
		default:
			m.add(next-1, next, seq[i])
			next++
		}
	}
	back := Transition{From: next - 1, To: 1, Symbols: append([]rune(nil), entry...)}
	m.Transitions = append(m.Transitions, back)
	m.Accept = append(m.Accept, 1, next-1)
	return next
}

// add appends a transition labeled with the given symbols.
func (m *Automaton) add(from, to int, symbols ...rune) {
	m.Transitions = append(m.Transitions, Transition{From: from, To: to, Symbols: symbols})
}

// dedup removes adjacent duplicates from a sorted slice.
func dedup(xs []int) []int {
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			out = append(out, x)
		}
	}
	return out
}
