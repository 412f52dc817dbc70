package automata

// chain is one concatenation-only piece of an expression. The compiler
// splits an expression into chains on top-level '|', then rewrites each
// chain until it is a flat run of symbols. A chain representing a starred
// group `(...)*` has the outer wrapper stripped and starred set instead;
// inner stars stay literal in seq and become self-loops in the builder.
type chain struct {
	seq     []rune
	starred bool
}

// splitAlternation scans left to right tracking parenthesis depth. A '|' at
// depth zero terminates the current chain; parentheses adjust the depth and
// are retained. Always produces at least one chain.
func splitAlternation(rs []rune) []chain {
	var chains []chain
	var cur []rune
	depth := 0
	for _, r := range rs {
		switch {
		case r == '(':
			depth++
			cur = append(cur, r)
		case r == ')':
			depth--
			cur = append(cur, r)
		case r == '|' && depth == 0:
			chains = append(chains, chain{seq: cur})
			cur = nil
		default:
			cur = append(cur, r)
		}
	}
	return append(chains, chain{seq: cur})
}

// simplify rewrites chains until every chain is flat, or flat with the
// starred flag set. Chains that need no rewrite keep their position; the
// pieces produced by a rewrite are appended after them, matching the
// builder's expected ordering. Rewriting recurses only into chains that
// still open with '(', so each step strips at least one parenthesis pair
// and the recursion terminates on any expression the guard admitted.
func simplify(chains []chain) []chain {
	retain := make([]bool, len(chains))
	var rewritten []chain

	for i, c := range chains {
		n := len(c.seq)
		switch {
		case !c.starred && n >= 2 && c.seq[0] == '(' && c.seq[n-1] == ')':
			rewritten = append(rewritten, unwrapGroup(c.seq)...)
		case n >= 3 && c.seq[0] == '(' && c.seq[n-1] == '*' && c.seq[n-2] == ')':
			rewritten = append(rewritten, unwrapStarGroup(c.seq)...)
		default:
			retain[i] = true
		}
	}

	out := make([]chain, 0, len(chains)+len(rewritten))
	for i, c := range chains {
		if retain[i] {
			out = append(out, c)
		}
	}
	return append(out, rewritten...)
}

// unwrapGroup handles a chain of the form `(...)`: every outermost
// parenthesis pair is stripped, and the interior is split and simplified as
// if it were a whole expression.
func unwrapGroup(seq []rune) []chain {
	inner := make([]rune, 0, len(seq))
	depth := 0
	for _, r := range seq {
		switch r {
		case '(':
			if depth > 0 {
				inner = append(inner, r)
			}
			depth++
		case ')':
			depth--
			if depth > 0 {
				inner = append(inner, r)
			}
		default:
			inner = append(inner, r)
		}
	}
	return simplify(splitAlternation(inner))
}

// unwrapStarGroup handles a chain of the form `(...)*`: the outer group is
// stripped, the interior is split on '|' at the group's own depth, each
// piece is simplified recursively, and every resulting chain is marked
// starred. Inner parentheses keep their own depth so an inner ')' does not
// terminate the outer strip early.
func unwrapStarGroup(seq []rune) []chain {
	var pieces []chain
	var cur []rune
	depth := 0
scan:
	for _, r := range seq {
		switch {
		case r == '(':
			if depth > 0 {
				cur = append(cur, r)
			}
			depth++
		case r == ')':
			if depth == 1 {
				break scan
			}
			depth--
			cur = append(cur, r)
		case r == '|' && depth == 1:
			pieces = append(pieces, chain{seq: cur})
			cur = nil
		default:
			cur = append(cur, r)
		}
	}
	pieces = append(pieces, chain{seq: cur})

	starred := simplify(pieces)
	for i := range starred {
		starred[i].starred = true
	}
	return starred
}
