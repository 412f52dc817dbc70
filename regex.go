package automata

import (
	"fmt"
	"unicode"
)

// symbolRune reports whether r may appear in an expression as an alphabet
// symbol (as opposed to an operator or grouping character).
func symbolRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// CheckExpression validates a raw regular expression before any structural
// parsing begins. It rejects, with an error wrapping ErrExpression:
//
//   - an empty expression, or one starting with ')', '|', '*', or space;
//   - any character outside letters, digits, '*', '|', '(', ')', and space;
//   - '(' or '|' immediately followed by ')', '|', or '*';
//   - '*' immediately followed by '*';
//   - an expression ending with '(' or '|';
//   - unbalanced parentheses.
//
// On success it returns nil; it has no other effect.
func CheckExpression(expr string) error {
	rs := []rune(expr)
	if len(rs) == 0 {
		return fmt.Errorf("%w: empty expression", ErrExpression)
	}

	switch rs[0] {
	case ')', '|', '*', ' ':
		return fmt.Errorf("%w: cannot start with %q", ErrExpression, rs[0])
	}

	for _, r := range rs {
		switch {
		case symbolRune(r):
		case r == '*' || r == '|' || r == '(' || r == ')' || r == ' ':
		default:
			return fmt.Errorf("%w: %q is not an accepted character", ErrExpression, r)
		}
	}

	for i := 0; i < len(rs)-1; i++ {
		c, next := rs[i], rs[i+1]
		if c == '(' || c == '|' {
			if next == ')' || next == '|' || next == '*' {
				return fmt.Errorf("%w: %q cannot be immediately followed by %q", ErrExpression, c, next)
			}
		}
		if c == '*' && next == '*' {
			return fmt.Errorf("%w: %q cannot be immediately followed by %q", ErrExpression, c, next)
		}
	}

	last := rs[len(rs)-1]
	if last == '(' || last == '|' {
		return fmt.Errorf("%w: cannot end with %q", ErrExpression, last)
	}

	// The valid parentheses problem: push on '(', pop on ')', the stack must
	// never underflow and must be empty exactly at the end.
	depth := 0
	for _, r := range rs {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: parentheses are not balanced", ErrExpression)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: parentheses are not balanced", ErrExpression)
	}
	return nil
}

// alphabetOf extracts the alphabet of an expression: every symbol character,
// once, in order of first appearance.
func alphabetOf(rs []rune) []rune {
	var alphabet []rune
	for _, r := range rs {
		if !symbolRune(r) {
			continue
		}
		seen := false
		for _, a := range alphabet {
			if a == r {
				seen = true
				break
			}
		}
		if !seen {
			alphabet = append(alphabet, r)
		}
	}
	return alphabet
}
