package chem

import "strings"

// initialOutputCapacity pre-sizes the expansion output buffer; the
// builder grows past it for longer formulas.
const initialOutputCapacity = 256

// Expand parses formula and returns its fully expanded atom-by-atom
// representation: one symbol per atom, space-separated, with no digits,
// parentheses or trailing whitespace. For example:
//
//	Expand("H2O")      == "O H H"
//	Expand("Mg(OH)2")  == "O H O H Mg"
//	Expand("H0")       == ""
//
// The expansion is driven by a single left-to-right scan over one stack:
//
//   - an element symbol is tokenized (ReadSymbol) and pushed
//   - a digit run m pops one entry and pushes it back m times
//     (m = 0 removes it; a bare leading multiplier is ignored)
//   - "(" pushes a group marker
//   - ")" pops entries until the marker (or exhaustion) and replays them
//     onto the stack, in pop order, once per following group multiplier
//     (default 1)
//   - any other character is skipped
//
// The result is the stack drained once in pop order: group interiors keep
// their left-to-right order while the top-level sequence comes out
// reversed, which is the documented output contract above.
//
// Formulas must pass IsBalanced before expansion; unmatched parentheses
// produce stack shapes Expand tolerates rather than validates. The error
// return is reserved for stack contract violations and is nil for any
// gated input.
func Expand(formula string) (string, error) {
	stack := NewStack()

	i := 0
	for i < len(formula) {
		c := formula[i]
		switch {
		case isAlpha(c):
			sym, w := ReadSymbol(formula, i)
			stack.PushToken(Token{Symbol: sym})
			i += w

		case isDigit(c):
			m, w := readNumber(formula, i)
			i += w
			// A multiplier with nothing beneath it (e.g. "2H") has no
			// token to repeat and is discarded.
			if stack.IsEmpty() {
				continue
			}
			e, err := stack.Pop()
			if err != nil {
				return "", err
			}
			if e.Kind != KindToken {
				continue
			}
			for n := 0; n < m; n++ {
				stack.Push(e)
			}

		case c == '(':
			stack.PushToken(Token{Symbol: groupOpenSymbol, GroupMarker: true})
			i++

		case c == ')':
			// Collect the group in pop order, consuming the marker.
			var group []Entry
			for !stack.IsEmpty() {
				e, err := stack.Pop()
				if err != nil {
					return "", err
				}
				if e.Kind == KindToken && e.Token.GroupMarker {
					break
				}
				group = append(group, e)
			}
			i++

			multiplier := 1
			if i < len(formula) && isDigit(formula[i]) {
				var w int
				multiplier, w = readNumber(formula, i)
				i += w
			}
			for n := 0; n < multiplier; n++ {
				for _, e := range group {
					stack.Push(e)
				}
			}

		default:
			i++
		}
	}

	var out strings.Builder
	out.Grow(initialOutputCapacity)
	for !stack.IsEmpty() {
		e, err := stack.Pop()
		if err != nil {
			return "", err
		}
		// Unmatched group markers only survive in unvalidated input.
		if e.Kind != KindToken || e.Token.GroupMarker {
			continue
		}
		if out.Len() > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(e.Token.Symbol)
	}

	return out.String(), nil
}
