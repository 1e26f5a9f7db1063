package chem

// IsBalanced reports whether every parenthesis in formula is matched.
// It scans left to right with a character stack, pushing on "(" and
// popping on ")", and short-circuits on the first imbalance. The input
// is never mutated; repeated calls on the same string always agree.
// O(n) time and space.
func IsBalanced(formula string) bool {
	stack := NewStack()
	for i := 0; i < len(formula); i++ {
		switch formula[i] {
		case '(':
			stack.PushChar('(')
		case ')':
			e, err := stack.Pop()
			if err != nil || e.Kind != KindChar || e.Char != '(' {
				return false
			}
		}
	}
	// Leftover entries are unmatched "(" characters.
	return stack.IsEmpty()
}

// ValidateLines checks the balance of every formula independently and
// returns the conjunction across all lines. For each unbalanced formula
// the 1-based line number is passed to report, which may be nil.
func ValidateLines(lines []string, report func(line int)) bool {
	allValid := true
	for i, line := range lines {
		if !IsBalanced(line) {
			allValid = false
			if report != nil {
				report(i + 1)
			}
		}
	}
	return allValid
}
