package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// TermRoll records the draws made for one dice term
type TermRoll struct {
	// Term is the dice component that produced these draws
	Term Term
	// Rolls holds each individual die value in draw order
	Rolls []int
	// Subtotal is the sum of Rolls before sign adjustment
	Subtotal int
}

// RollResult is the evaluated outcome of a dice expression
type RollResult struct {
	// Expression is the parsed formula that was evaluated
	Expression *Expression
	// Terms holds the draws for each dice term in order
	Terms []TermRoll
	// Total is the signed sum of all subtotals plus the modifier
	Total int
}

// RollExpression evaluates a parsed expression using the supplied roller.
// Dice are drawn term by term in the order they were written.
func RollExpression(r Roller, expr *Expression) *RollResult {
	result := &RollResult{
		Expression: expr,
		Total:      expr.Modifier,
	}

	for _, term := range expr.Terms {
		tr := TermRoll{
			Term:  term,
			Rolls: make([]int, 0, term.Count),
		}
		for i := 0; i < term.Count; i++ {
			value := r.Roll(term.Sides)
			tr.Rolls = append(tr.Rolls, value)
			tr.Subtotal += value
		}

		if term.Negative {
			result.Total -= tr.Subtotal
		} else {
			result.Total += tr.Subtotal
		}
		result.Terms = append(result.Terms, tr)
	}

	return result
}

// String renders the roll for chat. A single unmodified die shows the bare
// total ("1d100 = 45") while anything more complex shows the per-term
// breakdown ("2d6+3 = [4+5] = 12").
func (r *RollResult) String() string {
	if len(r.Terms) == 1 && len(r.Terms[0].Rolls) == 1 && r.Expression.Modifier == 0 {
		return fmt.Sprintf("%s = %d", r.Expression.Text, r.Total)
	}

	var b strings.Builder
	b.WriteString(r.Expression.Text)
	b.WriteString(" = ")
	for i, tr := range r.Terms {
		if tr.Term.Negative {
			b.WriteString("-")
		} else if i > 0 {
			b.WriteString("+")
		}
		b.WriteString("[")
		for j, v := range tr.Rolls {
			if j > 0 {
				b.WriteString("+")
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteString("]")
	}
	b.WriteString(" = ")
	b.WriteString(strconv.Itoa(r.Total))

	return b.String()
}
