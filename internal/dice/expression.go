package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidExpression is returned when text cannot be parsed as a dice formula
var ErrInvalidExpression = errors.New("invalid dice expression")

const (
	// MaxDiceCount is the most dice a single term may roll
	MaxDiceCount = 100
	// MaxDieSides is the most faces a single die may have
	MaxDieSides = 1000
)

// Term is a single dice component of an expression
type Term struct {
	// Count is the number of dice to roll (1-100)
	Count int
	// Sides is the number of faces per die (1-1000)
	Sides int
	// Negative marks the term as subtracted from the total
	Negative bool
}

// Expression is a parsed dice formula
type Expression struct {
	// Terms holds the dice components in the order written
	Terms []Term
	// Modifier is the signed sum of all constant components
	Modifier int
	// Text is the cleaned input, kept for display
	Text string
}

func (e *Expression) String() string {
	return e.Text
}

var (
	termPattern   = regexp.MustCompile(`^(?:(\d*)d(\d+)|(\d+))`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
	leadingNumber = regexp.MustCompile(`^\d+[+-]`)
)

// Normalize expands the shorthand accepted by roll commands before parsing.
// A bare number becomes a die with that many sides ("100" -> "d100"), and a
// leading bare number in front of an operator gains the d prefix
// ("6+d4+3" -> "d6+d4+3"). Empty input falls back to a percentile die.
func Normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "d100"
	}

	if digitsOnly.MatchString(trimmed) || leadingNumber.MatchString(trimmed) {
		return "d" + trimmed
	}

	return trimmed
}

// Parse turns a textual dice formula into an Expression.
//
// The grammar is a sequence of tokens joined by + or -, where each token is
// either [count]d<sides> or an integer constant. Constants collect into the
// modifier. An expression with no dice token at all is invalid, as is a
// count outside 1-100 or a sides value outside 1-1000. Whitespace is
// ignored and the d is case-insensitive.
func Parse(text string) (*Expression, error) {
	clean := strings.ToLower(stripSpace(text))
	if clean == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidExpression)
	}

	expr := &Expression{Text: clean}

	rest := clean
	first := true
	for len(rest) > 0 {
		negative := false
		switch rest[0] {
		case '+':
			rest = rest[1:]
		case '-':
			negative = true
			rest = rest[1:]
		default:
			if !first {
				return nil, fmt.Errorf("%w: missing operator in %q", ErrInvalidExpression, clean)
			}
		}
		first = false

		m := termPattern.FindStringSubmatch(rest)
		if m == nil {
			return nil, fmt.Errorf("%w: unexpected token in %q", ErrInvalidExpression, clean)
		}
		rest = rest[len(m[0]):]

		if m[2] != "" {
			term, err := newTerm(m[1], m[2], negative)
			if err != nil {
				return nil, err
			}
			expr.Terms = append(expr.Terms, term)
		} else {
			value, err := strconv.Atoi(m[3])
			if err != nil {
				return nil, fmt.Errorf("%w: bad constant in %q", ErrInvalidExpression, clean)
			}
			if negative {
				expr.Modifier -= value
			} else {
				expr.Modifier += value
			}
		}
	}

	if len(expr.Terms) == 0 {
		return nil, fmt.Errorf("%w: no dice term in %q", ErrInvalidExpression, clean)
	}

	return expr, nil
}

func newTerm(countStr, sidesStr string, negative bool) (Term, error) {
	count := 1
	if countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil {
			return Term{}, fmt.Errorf("%w: bad dice count %q", ErrInvalidExpression, countStr)
		}
		count = n
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		return Term{}, fmt.Errorf("%w: bad die sides %q", ErrInvalidExpression, sidesStr)
	}

	if count < 1 || count > MaxDiceCount {
		return Term{}, fmt.Errorf("%w: dice count must be 1-%d", ErrInvalidExpression, MaxDiceCount)
	}
	if sides < 1 || sides > MaxDieSides {
		return Term{}, fmt.Errorf("%w: die sides must be 1-%d", ErrInvalidExpression, MaxDieSides)
	}

	return Term{Count: count, Sides: sides, Negative: negative}, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
