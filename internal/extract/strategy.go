package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy is one way of reading a field value out of a fragment. Strategies
// are tried in an explicit order rather than nested conditionals so the
// fallback behavior stays enumerable and testable.
type Strategy struct {
	// Name identifies the strategy in logs and failure messages.
	Name string
	// Apply reads the value; ok is false when the strategy's precondition
	// (a matching descendant, a populated attribute) does not hold.
	Apply func(*goquery.Selection) (value string, ok bool)
}

// First applies strategies in order and returns the first value found.
func First(fragment *goquery.Selection, strategies ...Strategy) (string, bool) {
	for _, s := range strategies {
		if value, ok := s.Apply(fragment); ok {
			return value, true
		}
	}
	return "", false
}

// Text reads the trimmed text of the first descendant matching selector.
// Precondition: such a descendant exists and has non-empty text.
func Text(selector string) Strategy {
	return Strategy{
		Name: "text " + selector,
		Apply: func(fragment *goquery.Selection) (string, bool) {
			sel := fragment.Find(selector).First()
			if sel.Length() == 0 {
				return "", false
			}
			text := strings.TrimSpace(sel.Text())
			return text, text != ""
		},
	}
}

// Attr reads an attribute of the first descendant matching selector.
// Precondition: the descendant exists and carries the attribute.
func Attr(selector, attr string) Strategy {
	return Strategy{
		Name: "attr " + selector + "[" + attr + "]",
		Apply: func(fragment *goquery.Selection) (string, bool) {
			value, exists := fragment.Find(selector).First().Attr(attr)
			return strings.TrimSpace(value), exists && strings.TrimSpace(value) != ""
		},
	}
}

// CellText reads the trimmed text of the fragment's nth table cell,
// counting from zero. Structural fallback for rows where the expected
// classes are absent. Precondition: the fragment has more than n cells.
func CellText(n int) Strategy {
	return Strategy{
		Name: fmt.Sprintf("cell %d", n),
		Apply: func(fragment *goquery.Selection) (string, bool) {
			cells := fragment.Find("td")
			if cells.Length() <= n {
				return "", false
			}
			text := strings.TrimSpace(cells.Eq(n).Text())
			return text, text != ""
		},
	}
}

// OwnText reads the fragment's own trimmed text. Last-resort fallback for
// single-value fragments. Precondition: the text is non-empty.
func OwnText() Strategy {
	return Strategy{
		Name: "own text",
		Apply: func(fragment *goquery.Selection) (string, bool) {
			text := strings.TrimSpace(fragment.Text())
			return text, text != ""
		},
	}
}
