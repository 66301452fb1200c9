package room

import "strings"

// NoIssue is the display text of a room without reported issues.
const NoIssue = "No issue"

// Issue is the reported state of a room: an ordered set of maintenance
// categories plus any free text that is not a known category.
// The zero value means no issue.
type Issue struct {
	tokens []issueToken
}

type issueToken struct {
	category Category // zero for free text
	text     string
}

// ParseIssue reads the comma-joined issue text used by the seed table.
// "No issue" in any letter case yields the zero Issue.
func ParseIssue(raw string) Issue {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, NoIssue) {
		return Issue{}
	}

	var issue Issue
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if c, ok := ParseCategory(part); ok {
			issue = issue.with(c)
			continue
		}
		issue.tokens = append(issue.tokens, issueToken{text: part})
	}
	return issue
}

// IssueOf returns an Issue holding exactly one category.
func IssueOf(c Category) Issue {
	return Issue{tokens: []issueToken{{category: c, text: c.String()}}}
}

func (i Issue) with(c Category) Issue {
	for _, t := range i.tokens {
		if t.category == c {
			return i
		}
	}
	i.tokens = append(i.tokens, issueToken{category: c, text: c.String()})
	return i
}

// None reports whether no issue is recorded.
func (i Issue) None() bool {
	return len(i.tokens) == 0
}

// Has reports whether the issue carries category c. Free text mentioning
// the category name also counts.
func (i Issue) Has(c Category) bool {
	name := c.String()
	for _, t := range i.tokens {
		if t.category == c {
			return true
		}
		if t.category == 0 && strings.Contains(t.text, name) {
			return true
		}
	}
	return false
}

// Categories returns the known categories in recorded order.
func (i Issue) Categories() []Category {
	var cats []Category
	for _, t := range i.tokens {
		if t.category != 0 {
			cats = append(cats, t.category)
		}
	}
	return cats
}

// Remainder returns the free-text parts that are not known categories.
func (i Issue) Remainder() []string {
	var rest []string
	for _, t := range i.tokens {
		if t.category == 0 {
			rest = append(rest, t.text)
		}
	}
	return rest
}

// String is the display text: tokens joined with ", " or NoIssue.
func (i Issue) String() string {
	if i.None() {
		return NoIssue
	}
	parts := make([]string, len(i.tokens))
	for n, t := range i.tokens {
		parts[n] = t.text
	}
	return strings.Join(parts, ", ")
}

// Equal reports whether both issues have the same display text.
func (i Issue) Equal(other Issue) bool {
	return i.String() == other.String()
}
