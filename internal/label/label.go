// Package label composes the fixed Gherkin-style keyword labels used in
// test titles. All functions are pure: identical inputs always produce
// identical output.
package label

import "strings"

// Step keywords. Steps carry no trailing colon.
const (
	Given = "Given"
	When  = "When"
	Then  = "Then"
	And   = "And"
	But   = "But"
)

// Grouping and scenario keywords. These carry a trailing colon as part of
// the fixed keyword string.
const (
	Feature  = "Feature:"
	Scenario = "Scenario:"
	Outline  = "Scenario Outline:"
)

// Status markers prepended ahead of the keyword for the skip/only/todo
// scenario modifiers. Each includes its trailing space.
const (
	MarkerSkipped = "[SKIPPED] "
	MarkerOnly    = "[ONLY] "
	MarkerTodo    = "[TODO] "
)

// Compose renders "<keyword> <description>". Leading and trailing
// whitespace is removed from the description; internal whitespace is
// preserved verbatim. No escaping, truncation, or locale transformation
// occurs, and any input (including the empty string) is accepted.
func Compose(keyword, description string) string {
	return keyword + " " + strings.TrimSpace(description)
}

// TagSuffix renders the scenario-title tag suffix: " - Tags: " followed by
// the tags joined with single spaces, in their given order. An empty or nil
// tag list yields the empty string.
func TagSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return " - Tags: " + strings.Join(tags, " ")
}
