package gwt

import "strings"

// Before registers a before-each hook. The description is forwarded with
// only whitespace trimming — no keyword, no additional logic.
func (s *Suite) Before(description string, fn StepFunc) error {
	return s.host.BeforeEach(strings.TrimSpace(description), fn)
}

// After registers an after-each hook. See Before.
func (s *Suite) After(description string, fn StepFunc) error {
	return s.host.AfterEach(strings.TrimSpace(description), fn)
}

// BeforeAll registers a hook run once before the scenarios in scope. See
// Before.
func (s *Suite) BeforeAll(description string, fn StepFunc) error {
	return s.host.BeforeAll(strings.TrimSpace(description), fn)
}

// AfterAll registers a hook run once after the scenarios in scope. See
// Before.
func (s *Suite) AfterAll(description string, fn StepFunc) error {
	return s.host.AfterAll(strings.TrimSpace(description), fn)
}
