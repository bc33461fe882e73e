package gwt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eykd/gwt-go/internal/label"
)

// ErrMissingScenarioFunc reports a scenario registration that requires a
// callback but was given a nil one. It is returned immediately, before the
// host is touched.
var ErrMissingScenarioFunc = errors.New("scenario requires a non-nil function")

// scenarioMode selects the host registration path and title marker.
type scenarioMode int

const (
	modeRun scenarioMode = iota
	modeSkip
	modeOnly
	modeTodo
)

// Scenario registers a scenario titled "Scenario: <description>" (plus the
// tag suffix when Tags are given) through the host's standard registration
// primitive. A nil fn is a configuration error wrapping
// ErrMissingScenarioFunc.
func (s *Suite) Scenario(description string, fn ScenarioFunc, opts ...Option) error {
	return s.dispatch(modeRun, description, fn, opts)
}

// SkipScenario registers a scenario through the host's skip path. The title
// gains a "[SKIPPED] " prefix and fn is passed through untouched, though the
// host is not expected to execute it — regardless of what fn would do if
// invoked.
func (s *Suite) SkipScenario(description string, fn ScenarioFunc, opts ...Option) error {
	return s.dispatch(modeSkip, description, fn, opts)
}

// OnlyScenario registers a scenario through the host's exclusive path with
// an "[ONLY] " title prefix. Enforcement of exclusivity is entirely the
// host's responsibility.
func (s *Suite) OnlyScenario(description string, fn ScenarioFunc, opts ...Option) error {
	return s.dispatch(modeOnly, description, fn, opts)
}

// TodoScenario registers an intentionally-incomplete placeholder with a
// "[TODO] " title prefix. It takes no callback: a todo scenario never
// executes caller logic.
func (s *Suite) TodoScenario(description string, opts ...Option) error {
	return s.dispatch(modeTodo, description, nil, opts)
}

// dispatch is the single registration routine shared by the four scenario
// operations. Title assembly order: keyword plus trimmed description, then
// the tag suffix, then the status marker prefix. The host's registration
// result is returned unmodified.
func (s *Suite) dispatch(mode scenarioMode, description string, fn ScenarioFunc, opts []Option) error {
	if fn == nil && mode != modeTodo {
		return fmt.Errorf("scenario %q: %w", strings.TrimSpace(description), ErrMissingScenarioFunc)
	}

	o := resolveOptions(opts)
	title := label.Compose(label.Scenario, description) + label.TagSuffix(o.tags)

	switch mode {
	case modeSkip:
		return s.host.Skip(label.MarkerSkipped+title, fn)
	case modeOnly:
		return s.host.Only(label.MarkerOnly+title, fn)
	case modeTodo:
		return s.host.Todo(label.MarkerTodo + title)
	default:
		return s.host.Run(title, fn)
	}
}
