// Package gwttest provides an in-memory gwt.Host that records every
// registration it receives, for testing code built on the gwt vocabulary
// (including this repository's own suite logic) without a real test
// framework behind it.
package gwttest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/eykd/gwt-go/gwt"
)

// Kind identifies which host primitive received a registration.
type Kind string

const (
	KindStep       Kind = "step"
	KindRun        Kind = "run"
	KindSkip       Kind = "skip"
	KindOnly       Kind = "only"
	KindTodo       Kind = "todo"
	KindGroup      Kind = "group"
	KindBeforeEach Kind = "before-each"
	KindAfterEach  Kind = "after-each"
	KindBeforeAll  Kind = "before-all"
	KindAfterAll   Kind = "after-all"
)

// Registration records one call to a host primitive.
type Registration struct {
	// ID is a unique handle for this registration (a UUID string), so
	// assertions can reference individual registrations even when titles
	// collide.
	ID string
	// Kind is the primitive that received the call.
	Kind Kind
	// Title is the composed title the caller forwarded.
	Title string
	// Scenario is the callback for run/skip/only registrations; nil for
	// every other kind (including todo, which never carries a callback).
	Scenario gwt.ScenarioFunc
	// Step is the callback for step and hook registrations; nil otherwise.
	Step gwt.StepFunc
}

// Recorder is a gwt.Host that records registrations in call order. Step
// invokes its callback and returns its result, standing in for a host that
// awaits each step; Group runs its registration function synchronously;
// every other primitive records without executing anything. Safe for
// concurrent use.
type Recorder struct {
	mu   sync.Mutex
	regs []Registration
	err  error
}

var _ gwt.Host = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailWith makes every subsequent registration return err, for testing that
// callers pass host results through unmodified. A nil err restores normal
// recording.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// record appends one registration, or returns the configured failure.
func (r *Recorder) record(kind Kind, title string, scenario gwt.ScenarioFunc, step gwt.StepFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.regs = append(r.regs, Registration{
		ID:       uuid.NewString(),
		Kind:     kind,
		Title:    title,
		Scenario: scenario,
		Step:     step,
	})
	return nil
}

// Step records the step boundary, then invokes fn and returns its result
// unchanged. A nil fn records the boundary and returns nil.
func (r *Recorder) Step(ctx context.Context, title string, fn gwt.StepFunc) error {
	if err := r.record(KindStep, title, nil, fn); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Run records a normal scenario registration.
func (r *Recorder) Run(title string, fn gwt.ScenarioFunc) error {
	return r.record(KindRun, title, fn, nil)
}

// Skip records a skipped scenario registration. The callback is retained
// for introspection but never invoked.
func (r *Recorder) Skip(title string, fn gwt.ScenarioFunc) error {
	return r.record(KindSkip, title, fn, nil)
}

// Only records an exclusive scenario registration.
func (r *Recorder) Only(title string, fn gwt.ScenarioFunc) error {
	return r.record(KindOnly, title, fn, nil)
}

// Todo records a placeholder registration. No callback is associated.
func (r *Recorder) Todo(title string) error {
	return r.record(KindTodo, title, nil, nil)
}

// Group records the grouping, then runs fn synchronously so nested
// registrations land in order after it.
func (r *Recorder) Group(title string, fn gwt.GroupFunc) error {
	if err := r.record(KindGroup, title, nil, nil); err != nil {
		return err
	}
	if fn != nil {
		fn()
	}
	return nil
}

// BeforeEach records a before-each hook registration.
func (r *Recorder) BeforeEach(title string, fn gwt.StepFunc) error {
	return r.record(KindBeforeEach, title, nil, fn)
}

// AfterEach records an after-each hook registration.
func (r *Recorder) AfterEach(title string, fn gwt.StepFunc) error {
	return r.record(KindAfterEach, title, nil, fn)
}

// BeforeAll records a before-all hook registration.
func (r *Recorder) BeforeAll(title string, fn gwt.StepFunc) error {
	return r.record(KindBeforeAll, title, nil, fn)
}

// AfterAll records an after-all hook registration.
func (r *Recorder) AfterAll(title string, fn gwt.StepFunc) error {
	return r.record(KindAfterAll, title, nil, fn)
}

// Registrations returns a copy of every recorded registration, in call
// order.
func (r *Recorder) Registrations() []Registration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Registration, len(r.regs))
	copy(out, r.regs)
	return out
}

// Titles returns the titles of registrations of the given kind, in call
// order.
func (r *Recorder) Titles(kind Kind) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var titles []string
	for _, reg := range r.regs {
		if reg.Kind == kind {
			titles = append(titles, reg.Title)
		}
	}
	return titles
}

// AllTitles returns every recorded title regardless of kind, in call order.
func (r *Recorder) AllTitles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	titles := make([]string, len(r.regs))
	for i, reg := range r.regs {
		titles[i] = reg.Title
	}
	return titles
}

// Reset discards all recorded registrations and clears any configured
// failure.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regs = nil
	r.err = nil
}
