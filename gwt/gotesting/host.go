// Package gotesting adapts the standard library's testing package as a
// gwt.Host. Scenarios become subtests, the skip and todo modifiers use the
// testing package's own skip machinery, and step boundaries are written to
// the test log.
package gotesting

import (
	"context"
	"fmt"
	"testing"

	"github.com/eykd/gwt-go/gwt"
)

// ctxKey keys the current *testing.T inside the execution context the
// adapter hands to scenario and step callbacks.
type ctxKey struct{}

// T returns the *testing.T the adapter placed in ctx, or nil when ctx did
// not come from this adapter. Callbacks may use it for assertions and
// logging; the gwt layer itself never looks inside the context.
func T(ctx context.Context) *testing.T {
	t, _ := ctx.Value(ctxKey{}).(*testing.T)
	return t
}

// hook is one registered lifecycle hook.
type hook struct {
	title string
	fn    gwt.StepFunc
}

// Host drives gwt registrations through *testing.T subtests. Group
// temporarily retargets the adapter at the group's subtest so nested
// features produce nested subtests, and hooks registered inside a group
// stay scoped to it. Registrations must happen in test-function order (the
// only order the gwt vocabulary produces); the adapter is not safe for
// concurrent registration.
type Host struct {
	t          *testing.T
	beforeEach []hook
	afterEach  []hook
	beforeAll  []hook
	allRan     bool
}

var _ gwt.Host = (*Host)(nil)

// New creates a Host registering subtests under t.
func New(t *testing.T) *Host {
	return &Host{t: t}
}

// ctxFor builds the execution context carrying t.
func ctxFor(t *testing.T) context.Context {
	return context.WithValue(context.Background(), ctxKey{}, t)
}

// Run registers the scenario as a subtest. Before-each hooks run first,
// after-each hooks run afterwards even when the scenario fails, and a
// non-nil scenario error fails the subtest.
func (h *Host) Run(title string, fn gwt.ScenarioFunc) error {
	h.runBeforeAll()
	h.t.Run(title, func(t *testing.T) {
		ctx := ctxFor(t)
		for _, b := range h.beforeEach {
			if err := b.fn(ctx); err != nil {
				t.Fatalf("before hook %q: %v", b.title, err)
			}
		}
		defer func() {
			for i := len(h.afterEach) - 1; i >= 0; i-- {
				a := h.afterEach[i]
				if err := a.fn(ctx); err != nil {
					t.Errorf("after hook %q: %v", a.title, err)
				}
			}
		}()
		if fn == nil {
			t.Fatal("nil scenario function")
		}
		if err := fn(ctx); err != nil {
			t.Fatal(err)
		}
	})
	return nil
}

// Skip registers a subtest that skips immediately. The callback is retained
// by the caller for introspection only; it never executes here.
func (h *Host) Skip(title string, fn gwt.ScenarioFunc) error {
	_ = fn
	h.t.Run(title, func(t *testing.T) {
		t.SkipNow()
	})
	return nil
}

// Only registers the scenario exactly like Run. The testing package has no
// exclusive mode, so enforcement is left to run filtering, e.g.
// go test -run '\[ONLY\]'.
func (h *Host) Only(title string, fn gwt.ScenarioFunc) error {
	return h.Run(title, fn)
}

// Todo registers a subtest that skips with a not-yet-implemented note.
func (h *Host) Todo(title string) error {
	h.t.Run(title, func(t *testing.T) {
		t.Skip("not yet implemented")
	})
	return nil
}

// Group opens a subtest and retargets the adapter at it for the duration of
// the registration callback, restoring the outer target and hook scope on
// return. Hooks registered inside the group apply only within it; hooks
// inherited from the outer scope still apply.
func (h *Host) Group(title string, fn gwt.GroupFunc) error {
	outer := h.t
	outerBeforeEach := h.beforeEach
	outerAfterEach := h.afterEach
	outerBeforeAll := h.beforeAll
	outerAllRan := h.allRan

	h.t.Run(title, func(t *testing.T) {
		h.t = t
		h.beforeEach = append([]hook(nil), outerBeforeEach...)
		h.afterEach = append([]hook(nil), outerAfterEach...)
		h.beforeAll = nil
		h.allRan = false
		defer func() {
			h.t = outer
			h.beforeEach = outerBeforeEach
			h.afterEach = outerAfterEach
			h.beforeAll = outerBeforeAll
			h.allRan = outerAllRan
		}()
		if fn != nil {
			fn()
		}
	})
	return nil
}

// Step writes the step boundary to the test log of the context's
// *testing.T, then invokes fn and returns its result unchanged.
func (h *Host) Step(ctx context.Context, title string, fn gwt.StepFunc) error {
	if t := T(ctx); t != nil {
		t.Log(title)
	}
	if fn == nil {
		return fmt.Errorf("step %q: nil step function", title)
	}
	return fn(ctx)
}

// BeforeEach registers a hook run before every scenario in the current
// scope.
func (h *Host) BeforeEach(title string, fn gwt.StepFunc) error {
	if fn == nil {
		return fmt.Errorf("before hook %q: nil function", title)
	}
	h.beforeEach = append(h.beforeEach, hook{title: title, fn: fn})
	return nil
}

// AfterEach registers a hook run after every scenario in the current scope.
func (h *Host) AfterEach(title string, fn gwt.StepFunc) error {
	if fn == nil {
		return fmt.Errorf("after hook %q: nil function", title)
	}
	h.afterEach = append(h.afterEach, hook{title: title, fn: fn})
	return nil
}

// BeforeAll registers a hook run once, lazily, before the first scenario of
// the current scope.
func (h *Host) BeforeAll(title string, fn gwt.StepFunc) error {
	if fn == nil {
		return fmt.Errorf("before-all hook %q: nil function", title)
	}
	h.beforeAll = append(h.beforeAll, hook{title: title, fn: fn})
	return nil
}

// AfterAll registers a hook run once after the scenarios of the current
// scope, via the testing package's cleanup machinery.
func (h *Host) AfterAll(title string, fn gwt.StepFunc) error {
	if fn == nil {
		return fmt.Errorf("after-all hook %q: nil function", title)
	}
	t := h.t
	ctx := ctxFor(t)
	t.Cleanup(func() {
		if err := fn(ctx); err != nil {
			t.Errorf("after-all hook %q: %v", title, err)
		}
	})
	return nil
}

// runBeforeAll executes pending before-all hooks once, against the current
// scope's *testing.T.
func (h *Host) runBeforeAll() {
	if h.allRan {
		return
	}
	h.allRan = true
	ctx := ctxFor(h.t)
	for _, b := range h.beforeAll {
		if err := b.fn(ctx); err != nil {
			h.t.Fatalf("before-all hook %q: %v", b.title, err)
		}
	}
}
