package gwt

import (
	"context"
	"fmt"
	"strings"

	"github.com/eykd/gwt-go/internal/label"
)

// Field is one name/value pair of an example record.
type Field struct {
	Name  string
	Value any
}

// Example is one ordered example record for a scenario outline. Order is
// significant: the title rendering follows the fields as given. Records are
// never mutated by this layer.
type Example []Field

// Get returns the value for name and whether the field is present. The
// first field with a matching name wins.
func (e Example) Get(name string) (any, bool) {
	for _, f := range e {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// String renders the record as "name=value" pairs in field order, joined
// with ", ". This is exactly the rendering used in outline titles.
func (e Example) String() string {
	var b strings.Builder
	for i, f := range e {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", f.Name, f.Value)
	}
	return b.String()
}

// OutlineFunc is a scenario-outline body, invoked once per example with
// that example bound.
type OutlineFunc func(ctx context.Context, ex Example) error

// ScenarioOutline expands examples into one scenario registration per
// record, eagerly and in list order, before any test executes. Each
// registration goes to the host's standard primitive under the title
// "Scenario Outline: <title> | <rendering>". An empty example list produces
// zero registrations and a nil error. Identical renderings across examples
// are permitted and produce distinct registrations with identical titles;
// no deduplication happens here. The first host registration failure aborts
// the expansion and is returned.
func (s *Suite) ScenarioOutline(title string, examples []Example, fn OutlineFunc) error {
	if fn == nil && len(examples) > 0 {
		return fmt.Errorf("scenario outline %q: %w", strings.TrimSpace(title), ErrMissingScenarioFunc)
	}

	base := label.Compose(label.Outline, title)
	for _, ex := range examples {
		ex := ex
		composed := base + " | " + ex.String()
		err := s.host.Run(composed, func(ctx context.Context) error {
			return fn(ctx, ex)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
