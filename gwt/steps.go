package gwt

import (
	"context"
	"strings"

	"github.com/eykd/gwt-go/internal/label"
)

// Given registers a "Given <description>" step and executes fn through the
// host's step primitive. The host's result — typically fn's own result — is
// returned unmodified; this layer performs no error translation.
func (s *Suite) Given(ctx context.Context, description string, fn StepFunc) error {
	return s.host.Step(ctx, label.Compose(label.Given, description), fn)
}

// When registers a "When <description>" step. See Given.
func (s *Suite) When(ctx context.Context, description string, fn StepFunc) error {
	return s.host.Step(ctx, label.Compose(label.When, description), fn)
}

// Then registers a "Then <description>" step. See Given.
func (s *Suite) Then(ctx context.Context, description string, fn StepFunc) error {
	return s.host.Step(ctx, label.Compose(label.Then, description), fn)
}

// And registers an "And <description>" step. See Given.
func (s *Suite) And(ctx context.Context, description string, fn StepFunc) error {
	return s.host.Step(ctx, label.Compose(label.And, description), fn)
}

// But registers a "But <description>" step. See Given.
func (s *Suite) But(ctx context.Context, description string, fn StepFunc) error {
	return s.host.Step(ctx, label.Compose(label.But, description), fn)
}

// Step registers a bare step: the description is forwarded with only
// whitespace trimming, no keyword.
func (s *Suite) Step(ctx context.Context, description string, fn StepFunc) error {
	return s.host.Step(ctx, strings.TrimSpace(description), fn)
}
