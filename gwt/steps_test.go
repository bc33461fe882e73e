package gwt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/eykd/gwt-go/gwt"
	"github.com/eykd/gwt-go/gwt/gwttest"
)

// nopStep is a step body that does nothing.
func nopStep(_ context.Context) error { return nil }

func TestSteps_KeywordPrefixes(t *testing.T) {
	tests := []struct {
		name     string
		register func(s *gwt.Suite, ctx context.Context) error
		want     string
	}{
		{
			name: "given",
			register: func(s *gwt.Suite, ctx context.Context) error {
				return s.Given(ctx, "  the user is logged in ", nopStep)
			},
			want: "Given the user is logged in",
		},
		{
			name: "when",
			register: func(s *gwt.Suite, ctx context.Context) error {
				return s.When(ctx, "the form is submitted", nopStep)
			},
			want: "When the form is submitted",
		},
		{
			name: "then",
			register: func(s *gwt.Suite, ctx context.Context) error {
				return s.Then(ctx, "the dashboard appears", nopStep)
			},
			want: "Then the dashboard appears",
		},
		{
			name: "and",
			register: func(s *gwt.Suite, ctx context.Context) error {
				return s.And(ctx, "a toast is shown", nopStep)
			},
			want: "And a toast is shown",
		},
		{
			name: "but",
			register: func(s *gwt.Suite, ctx context.Context) error {
				return s.But(ctx, "no email is sent", nopStep)
			},
			want: "But no email is sent",
		},
		{
			name: "bare step has no keyword",
			register: func(s *gwt.Suite, ctx context.Context) error {
				return s.Step(ctx, "  raw step text ", nopStep)
			},
			want: "raw step text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := gwttest.NewRecorder()
			s := gwt.New(rec)

			if err := tt.register(s, context.Background()); err != nil {
				t.Fatalf("step returned error: %v", err)
			}

			titles := rec.Titles(gwttest.KindStep)
			if len(titles) != 1 || titles[0] != tt.want {
				t.Errorf("step titles = %v, want [%q]", titles, tt.want)
			}
		})
	}
}

func TestSteps_CallbackErrorPropagatesUnchanged(t *testing.T) {
	stepErr := errors.New("assertion failed")
	rec := gwttest.NewRecorder()
	s := gwt.New(rec)

	err := s.Then(context.Background(), "the balance is zero", func(_ context.Context) error {
		return stepErr
	})
	if !errors.Is(err, stepErr) {
		t.Errorf("error = %v, want the step's own error, untranslated", err)
	}
}

func TestSteps_CallbackRunsThroughTheHost(t *testing.T) {
	rec := gwttest.NewRecorder()
	s := gwt.New(rec)

	ran := false
	err := s.When(context.Background(), "something happens", func(_ context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("step callback did not run")
	}
}

func TestSteps_NestedStepsKeepIndependentTitles(t *testing.T) {
	rec := gwttest.NewRecorder()
	s := gwt.New(rec)
	ctx := context.Background()

	err := s.Given(ctx, "an outer precondition", func(ctx context.Context) error {
		return s.And(ctx, "an inner detail", nopStep)
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Then(ctx, "a sibling step", nopStep); err != nil {
		t.Fatal(err)
	}

	titles := rec.Titles(gwttest.KindStep)
	want := []string{
		"Given an outer precondition",
		"And an inner detail",
		"Then a sibling step",
	}
	if len(titles) != len(want) {
		t.Fatalf("step titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}
