package gwt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/eykd/gwt-go/gwt"
	"github.com/eykd/gwt-go/gwt/gwttest"
)

// nopScenario is a scenario body that does nothing.
func nopScenario(_ context.Context) error { return nil }

func TestScenario_TitleAndRegistrationPath(t *testing.T) {
	tests := []struct {
		name        string
		register    func(s *gwt.Suite) error
		wantKind    gwttest.Kind
		wantTitle   string
		wantHasFunc bool
	}{
		{
			name: "normal scenario",
			register: func(s *gwt.Suite) error {
				return s.Scenario("User logs in", nopScenario)
			},
			wantKind:    gwttest.KindRun,
			wantTitle:   "Scenario: User logs in",
			wantHasFunc: true,
		},
		{
			name: "normal scenario trims description",
			register: func(s *gwt.Suite) error {
				return s.Scenario("  User logs in ", nopScenario)
			},
			wantKind:    gwttest.KindRun,
			wantTitle:   "Scenario: User logs in",
			wantHasFunc: true,
		},
		{
			name: "tags are appended in order",
			register: func(s *gwt.Suite) error {
				return s.Scenario("User logs in", nopScenario, gwt.Tags("@smoke", "@auth"))
			},
			wantKind:    gwttest.KindRun,
			wantTitle:   "Scenario: User logs in - Tags: @smoke @auth",
			wantHasFunc: true,
		},
		{
			name: "empty tag list adds no suffix",
			register: func(s *gwt.Suite) error {
				return s.Scenario("User logs in", nopScenario, gwt.Tags())
			},
			wantKind:    gwttest.KindRun,
			wantTitle:   "Scenario: User logs in",
			wantHasFunc: true,
		},
		{
			name: "skip prefixes the marker and uses the skip path",
			register: func(s *gwt.Suite) error {
				return s.SkipScenario("Flaky flow", nopScenario)
			},
			wantKind:    gwttest.KindSkip,
			wantTitle:   "[SKIPPED] Scenario: Flaky flow",
			wantHasFunc: true,
		},
		{
			name: "skip with tags puts the marker ahead of everything",
			register: func(s *gwt.Suite) error {
				return s.SkipScenario("Flaky flow", nopScenario, gwt.Tags("@wip"))
			},
			wantKind:    gwttest.KindSkip,
			wantTitle:   "[SKIPPED] Scenario: Flaky flow - Tags: @wip",
			wantHasFunc: true,
		},
		{
			name: "only prefixes the marker and uses the exclusive path",
			register: func(s *gwt.Suite) error {
				return s.OnlyScenario("Focus here", nopScenario)
			},
			wantKind:    gwttest.KindOnly,
			wantTitle:   "[ONLY] Scenario: Focus here",
			wantHasFunc: true,
		},
		{
			name: "todo prefixes the marker and carries no callback",
			register: func(s *gwt.Suite) error {
				return s.TodoScenario("Write this later")
			},
			wantKind:    gwttest.KindTodo,
			wantTitle:   "[TODO] Scenario: Write this later",
			wantHasFunc: false,
		},
		{
			name: "todo accepts tags",
			register: func(s *gwt.Suite) error {
				return s.TodoScenario("Write this later", gwt.Tags("@backlog"))
			},
			wantKind:    gwttest.KindTodo,
			wantTitle:   "[TODO] Scenario: Write this later - Tags: @backlog",
			wantHasFunc: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := gwttest.NewRecorder()
			s := gwt.New(rec)

			if err := tt.register(s); err != nil {
				t.Fatalf("registration failed: %v", err)
			}

			regs := rec.Registrations()
			if len(regs) != 1 {
				t.Fatalf("got %d registrations, want 1", len(regs))
			}
			reg := regs[0]
			if reg.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", reg.Kind, tt.wantKind)
			}
			if reg.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", reg.Title, tt.wantTitle)
			}
			if got := reg.Scenario != nil; got != tt.wantHasFunc {
				t.Errorf("has scenario func = %v, want %v", got, tt.wantHasFunc)
			}
		})
	}
}

func TestScenario_SkipRegistersEvenWhenFuncWouldFail(t *testing.T) {
	rec := gwttest.NewRecorder()
	s := gwt.New(rec)

	boom := func(_ context.Context) error { return errors.New("would fail if executed") }
	if err := s.SkipScenario("Broken flow", boom); err != nil {
		t.Fatalf("SkipScenario: %v", err)
	}

	titles := rec.Titles(gwttest.KindSkip)
	if len(titles) != 1 || titles[0] != "[SKIPPED] Scenario: Broken flow" {
		t.Errorf("skip titles = %v", titles)
	}
}

func TestScenario_MissingFuncIsImmediateConfigurationError(t *testing.T) {
	tests := []struct {
		name     string
		register func(s *gwt.Suite) error
	}{
		{"normal", func(s *gwt.Suite) error { return s.Scenario("No body", nil) }},
		{"skip", func(s *gwt.Suite) error { return s.SkipScenario("No body", nil) }},
		{"only", func(s *gwt.Suite) error { return s.OnlyScenario("No body", nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := gwttest.NewRecorder()
			s := gwt.New(rec)

			err := tt.register(s)
			if !errors.Is(err, gwt.ErrMissingScenarioFunc) {
				t.Fatalf("error = %v, want ErrMissingScenarioFunc", err)
			}
			if n := len(rec.Registrations()); n != 0 {
				t.Errorf("host received %d registrations, want 0", n)
			}
		})
	}
}

func TestScenario_HostResultPassesThroughUnmodified(t *testing.T) {
	hostErr := errors.New("host rejected registration")
	rec := gwttest.NewRecorder()
	rec.FailWith(hostErr)
	s := gwt.New(rec)

	if err := s.Scenario("Any", nopScenario); !errors.Is(err, hostErr) {
		t.Errorf("Scenario error = %v, want the host's error", err)
	}
	if err := s.TodoScenario("Any"); !errors.Is(err, hostErr) {
		t.Errorf("TodoScenario error = %v, want the host's error", err)
	}
}

func TestScenario_RegistrationsShareNoState(t *testing.T) {
	rec := gwttest.NewRecorder()
	s := gwt.New(rec)

	if err := s.Scenario("First", nopScenario, gwt.Tags("@one")); err != nil {
		t.Fatal(err)
	}
	if err := s.Scenario("Second", nopScenario); err != nil {
		t.Fatal(err)
	}

	titles := rec.Titles(gwttest.KindRun)
	want := []string{"Scenario: First - Tags: @one", "Scenario: Second"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}
