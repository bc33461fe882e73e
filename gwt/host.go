package gwt

import "context"

// StepFunc is a step body. The context is supplied by the host at run time;
// this layer forwards it opaquely and never inspects its contents.
type StepFunc func(ctx context.Context) error

// ScenarioFunc is a scenario body, invoked by the host when the scenario
// executes.
type ScenarioFunc func(ctx context.Context) error

// GroupFunc registers the nested scenarios and steps of a feature. It runs
// synchronously at registration time and must not await test execution.
type GroupFunc func()

// Host is the boundary to the external test-execution framework.
// Implementations own scheduling, parallelism, retries, skipping, and
// reporting; this layer only hands them composed titles and unmodified
// callbacks. Each method returns the host's registration result, which the
// suite passes back to the caller untouched.
type Host interface {
	// Step registers a named step boundary and executes fn, returning fn's
	// own result (or the host's failure if registration itself fails).
	Step(ctx context.Context, title string, fn StepFunc) error

	// Run registers a scenario for normal execution.
	Run(title string, fn ScenarioFunc) error

	// Skip registers a scenario marked to be skipped at run time. The
	// callback is passed through for introspection but is not expected to
	// execute.
	Skip(title string, fn ScenarioFunc) error

	// Only registers a scenario for exclusive execution. Enforcement of
	// exclusivity is entirely the host's responsibility.
	Only(title string, fn ScenarioFunc) error

	// Todo registers an intentionally-incomplete placeholder. No caller
	// callback is ever associated with it.
	Todo(title string) error

	// Group opens a named grouping and synchronously runs fn to register
	// its nested scenarios. It does not await their execution.
	Group(title string, fn GroupFunc) error

	// BeforeEach registers a hook run before every scenario in scope.
	BeforeEach(title string, fn StepFunc) error

	// AfterEach registers a hook run after every scenario in scope.
	AfterEach(title string, fn StepFunc) error

	// BeforeAll registers a hook run once before the scenarios in scope.
	BeforeAll(title string, fn StepFunc) error

	// AfterAll registers a hook run once after the scenarios in scope.
	AfterAll(title string, fn StepFunc) error
}
