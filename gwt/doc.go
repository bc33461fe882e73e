// Package gwt gives test authors a Gherkin-style vocabulary (Given, When,
// Then, And, But, Feature, Scenario, ScenarioOutline) over an injected test
// host. Every call composes a human-readable title and forwards it, together
// with the caller's callback, to the host's registration primitives. The
// package performs no parsing of feature files, no scheduling, and no
// execution of its own — suspension, retries, parallelism, and reporting all
// belong to the host.
//
// The host is an explicit collaborator passed to New, so the same suite
// logic runs against the standard library's testing package (package
// gotesting) or against an in-memory recorder (package gwttest):
//
//	func TestLogin(t *testing.T) {
//		s := gwt.New(gotesting.New(t))
//		s.Feature("Authentication", func() {
//			s.Scenario("User logs in", func(ctx context.Context) error {
//				if err := s.Given(ctx, "the user is registered", registerUser); err != nil {
//					return err
//				}
//				return s.Then(ctx, "the dashboard appears", checkDashboard)
//			}, gwt.Tags("@smoke", "@auth"))
//		})
//	}
//
// Titles are pure functions of their inputs: "Given the user is registered",
// "Scenario: User logs in - Tags: @smoke @auth", and so on. The skip, only,
// and todo scenario variants prepend "[SKIPPED] ", "[ONLY] ", and "[TODO] "
// markers and select the matching host registration path.
package gwt
