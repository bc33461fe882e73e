package gwt

// Suite binds the Gherkin vocabulary to one Host. It holds no state beyond
// the host reference: every operation builds fresh title and option values
// from its inputs and forwards them immediately, so registrations never
// share mutable state.
type Suite struct {
	host Host
}

// New creates a Suite that registers every feature, scenario, step, and
// hook against host.
func New(host Host) *Suite {
	return &Suite{host: host}
}
