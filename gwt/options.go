package gwt

// Option configures a scenario registration.
type Option func(*options)

// options is the resolved option record for one scenario registration.
type options struct {
	tags []string
}

// Tags attaches ordered tag strings to a scenario. When at least one tag is
// present the scenario title gains a " - Tags: " suffix with the tags joined
// by single spaces, in the order given here. Repeated Tags options append.
func Tags(tags ...string) Option {
	return func(o *options) {
		o.tags = append(o.tags, tags...)
	}
}

// resolveOptions applies opts to a zero options record.
func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
