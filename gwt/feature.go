package gwt

import "github.com/eykd/gwt-go/internal/label"

// Feature opens a named grouping titled "Feature: <description>" and
// forwards fn to the host's grouping primitive. fn runs synchronously and
// only registers nested scenarios; execution of those scenarios is driven
// later by the host.
func (s *Suite) Feature(description string, fn GroupFunc) error {
	return s.host.Group(label.Compose(label.Feature, description), fn)
}
