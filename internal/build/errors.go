package build

import "fmt"

// IncompleteRecordError reports a fragment missing a field the record is
// unusable without. The fragment is skipped and recorded in the page's
// failure list; sibling fragments are unaffected.
type IncompleteRecordError struct {
	Record string
	Field  string
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("incomplete %s record: missing %s", e.Record, e.Field)
}
