// Package build assembles typed records from extracted HTML fragments.
//
// Each builder maps one fragment to one record, reading fields through the
// extractor's ordered strategy chains and coercing text with the normalize
// package. A fragment missing a field the record cannot be used without (a
// detail URL, a rider name) yields an *IncompleteRecordError; a mandatory
// field that is present but unparseable yields a *normalize.FormatError.
// Both are scoped to the single record, so one malformed fragment never
// aborts the rest of the page.
package build
