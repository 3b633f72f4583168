// Package scrape provides the page objects that drive one full
// fetch-extract-build cycle per call and return ordered record sequences.
//
// Each page object moves through Idle, Fetching, Extracting, Building, and
// Done, or jumps to Failed when the fetch layer reports an unrecoverable
// error. Page-level failures abort the call with no partial sequence;
// record-level failures are collected per fragment index and returned
// alongside the records that did build, so callers always see exactly what
// was lost. Page objects hold no shared state: callers wanting concurrent
// scraping run independent instances and own the rate-limiting policy.
package scrape
