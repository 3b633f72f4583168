// Package extract locates the repeating record elements inside a fetched
// page and hands their HTML fragments to the builders.
//
// Each page kind (events, races, results, splits) owns an ordered list of
// container selectors tried in sequence, so the extractor tolerates extra or
// missing wrapper elements around the expected structure. Field values are
// read the same way: an ordered chain of strategies, each with a documented
// precondition, tried until one matches. Finding zero containers is not an
// error; a race may genuinely have no finishers yet.
package extract
