// Package normalize converts raw fragment text into typed values.
//
// All functions are pure. Placeholder text on optional fields (DNF, em-dash,
// empty cells) yields a nil value and no error; text that is neither a valid
// value nor a recognized placeholder yields a *FormatError. Duration values
// cover the site's H:MM:SS.sss, MM:SS.sss, and "+gap" notations, and dates
// cover the single-day and day-range formats used on event listings.
package normalize
