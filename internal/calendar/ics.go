// Package calendar generates iCalendar (.ics) entries for scraped events so
// a season's schedule can be imported into a calendar application.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/mtbdata/mtb-results/internal/record"
)

// GenerateICS renders one event as an all-day VEVENT spanning its date range.
func GenerateICS(evt *record.Event) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//MTB Results//mtb-results//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("BEGIN:VEVENT\r\n")

	ics.WriteString(fmt.Sprintf("UID:%s@mtb-results\r\n", evt.ID))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", time.Now().UTC().Format("20060102T150405Z")))

	// All-day span; DTEND is exclusive per RFC 5545.
	ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", evt.StartDate.Format("20060102")))
	ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", evt.EndDate.AddDate(0, 0, 1).Format("20060102")))

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(evt.Name)))

	description := evt.Location
	if len(evt.Disciplines) > 0 {
		description = fmt.Sprintf("%s\nDisciplines: %s", description, strings.Join(evt.Disciplines, ", "))
	}
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))
	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(evt.Location)))

	if evt.RacesURL != "" {
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", evt.RacesURL))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")
	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// escapeICS escapes special characters per RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
