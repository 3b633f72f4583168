package normalize

import (
	"errors"
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text    string
		want    time.Duration
		wantNil bool
		wantErr bool
	}{
		{text: "1:02:03.400", want: 3723*time.Second + 400*time.Millisecond},
		{text: "3:12.480", want: 192*time.Second + 480*time.Millisecond},
		{text: "48.910", want: 48*time.Second + 910*time.Millisecond},
		{text: "+1.720", want: 1*time.Second + 720*time.Millisecond},
		{text: "+1:36.550", want: 96*time.Second + 550*time.Millisecond},
		{text: "  2:00:00.000 ", want: 2 * time.Hour},
		{text: "42", want: 42 * time.Second},
		{text: "DNF", wantNil: true},
		{text: "dns", wantNil: true},
		{text: "—", wantNil: true},
		{text: "-", wantNil: true},
		{text: "", wantNil: true},
		{text: "abc", wantErr: true},
		{text: "1:2:3:4", wantErr: true},
		{text: "-5.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseDuration(tt.text)
			if tt.wantErr {
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("ParseDuration(%q) error = %v, want *FormatError", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDuration(%q) unexpected error: %v", tt.text, err)
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseDuration(%q) = %v, want nil", tt.text, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseDuration(%q) = nil, want %v", tt.text, tt.want)
			}
			if *got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.text, *got, tt.want)
			}
		})
	}
}

func TestFormatDurationRoundTrip(t *testing.T) {
	tests := []struct {
		text      string
		canonical string
	}{
		{"1:02:03.400", "1:02:03.400"},
		{"3:12.480", "0:03:12.480"},
		{"48.910", "0:00:48.910"},
		{"2:00:00.000", "2:00:00.000"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, err := ParseDuration(tt.text)
			if err != nil || d == nil {
				t.Fatalf("ParseDuration(%q) = %v, %v", tt.text, d, err)
			}
			if got := FormatDuration(*d); got != tt.canonical {
				t.Errorf("FormatDuration(ParseDuration(%q)) = %q, want %q", tt.text, got, tt.canonical)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		text    string
		want    time.Time
		wantErr bool
	}{
		{text: "13 Jul 2025", want: time.Date(2025, time.July, 13, 0, 0, 0, 0, time.UTC)},
		{text: "2 May 2025", want: time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)},
		{text: "16 May 2025", want: time.Date(2025, time.May, 16, 0, 0, 0, 0, time.UTC)},
		{text: "2025-05-16", want: time.Date(2025, time.May, 16, 0, 0, 0, 0, time.UTC)},
		{text: "not a date", wantErr: true},
		{text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseDate(tt.text)
			if tt.wantErr {
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("ParseDate(%q) error = %v, want *FormatError", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.text, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		text      string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			text:      "16 - 18 May 2025",
			wantStart: time.Date(2025, time.May, 16, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.May, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			text:      "31 May - 1 Jun 2025",
			wantStart: time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			text:      "31 Dec 2024 - 2 Jan 2025",
			wantStart: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			text:      "13 Jul 2025",
			wantStart: time.Date(2025, time.July, 13, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.July, 13, 0, 0, 0, 0, time.UTC),
		},
		{text: "never - ever", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			start, end, err := ParseDateRange(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDateRange(%q) expected error, got %v, %v", tt.text, start, end)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateRange(%q) unexpected error: %v", tt.text, err)
			}
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("ParseDateRange(%q) = %v, %v, want %v, %v", tt.text, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantNil bool
		wantErr bool
	}{
		{text: "42", want: 42},
		{text: " 7 ", want: 7},
		{text: "1st", want: 1},
		{text: "23rd", want: 23},
		{text: "2nd", want: 2},
		{text: "10.", want: 10},
		{text: "1,250", want: 1250},
		{text: "DNF", wantNil: true},
		{text: "—", wantNil: true},
		{text: "", wantNil: true},
		{text: "first", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseInteger(tt.text)
			if tt.wantErr {
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("ParseInteger(%q) error = %v, want *FormatError", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInteger(%q) unexpected error: %v", tt.text, err)
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseInteger(%q) = %d, want nil", tt.text, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("ParseInteger(%q) = %v, want %d", tt.text, got, tt.want)
			}
		})
	}
}
