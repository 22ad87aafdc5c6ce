package valueobject

import "testing"

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DateKey
		ok    bool
	}{
		{name: "canonical", input: "2024-03-15", want: DateKey{2024, 3, 15}, ok: true},
		{name: "iso timestamp is truncated", input: "2024-03-15T23:30:00-05:00", want: DateKey{2024, 3, 15}, ok: true},
		{name: "unpadded parts", input: "2024-3-5", want: DateKey{2024, 3, 5}, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "two parts", input: "2024-03", ok: false},
		{name: "letters", input: "2024-ab-01", ok: false},
		{name: "slashes", input: "2024/03/15", ok: false},
		{name: "signed part", input: "2024-+3-15", ok: false},
		{name: "empty part", input: "2024--15", ok: false},
		{name: "leap day", input: "2024-02-29", want: DateKey{2024, 2, 29}, ok: true},
		{name: "month thirteen", input: "2024-13-05", ok: false},
		{name: "day past month end", input: "2024-02-40", ok: false},
		{name: "february 30th", input: "2024-02-30", ok: false},
		{name: "non-leap february 29th", input: "2023-02-29", ok: false},
		{name: "zero month and day", input: "2024-00-00", ok: false},
		{name: "five digit year", input: "10000-01-01", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDateKey(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDateKey(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseDateKey(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidYearMonth(t *testing.T) {
	if !ValidYearMonth(MaxYear, 12) {
		t.Errorf("expected %d-12 to be valid", MaxYear)
	}
	if ValidYearMonth(MaxYear+1, 1) {
		t.Errorf("expected %d-01 to be invalid", MaxYear+1)
	}
	if ValidYearMonth(-1, 1) {
		t.Error("expected negative year to be invalid")
	}
}

func TestFormatDateKey(t *testing.T) {
	if got := FormatDateKey(2024, 3, 5); got != "2024-03-05" {
		t.Errorf("expected 2024-03-05, got %s", got)
	}
	if got := FormatDateKey(987, 12, 31); got != "0987-12-31" {
		t.Errorf("expected 0987-12-31, got %s", got)
	}
}

func TestMonthKey(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		if got := MonthKey("2024-07-31"); got != "2024-07" {
			t.Errorf("expected 2024-07, got %q", got)
		}
	})

	t.Run("unpadded month is padded", func(t *testing.T) {
		if got := MonthKey("2024-7-1"); got != "2024-07" {
			t.Errorf("expected 2024-07, got %q", got)
		}
	})

	t.Run("invalid date yields empty key", func(t *testing.T) {
		if got := MonthKey("not a date"); got != "" {
			t.Errorf("expected empty key, got %q", got)
		}
	})
}

func TestClampDay(t *testing.T) {
	tests := []struct {
		year, month, day, want int
	}{
		{2024, 4, 31, 30},
		{2024, 2, 31, 29},
		{2023, 2, 31, 28},
		{2024, 1, 31, 31},
		{2024, 1, 0, 1},
	}
	for _, tt := range tests {
		if got := ClampDay(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("ClampDay(%d, %d, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestDateKeyAfter(t *testing.T) {
	base := DateKey{2024, 5, 10}
	if !(DateKey{2024, 5, 11}).After(base) {
		t.Error("expected next day to be after base")
	}
	if !(DateKey{2025, 1, 1}).After(base) {
		t.Error("expected next year to be after base")
	}
	if base.After(base) {
		t.Error("a date must not be after itself")
	}
	if (DateKey{2024, 4, 30}).After(base) {
		t.Error("expected previous month not to be after base")
	}
}

func TestParseMonthKey(t *testing.T) {
	tests := []struct {
		in          string
		year, month int
		ok          bool
	}{
		{"2024-03", 2024, 3, true},
		{"2024-12", 2024, 12, true},
		{"2024-13", 0, 0, false},
		{"2024-00", 0, 0, false},
		{"2024-3", 0, 0, false},
		{"2024-03-01", 0, 0, false},
		{"", 0, 0, false},
		{"0000-01", 0, 1, true},
		{"9999-12", 9999, 12, true},
		{"10000-01", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			year, month, ok := ParseMonthKey(tt.in)
			if ok != tt.ok || year != tt.year || month != tt.month {
				t.Errorf("ParseMonthKey(%q) = %d, %d, %v; want %d, %d, %v", tt.in, year, month, ok, tt.year, tt.month, tt.ok)
			}
		})
	}
}
