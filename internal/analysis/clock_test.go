package analysis

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "23:59", want: 1439},
		{in: "9:05", want: 545},
		{in: "09:5", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "one hour", start: "09:00", end: "10:00", want: 60},
		{name: "wraps past midnight", start: "23:30", end: "00:30", want: 60},
		{name: "overnight", start: "22:00", end: "06:00", want: 480},
		{name: "zero length", start: "10:00", end: "10:00", want: 0},
		{name: "malformed start", start: "ten", end: "10:00", want: 0},
		{name: "malformed end", start: "10:00", end: "25:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.start, tt.end); got != tt.want {
				t.Errorf("Duration(%q, %q) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[string]string{
		"09:00": "9:00 AM",
		"13:05": "1:05 PM",
		"00:00": "12:00 AM",
		"12:30": "12:30 PM",
		"bogus": "bogus",
	}

	for in, want := range tests {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		0:   "0 min",
		45:  "45 min",
		60:  "1 hour",
		61:  "1 hour 1 min",
		120: "2 hours",
		135: "2 hours 15 min",
	}

	for in, want := range tests {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestMinutesToClock(t *testing.T) {
	tests := map[int]string{
		0:    "00:00",
		545:  "09:05",
		1470: "00:30",
		-30:  "23:30",
	}

	for in, want := range tests {
		if got := MinutesToClock(in); got != want {
			t.Errorf("MinutesToClock(%d) = %q, want %q", in, got, want)
		}
	}
}
