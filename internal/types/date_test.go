package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid iso date",
			input: "2025-04-25",
			want:  NewDate(2025, time.April, 25),
		},
		{
			name:    "wrong format",
			input:   "25/04/2025",
			wantErr: true,
		},
		{
			name:    "datetime not accepted",
			input:   "2025-04-25T00:00:00Z",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateComparison(t *testing.T) {
	earlier := MustParseDate("2025-04-29")
	later := MustParseDate("2025-05-01")

	if !earlier.Before(later) {
		t.Error("expected earlier.Before(later)")
	}
	if later.Before(earlier) {
		t.Error("did not expect later.Before(earlier)")
	}
	if earlier.Before(earlier) {
		t.Error("a date is not before itself")
	}
	if !later.After(earlier) {
		t.Error("expected later.After(earlier)")
	}
}

func TestDateAddDays(t *testing.T) {
	d := MustParseDate("2025-04-01")
	if got := d.AddDays(30).String(); got != "2025-05-01" {
		t.Errorf("AddDays(30) = %s, want 2025-05-01", got)
	}
}

func TestDateMedium(t *testing.T) {
	d := MustParseDate("2025-04-25")
	if got := d.Medium(); got != "Apr 25, 2025" {
		t.Errorf("Medium() = %s, want Apr 25, 2025", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustParseDate("2025-04-25")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-04-25"` {
		t.Errorf("marshal = %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip mismatch: %v != %v", back, d)
	}
}

func TestDateUnmarshalEmpty(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`""`), &d); err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Error("expected zero date for empty string")
	}
}
