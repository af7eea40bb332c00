package calendar

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Weekday
		wantErr bool
	}{
		{"Monday", "Monday", Monday, false},
		{"Wednesday", "Wednesday", Wednesday, false},
		{"Sunday", "Sunday", Sunday, false},
		{"Lowercase rejected", "monday", 0, true},
		{"Abbreviation rejected", "Mon", 0, true},
		{"Padded rejected", " Friday", 0, true},
		{"Empty string", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWeekday) {
					t.Errorf("ParseWeekday(%q) error = %v, want ErrInvalidWeekday", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeekday_RoundTrip(t *testing.T) {
	for _, w := range AllWeekdays() {
		parsed, err := ParseWeekday(w.String())
		if err != nil {
			t.Fatalf("ParseWeekday(%q) error = %v", w.String(), err)
		}
		if parsed != w || parsed.String() != w.String() {
			t.Errorf("round trip of %v produced %v", w, parsed)
		}
	}
}

func TestWeekday_Order(t *testing.T) {
	days := AllWeekdays()
	for i := 1; i < len(days); i++ {
		if days[i-1] >= days[i] {
			t.Errorf("%v should sort before %v", days[i-1], days[i])
		}
	}
}

func TestWeekdayFromTime(t *testing.T) {
	tests := []struct {
		input time.Weekday
		want  Weekday
	}{
		{time.Monday, Monday},
		{time.Tuesday, Tuesday},
		{time.Wednesday, Wednesday},
		{time.Thursday, Thursday},
		{time.Friday, Friday},
		{time.Saturday, Saturday},
		{time.Sunday, Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.input.String(), func(t *testing.T) {
			if got := WeekdayFromTime(tt.input); got != tt.want {
				t.Errorf("WeekdayFromTime(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeekday_JSONMapKey(t *testing.T) {
	data, err := json.Marshal(map[Weekday]int{Friday: 4})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"Friday":4}` {
		t.Errorf("json.Marshal() = %s, want {\"Friday\":4}", data)
	}

	var decoded map[Weekday]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded[Friday] != 4 {
		t.Errorf("decoded[Friday] = %d, want 4", decoded[Friday])
	}
}

func TestWeekdaySet(t *testing.T) {
	set := NewWeekdaySet(Friday, Monday, Friday)

	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
	if !set.Has(Monday) || !set.Has(Friday) || set.Has(Sunday) {
		t.Errorf("unexpected membership in %v", set)
	}

	got := set.Weekdays()
	if len(got) != 2 || got[0] != Monday || got[1] != Friday {
		t.Errorf("Weekdays() = %v, want [Monday Friday]", got)
	}

	extended := set.With(Sunday)
	if set.Has(Sunday) {
		t.Error("With() mutated the original set")
	}
	if !extended.Has(Sunday) {
		t.Error("With() result is missing Sunday")
	}
}

func TestWeekdaySet_FlagValue(t *testing.T) {
	var set WeekdaySet

	for _, v := range []string{"Tuesday", "Saturday", "Tuesday"} {
		if err := set.Set(v); err != nil {
			t.Fatalf("Set(%q) error = %v", v, err)
		}
	}
	if err := set.Set("Caturday"); !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("Set(Caturday) error = %v, want ErrInvalidWeekday", err)
	}

	if set.String() != "[Tuesday Saturday]" {
		t.Errorf("String() = %q, want [Tuesday Saturday]", set.String())
	}
	if set.Type() != "weekday" {
		t.Errorf("Type() = %q", set.Type())
	}
}
