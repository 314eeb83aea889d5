package utility

import (
	"testing"
	"time"

	"github.com/kbukum/streamkit/errors"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAsDate_String(t *testing.T) {
	cases := []string{"2020-03-15", "2020/03/15", "15-03-2020", "2020-03-15 10:30:00"}
	want := day(2020, time.March, 15)
	for _, c := range cases {
		got, err := AsDate(c)
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		if !got.Equal(want) {
			t.Errorf("%s: got %v, want %v", c, got, want)
		}
	}
}

func TestAsDate_Time(t *testing.T) {
	in := time.Date(2020, time.March, 15, 18, 45, 0, 0, time.UTC)
	got, err := AsDate(in)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(day(2020, time.March, 15)) {
		t.Errorf("got %v, want midnight", got)
	}
}

func TestAsDate_Invalid(t *testing.T) {
	if _, err := AsDate("not a date"); errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	if _, err := AsDate(42); errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT for int, got %v", err)
	}
}

func TestDateRange_Inclusive(t *testing.T) {
	got, err := DateRange("2020-01-01", "2020-01-04", true, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 || !got[0].Equal(day(2020, time.January, 1)) || !got[3].Equal(day(2020, time.January, 4)) {
		t.Errorf("got %v", got)
	}
}

func TestDateRange_Exclusive(t *testing.T) {
	got, err := DateRange("2020-01-01", "2020-01-04", false, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || !got[2].Equal(day(2020, time.January, 3)) {
		t.Errorf("got %v", got)
	}
}

func TestDateRange_Interval(t *testing.T) {
	got, err := DateRange("2020-01-01", "2020-01-10", true, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []time.Time{day(2020, time.January, 1), day(2020, time.January, 4), day(2020, time.January, 7), day(2020, time.January, 10)}
	if len(got) != len(want) {
		t.Fatalf("got %d dates, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDateRange_Invalid(t *testing.T) {
	if _, err := DateRange("2020-01-05", "2020-01-01", true, 1); errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT for reversed range, got %v", err)
	}
	if _, err := DateRange("2020-01-01", "2020-01-01", false, 1); errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT for empty exclusive range, got %v", err)
	}
	if _, err := DateRange("2020-01-01", "2020-01-02", true, 0); errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT for zero interval, got %v", err)
	}
}

func TestDateStream(t *testing.T) {
	s, err := DateStream("2020-01-01", "2020-01-03", true, 1)
	if err != nil {
		t.Fatal(err)
	}
	got := s.Limit(2).AsSeq()
	if len(got) != 2 || !got[1].Equal(day(2020, time.January, 2)) {
		t.Errorf("got %v", got)
	}
}
