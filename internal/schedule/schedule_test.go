package schedule

import (
	"testing"
	"time"
)

func TestParseDaysRange(t *testing.T) {
	t.Parallel()

	days := ParseDays("Seg a Sex")
	for wd := time.Monday; wd <= time.Friday; wd++ {
		if !days[wd] {
			t.Fatalf("expected %s to be a working day", wd)
		}
	}
	if days[time.Saturday] || days[time.Sunday] {
		t.Fatal("weekend must not be included in Seg a Sex")
	}
}

func TestParseDaysRangeWithFullNames(t *testing.T) {
	t.Parallel()

	days := ParseDays("Segunda a Sexta")
	for wd := time.Monday; wd <= time.Friday; wd++ {
		if !days[wd] {
			t.Fatalf("expected %s to be a working day", wd)
		}
	}
	if len(days) != 5 {
		t.Fatalf("expected 5 working days, got %v", days)
	}
}

func TestParseDaysRangeWrapsAroundWeek(t *testing.T) {
	t.Parallel()

	days := ParseDays("Sex a Seg")
	for _, wd := range []time.Weekday{time.Friday, time.Saturday, time.Sunday, time.Monday} {
		if !days[wd] {
			t.Fatalf("expected %s inside wrapped range", wd)
		}
	}
	for _, wd := range []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday} {
		if days[wd] {
			t.Fatalf("did not expect %s inside wrapped range", wd)
		}
	}
}

func TestParseDaysListWithAccentsAndFullNames(t *testing.T) {
	t.Parallel()

	days := ParseDays("Terça, Quinta e Sábado")
	want := []time.Weekday{time.Tuesday, time.Thursday, time.Saturday}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %v", len(want), days)
	}
	for _, wd := range want {
		if !days[wd] {
			t.Fatalf("expected %s, got %v", wd, days)
		}
	}
}

func TestParseDaysGarbageYieldsEmptySet(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "feriados", "xyz a abc"} {
		if days := ParseDays(raw); len(days) != 0 {
			t.Fatalf("ParseDays(%q) = %v, want empty", raw, days)
		}
	}
}

func TestParseHoursVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want []Interval
	}{
		{"18h às 23h", []Interval{{Start: 18 * 60, End: 23 * 60}}},
		{"18:00 - 22:30", []Interval{{Start: 18 * 60, End: 22*60 + 30}}},
		{"11:30 - 14:00 e 18:00 - 22:00", []Interval{{Start: 11*60 + 30, End: 14 * 60}, {Start: 18 * 60, End: 22 * 60}}},
		{"Das 18h30 às 23h", []Interval{{Start: 18*60 + 30, End: 23 * 60}}},
		{"18 a 22", []Interval{{Start: 18 * 60, End: 22 * 60}}},
		{"18.30 - 22.00", []Interval{{Start: 18*60 + 30, End: 22 * 60}}},
		{"fechado", nil},
		{"", nil},
		{"25:00 - 26:00", nil},
	}

	for _, tt := range tests {
		got := ParseHours(tt.raw)
		if len(got) != len(tt.want) {
			t.Fatalf("ParseHours(%q) = %v, want %v", tt.raw, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("ParseHours(%q)[%d] = %v, want %v", tt.raw, i, got[i], tt.want[i])
			}
		}
	}
}

// Wednesday 2026-09-02 in a fixed zone keeps weekday math deterministic.
func wednesday(hour, minute int) time.Time {
	return time.Date(2026, time.September, 2, hour, minute, 0, 0, time.FixedZone("BRT", -3*3600))
}

func TestIsOpenAt(t *testing.T) {
	t.Parallel()

	s := Parse("Seg a Sex", "18h às 23h")

	if s.IsOpenAt(wednesday(17, 59)) {
		t.Fatal("must be closed before opening")
	}
	if !s.IsOpenAt(wednesday(18, 0)) {
		t.Fatal("must be open at opening time")
	}
	if !s.IsOpenAt(wednesday(23, 0)) {
		t.Fatal("closing minute is inclusive")
	}
	if s.IsOpenAt(wednesday(23, 1)) {
		t.Fatal("must be closed after closing")
	}

	saturday := wednesday(20, 0).AddDate(0, 0, 3)
	if s.IsOpenAt(saturday) {
		t.Fatal("must be closed on non-working day even within hours")
	}
}

func TestIsOpenAtUnparseableInputFailsClosed(t *testing.T) {
	t.Parallel()

	for _, s := range []Schedule{
		Parse("", "18h às 23h"),
		Parse("Seg a Sex", ""),
		Parse("todo dia", "sempre"),
	} {
		if s.IsOpenAt(wednesday(19, 0)) {
			t.Fatalf("schedule %+v must fail closed", s)
		}
	}
}

func TestIsOpenAtOvernightWindow(t *testing.T) {
	t.Parallel()

	s := Parse("Qua", "22h às 02h")

	if !s.IsOpenAt(wednesday(23, 30)) {
		t.Fatal("must be open late on the working day")
	}
	thursdayEarly := wednesday(1, 0).AddDate(0, 0, 1)
	if !s.IsOpenAt(thursdayEarly) {
		t.Fatal("overnight window must extend into the next morning")
	}
	thursdayLate := wednesday(3, 0).AddDate(0, 0, 1)
	if s.IsOpenAt(thursdayLate) {
		t.Fatal("must be closed after the overnight window ends")
	}
	if s.IsOpenAt(wednesday(12, 0)) {
		t.Fatal("must be closed midday")
	}
}

func TestSlotsRespectLeadTime(t *testing.T) {
	t.Parallel()

	s := Parse("Seg a Sex", "18:00 - 20:00")
	now := wednesday(10, 0)

	slots := s.Slots(now, SlotOptions{MinLeadTime: 24 * time.Hour, LookaheadDays: 7})

	if len(slots) == 0 {
		t.Fatal("expected slots within the lookahead window")
	}
	if slots[0].Date == now.Format("02/01/2006") {
		t.Fatalf("today's slots are inside the lead time, got %+v", slots[0])
	}

	minTime := now.Add(24 * time.Hour)
	for _, day := range slots {
		date, err := time.ParseInLocation("02/01/2006 15:04", day.Date+" "+day.Times[0], now.Location())
		if err != nil {
			t.Fatalf("bad slot timestamp %q %q: %v", day.Date, day.Times[0], err)
		}
		if !date.After(minTime) {
			t.Fatalf("slot %s %s is inside the lead time", day.Date, day.Times[0])
		}
	}
}

func TestSlotsStepAndBounds(t *testing.T) {
	t.Parallel()

	s := Parse("Qui", "18:00 - 19:30")
	now := wednesday(10, 0)

	slots := s.Slots(now, SlotOptions{MinLeadTime: time.Hour, LookaheadDays: 7})
	if len(slots) != 1 {
		t.Fatalf("expected a single working day in the window, got %+v", slots)
	}

	want := []string{"18:00", "18:30", "19:00"}
	got := slots[0].Times
	if len(got) != len(want) {
		t.Fatalf("expected times %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected times %v, got %v", want, got)
		}
	}
}

func TestSlotsSubMinuteStepClampedToOneMinute(t *testing.T) {
	t.Parallel()

	s := Parse("Qui", "18:00 - 18:05")
	now := wednesday(10, 0)

	// A step under a minute used to truncate to zero and loop forever.
	slots := s.Slots(now, SlotOptions{MinLeadTime: time.Hour, Step: 30 * time.Second, LookaheadDays: 7})
	if len(slots) != 1 {
		t.Fatalf("expected a single working day in the window, got %+v", slots)
	}

	want := []string{"18:00", "18:01", "18:02", "18:03", "18:04"}
	got := slots[0].Times
	if len(got) != len(want) {
		t.Fatalf("expected times %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected times %v, got %v", want, got)
		}
	}
}

func TestSlotsSkipOvernightIntervals(t *testing.T) {
	t.Parallel()

	s := Parse("Seg a Dom", "22h às 02h")
	if slots := s.Slots(wednesday(10, 0), SlotOptions{MinLeadTime: time.Hour, LookaheadDays: 3}); len(slots) != 0 {
		t.Fatalf("overnight windows must not generate pickup slots, got %+v", slots)
	}
}

func TestSlotsEmptyScheduleYieldsNothing(t *testing.T) {
	t.Parallel()

	s := Parse("", "")
	if slots := s.Slots(wednesday(10, 0), SlotOptions{}); len(slots) != 0 {
		t.Fatalf("expected no slots, got %+v", slots)
	}
}
