package attendance

import (
	"testing"
	"time"
)

func TestComputeWorkHours(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     string
	}{
		{"full day", at(9, 0), at(17, 30), "8.5"},
		{"early start", at(8, 45), at(17, 0), "8.25"},
		{"rounded up", at(9, 0), time.Date(2024, 3, 4, 9, 7, 30, 0, time.UTC), "0.13"},
		{"equal bounds", at(9, 0), at(9, 0), "0"},
		{"check-out before check-in", at(17, 0), at(9, 0), "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeWorkHours(c.checkIn, c.checkOut)
			if got.String() != c.want {
				t.Errorf("ComputeWorkHours(%s, %s) = %s, want %s",
					c.checkIn.Format("15:04:05"), c.checkOut.Format("15:04:05"), got, c.want)
			}
		})
	}
}

func TestComputeWorkHoursIdempotent(t *testing.T) {
	in, out := at(8, 12), at(16, 48)
	first := ComputeWorkHours(in, out)
	second := ComputeWorkHours(in, out)
	if !first.Equal(second) {
		t.Errorf("ComputeWorkHours not deterministic: %s != %s", first, second)
	}
}
