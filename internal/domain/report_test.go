package domain

import (
	"testing"
	"time"
)

func TestQuarterOf(t *testing.T) {
	cases := []struct {
		month time.Month
		want  int
	}{
		{time.January, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.September, 3},
		{time.October, 4},
		{time.December, 4},
	}
	for _, tc := range cases {
		got := QuarterOf(time.Date(2021, tc.month, 15, 10, 0, 0, 0, time.UTC))
		if got != tc.want {
			t.Errorf("QuarterOf(%s) = %d, want %d", tc.month, got, tc.want)
		}
	}
}
