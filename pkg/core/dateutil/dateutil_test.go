package dateutil

import (
	"testing"
	"time"
)

func TestAddMonths(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		k    int
		want time.Time
	}{
		{
			name: "same year forward",
			in:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			k:    2,
			want: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "rolls into next year",
			in:   time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
			k:    3,
			want: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "leap year clamp",
			in:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			k:    1,
			want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non-leap year clamp",
			in:   time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC),
			k:    1,
			want: time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "negative k",
			in:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			k:    -4,
			want: time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "zero k is identity",
			in:   time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			k:    0,
			want: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AddMonths(tc.in, tc.k)
			if !got.Equal(tc.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tc.in, tc.k, got, tc.want)
			}
		})
	}
}

func TestLastDayOfMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{1900, 2, 28}, // divisible by 100, not 400
		{2000, 2, 29}, // divisible by 400
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, tc := range cases {
		if got := lastDayOfMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("lastDayOfMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}
