package cli

import "testing"

func TestSparkline(t *testing.T) {
	tests := []struct {
		name       string
		cumulative []int
		total      int
		want       string
	}{
		{
			name:       "rising curve",
			cumulative: []int{5, 15, 30, 50},
			total:      50,
			want:       "▁▂▄█",
		},
		{
			name:       "start node only",
			cumulative: []int{1},
			total:      50,
			want:       "▁",
		},
		{
			name:       "everyone at once",
			cumulative: []int{50},
			total:      50,
			want:       "█",
		},
		{
			name:       "reach above total is clamped",
			cumulative: []int{10},
			total:      5,
			want:       "█",
		},
		{
			name:       "no steps",
			cumulative: nil,
			total:      50,
			want:       "",
		},
		{
			name:       "zero total",
			cumulative: []int{1, 2},
			total:      0,
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sparkline(tt.cumulative, tt.total); got != tt.want {
				t.Errorf("sparkline(%v, %d) = %q, want %q", tt.cumulative, tt.total, got, tt.want)
			}
		})
	}
}

func TestSparklineLength(t *testing.T) {
	cumulative := []int{1, 3, 9, 20, 35, 48, 50}
	line := sparkline(cumulative, 50)
	if got := len([]rune(line)); got != len(cumulative) {
		t.Errorf("sparkline length = %d, want %d", got, len(cumulative))
	}
}

func TestSparklineMonotonic(t *testing.T) {
	line := []rune(sparkline([]int{1, 5, 12, 25, 40, 50}, 50))

	last := -1
	for i, r := range line {
		level := -1
		for j, lv := range sparkLevels {
			if lv == r {
				level = j
			}
		}
		if level < 0 {
			t.Fatalf("bar %d is not a spark level: %q", i, r)
		}
		if level < last {
			t.Errorf("bar %d dropped below the previous bar in %q", i, string(line))
		}
		last = level
	}
}
