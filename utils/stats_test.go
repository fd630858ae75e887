package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("first average = %v", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("gen/sec = %v", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 {
		t.Fatalf("moving average = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("zero duration changed gen/sec to %v", s.GenerationsPerSecond)
	}
	if s.TotalGenerations != 2 {
		t.Fatalf("total generations = %d", s.TotalGenerations)
	}
}
