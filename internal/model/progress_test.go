package model

import (
	"math"
	"testing"
)

func TestComputePercentageMatchesRoundedRatio(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for completed := 0; completed <= total; completed++ {
			tasks := make(map[string]bool, total)
			for i := 0; i < total; i++ {
				tasks[string(rune('a'+i))] = i < completed
			}
			want := int(math.Round(100 * float64(completed) / float64(total)))
			if got := ComputePercentage(tasks, total); got != want {
				t.Fatalf("ComputePercentage(%d/%d) = %d, want %d", completed, total, got, want)
			}
		}
	}
}

func TestComputePercentageZeroTotal(t *testing.T) {
	if got := ComputePercentage(map[string]bool{"1": true}, 0); got != 0 {
		t.Fatalf("expected 0 for empty checklist, got %d", got)
	}
}

func TestComputePercentageClampsStaleIDs(t *testing.T) {
	tasks := map[string]bool{"1": true, "2": true, "3": true, "4": true, "legacy": true}
	if got := ComputePercentage(tasks, 4); got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
}

func TestProgressLabels(t *testing.T) {
	tasks := map[string]bool{"1": false, "2": true, "3": true, "4": false}
	p := ProgressFor(tasks, DefaultTaskIDs)
	if p.Percent != 50 {
		t.Fatalf("expected 50 percent, got %d", p.Percent)
	}
	if p.Bar() != "50%" {
		t.Fatalf("unexpected bar text: %q", p.Bar())
	}
	if p.Label() != "50% (2/4)" {
		t.Fatalf("unexpected label: %q", p.Label())
	}
}

func TestProgressForEmptyChecklist(t *testing.T) {
	p := ProgressFor(map[string]bool{}, nil)
	if p.Label() != "0% (0/0)" {
		t.Fatalf("unexpected label: %q", p.Label())
	}
}

func TestProgressForIgnoresStaleIDs(t *testing.T) {
	tasks := map[string]bool{"1": false, "2": true, "3": false, "4": false, "legacy": true}
	p := ProgressFor(tasks, DefaultTaskIDs)
	if p.Completed != 1 {
		t.Fatalf("expected 1 completed, got %d", p.Completed)
	}
	if p.Label() != "25% (1/4)" {
		t.Fatalf("unexpected label: %q", p.Label())
	}

	all := map[string]bool{"1": true, "2": true, "3": true, "4": true, "legacy": true}
	if got := ProgressFor(all, DefaultTaskIDs).Label(); got != "100% (4/4)" {
		t.Fatalf("unexpected label: %q", got)
	}
}
