package model

import (
	"fmt"
	"math"
)

type Progress struct {
	Completed int
	Total     int
	Percent   int
}

// ComputePercentage returns round(100*completed/total), or 0 when total is 0.
func ComputePercentage(tasks map[string]bool, total int) int {
	if total <= 0 {
		return 0
	}
	return percent(countDone(tasks), total)
}

// ProgressFor reports progress over the checklist ids. Stored ids outside the
// checklist are ignored.
func ProgressFor(tasks map[string]bool, ids []string) Progress {
	tracked := make(map[string]bool, len(ids))
	for _, id := range ids {
		tracked[id] = tasks[id]
	}
	return Progress{
		Completed: countDone(tracked),
		Total:     len(ids),
		Percent:   ComputePercentage(tracked, len(ids)),
	}
}

func (p Progress) Ratio() float64 {
	return float64(p.Percent) / 100
}

func (p Progress) Bar() string {
	return fmt.Sprintf("%d%%", p.Percent)
}

func (p Progress) Label() string {
	return fmt.Sprintf("%d%% (%d/%d)", p.Percent, p.Completed, p.Total)
}

func countDone(tasks map[string]bool) int {
	n := 0
	for _, done := range tasks {
		if done {
			n++
		}
	}
	return n
}

func percent(done, total int) int {
	pct := int(math.Round(float64(done) / float64(total) * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
