// Package chore holds the derived display logic for chore lists and the chi
// meter: ordering, element filtering, overdue detection, and goal progress.
// Nothing here is stored; views recompute it from the raw records.
package chore

import (
	"sort"
	"time"

	"github.com/nelld28/chorebender/internal/model"
)

// DefaultChiGoal is the weekly chi goal the progress meter measures against.
const DefaultChiGoal = 2000

// Sort orders chores for display: incomplete before completed, then by due
// date ascending. The sort is stable, so chores with equal keys keep their
// relative insertion order.
func Sort(chores []model.Chore) {
	sort.SliceStable(chores, func(i, j int) bool {
		a, b := chores[i], chores[j]
		if a.IsCompleted != b.IsCompleted {
			return !a.IsCompleted
		}
		return a.DueDate.Before(b.DueDate)
	})
}

// FilterByElement returns the chores tagged with the given element.
func FilterByElement(chores []model.Chore, element model.Element) []model.Chore {
	var out []model.Chore
	for _, c := range chores {
		if c.ElementType == element {
			out = append(out, c)
		}
	}
	return out
}

// Overdue reports whether an incomplete chore's due date has passed. Due
// dates have day granularity, so a chore due today is not yet overdue.
// Overdue is derived for display only; it is never stored.
func Overdue(c model.Chore, now time.Time) bool {
	if c.IsCompleted {
		return false
	}
	return startOfDay(c.DueDate).Before(startOfDay(now))
}

// ChiProgress returns the percentage of the chi goal reached, clamped to
// [0, 100]. A non-positive goal falls back to DefaultChiGoal.
func ChiProgress(chi, goal int) float64 {
	if goal <= 0 {
		goal = DefaultChiGoal
	}
	pct := float64(chi) / float64(goal) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
