package quest

import "time"

// Streak counts consecutive calendar days, in now's location, on which at
// least one quest was completed. The run must end today or yesterday.
func Streak(history []Quest, now time.Time) int {
	loc := now.Location()
	days := make(map[string]bool)
	for _, q := range history {
		if q.Status != StatusCompleted || q.CompletedAt == nil {
			continue
		}
		days[dayKey(q.CompletedAt.In(loc))] = true
	}

	day := dayOf(now)
	if !days[dayKey(day)] {
		day = day.AddDate(0, 0, -1)
		if !days[dayKey(day)] {
			return 0
		}
	}

	streak := 0
	for days[dayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CountCompleted returns how many quests in history were completed.
func CountCompleted(history []Quest) int {
	n := 0
	for _, q := range history {
		if q.Status == StatusCompleted {
			n++
		}
	}
	return n
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
