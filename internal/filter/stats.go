package filter

import "taskflow/internal/service"

// Stats holds the per-bucket counts shown above the board.
type Stats struct {
	Total      int
	Completed  int
	InProgress int
	Pending    int
	Overdue    int
}

// ComputeStats counts tasks per status plus those overdue on today.
func ComputeStats(tasks []service.Task, today string) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case service.StatusCompleted:
			s.Completed++
		case service.StatusInProgress:
			s.InProgress++
		case service.StatusPending:
			s.Pending++
		}
		if t.IsOverdue(today) {
			s.Overdue++
		}
	}
	return s
}
