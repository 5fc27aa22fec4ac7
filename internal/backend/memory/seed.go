package memory

import "taskflow/internal/service"

// SeedTasks returns the sample tasks a fresh board starts with.
func SeedTasks() []service.Task {
	return []service.Task{
		{
			ID:          1,
			Title:       "Complete project documentation",
			Description: "Write comprehensive documentation for the todo app project",
			Priority:    service.PriorityHigh,
			Status:      service.StatusInProgress,
			DueDate:     "2025-07-07",
			AssignedTo:  "john@example.com",
			CreatedAt:   "2025-07-05",
			Tags:        []string{"work", "documentation"},
		},
		{
			ID:          2,
			Title:       "Review pull requests",
			Description: "Review and merge pending pull requests from team members",
			Priority:    service.PriorityMedium,
			Status:      service.StatusPending,
			DueDate:     "2025-07-06",
			AssignedTo:  "jane@example.com",
			CreatedAt:   "2025-07-04",
			Tags:        []string{"code-review", "teamwork"},
		},
		{
			ID:          3,
			Title:       "Design system updates",
			Description: "Update the design system with new color palette and components",
			Priority:    service.PriorityLow,
			Status:      service.StatusCompleted,
			DueDate:     "2025-07-08",
			AssignedTo:  "designer@example.com",
			CreatedAt:   "2025-07-03",
			Tags:        []string{"design", "ui"},
		},
	}
}
