package persistence

import "github.com/spec-kit/todo-dashboard/internal/domain"

// Built-in seed dataset returned when a collection key is absent from the
// store. First-run behavior, not an error.

// SeedUsers returns the default account collection.
func SeedUsers() domain.Users {
	return domain.Users{
		{
			ID:        1,
			Name:      "Fawaz Ahmed",
			Email:     "fawaz@greedygame.com",
			Avatar:    domain.DefaultAvatarURL,
			Role:      domain.RoleSuperuser,
			LastLogin: "18/09/2023 18:00",
			IsActive:  true,
		},
		{
			ID:        2,
			Name:      "Prashant",
			Email:     "prashant@greedygame.com",
			Avatar:    "https://images.unsplash.com/photo-1519244703995-f4e0f30006d5?ixlib=rb-4.0.3&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			Role:      domain.RoleUser,
			LastLogin: "17/09/2023 15:30",
			IsActive:  true,
		},
		{
			ID:        3,
			Name:      "Rahul Singh",
			Email:     "rahul@greedygame.com",
			Avatar:    "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?ixlib=rb-4.0.3&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			Role:      domain.RoleUser,
			LastLogin: "16/09/2023 12:45",
			IsActive:  false,
		},
	}
}

// SeedTodos returns the default task collection.
func SeedTodos() domain.Todos {
	return domain.Todos{
		{
			ID:          1,
			Title:       "Submit project report",
			Description: "Finalize and submit the quarterly project report to the manager by 3:00 PM.",
			DueDate:     "16/09/2023",
			DueTime:     "18:00",
			Status:      domain.TodoStatusCompleted,
			UserID:      1,
			CreatedAt:   "15/09/2023 10:00",
		},
		{
			ID:          2,
			Title:       "Team stand-up meeting",
			Description: "Attend the daily standup with the product team on Zoom.",
			DueDate:     "01/08/2025",
			DueTime:     "14:00",
			Status:      domain.TodoStatusPending,
			UserID:      1,
			CreatedAt:   "01/08/2025 08:00",
		},
		{
			ID:          3,
			Title:       "Client follow-up email",
			Description: "Follow up with the client regarding the new quarterly project contract.",
			DueDate:     "01/08/2025",
			DueTime:     "15:30",
			Status:      domain.TodoStatusPending,
			UserID:      1,
			CreatedAt:   "01/08/2025 14:00",
		},
		{
			ID:          4,
			Title:       "Review pull requests",
			Description: "Check and review the pending pull requests on GitHub before EOD.",
			DueDate:     "16/09/2023",
			DueTime:     "18:00",
			Status:      domain.TodoStatusCompleted,
			UserID:      1,
			CreatedAt:   "16/09/2023 09:00",
		},
		{
			ID:          5,
			Title:       "Buy groceries",
			Description: "Get groceries like vegetables, milk, and bread from the nearby supermarket.",
			DueDate:     "16/09/2023",
			DueTime:     "19:00",
			Status:      domain.TodoStatusPending,
			UserID:      1,
			CreatedAt:   "16/09/2023 07:00",
		},
		{
			ID:          6,
			Title:       "Workout session",
			Description: "Attend the 1-hour workout session at the gym after work.",
			DueDate:     "16/09/2023",
			DueTime:     "18:00",
			Status:      domain.TodoStatusCompleted,
			UserID:      1,
			CreatedAt:   "15/09/2023 20:00",
		},
	}
}
