package models

import "time"

// Task is a checklist item of the event plan.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	DueDate     string    `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskCompletionUpdate sets the completion flag of a single task.
type TaskCompletionUpdate struct {
	TaskID      string `json:"taskId"`
	IsCompleted bool   `json:"isCompleted"`
}
