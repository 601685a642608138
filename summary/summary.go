// Package summary computes the figures shown on a user's summary page.
package summary

import (
	"fmt"
	"time"

	"github.com/Bios-Marcel/join/data"
)

// NoDeadline is shown when no task has a due date.
const NoDeadline = "No"

type Summary struct {
	Total            int
	ToDo             int
	InProgress       int
	AwaitingFeedback int
	Done             int
	Urgent           int
	Deadline         string
}

// Compute counts the tasks and picks the deadline closest to now.
func Compute(tasks []data.Task, now time.Time) Summary {
	s := Summary{
		Total:            len(tasks),
		ToDo:             CountStatus(tasks, data.StatusToDo),
		InProgress:       CountStatus(tasks, data.StatusInProgress),
		AwaitingFeedback: CountStatus(tasks, data.StatusAwaitingFeedback),
		Done:             CountStatus(tasks, data.StatusDone),
		Urgent:           CountPriority(tasks, data.PriorityUrgent),
		Deadline:         NoDeadline,
	}
	if task, ok := UpcomingTask(tasks, now); ok {
		due, _ := task.DueTime()
		s.Deadline = FormatDate(due)
	}
	return s
}

func CountStatus(tasks []data.Task, status data.Status) int {
	n := 0
	for _, task := range tasks {
		if task.Status == status {
			n++
		}
	}
	return n
}

func CountPriority(tasks []data.Task, prio data.Priority) int {
	n := 0
	for _, task := range tasks {
		if task.Prio == prio {
			n++
		}
	}
	return n
}

// UpcomingTask returns the task whose due date is nearest to now, in
// either direction. Ties keep the earlier task.
func UpcomingTask(tasks []data.Task, now time.Time) (data.Task, bool) {
	var (
		best    data.Task
		found   bool
		minDist time.Duration
	)
	for _, task := range tasks {
		due, ok := task.DueTime()
		if !ok {
			continue
		}
		dist := now.Sub(due)
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < minDist {
			best, minDist, found = task, dist, true
		}
	}
	return best, found
}

// FormatDate renders a date as "5 October, 2024".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s, %d", t.Day(), t.Month(), t.Year())
}

// Greeting picks the greeting for an hour of the day (0-23).
func Greeting(hour int) string {
	switch {
	case hour >= 4 && hour < 12:
		return "Good Morning"
	case hour >= 12 && hour < 18:
		return "Good Afternoon"
	case hour >= 18 && hour < 24:
		return "Good Evening"
	default:
		return "Good Night"
	}
}
