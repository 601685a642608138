package data

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidRecord is returned when a decoded record violates the schema.
var ErrInvalidRecord = errors.New("invalid record")

// DateLayout is the layout of Task.DueDate.
const DateLayout = "2006-01-02"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityUrgent Priority = "Urgent"
)

type Status string

const (
	StatusToDo             Status = "toDo"
	StatusInProgress       Status = "inProgress"
	StatusAwaitingFeedback Status = "awaitingFeedback"
	StatusDone             Status = "done"
)

type SubtaskState string

const (
	SubtaskDone    SubtaskState = "done"
	SubtaskNotDone SubtaskState = "notdone"
)

// User represents a registered user, providing a valid login. The whole
// record, tasks and contacts included, lives in the shared users blob.
type User struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	SVG      string    `json:"svg"`
	Tasks    []Task    `json:"tasks"`
	Contacts []Contact `json:"contacts"`
}

func (user User) GetDisplayName() string {
	if user.Name != "" {
		return user.Name
	}

	return user.Email
}

// IDString returns the id the way it is kept in session storage.
func (user User) IDString() string {
	return strconv.Itoa(user.ID)
}

type Assignment struct {
	Name string `json:"name"`
	SVG  string `json:"svg"`
}

type Task struct {
	ID              int            `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Category        string         `json:"category"`
	Prio            Priority       `json:"prio"`
	Status          Status         `json:"status"`
	DueDate         string         `json:"duedate"`
	Subtasks        []string       `json:"subtasks"`
	SubtasksDone    []SubtaskState `json:"subtasksdone"`
	AssignedTo      []string       `json:"assignedTo"`
	AssignedToNames []string       `json:"assignedToNames"`
	Assignments     []Assignment   `json:"assignments"`
}

type Contact struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Monogram string `json:"monogram"`
}

// Validate checks the enum fields, the due date and the subtask arrays.
// Empty prio, status and due date are accepted.
func (task Task) Validate() error {
	switch task.Prio {
	case "", PriorityLow, PriorityMedium, PriorityUrgent:
	default:
		return fmt.Errorf("%w: task %d: unknown prio %q", ErrInvalidRecord, task.ID, task.Prio)
	}

	switch task.Status {
	case "", StatusToDo, StatusInProgress, StatusAwaitingFeedback, StatusDone:
	default:
		return fmt.Errorf("%w: task %d: unknown status %q", ErrInvalidRecord, task.ID, task.Status)
	}

	if task.DueDate != "" {
		if _, err := time.Parse(DateLayout, task.DueDate); err != nil {
			return fmt.Errorf("%w: task %d: duedate %q", ErrInvalidRecord, task.ID, task.DueDate)
		}
	}

	if len(task.Subtasks) != len(task.SubtasksDone) {
		return fmt.Errorf("%w: task %d: %d subtasks but %d subtask states",
			ErrInvalidRecord, task.ID, len(task.Subtasks), len(task.SubtasksDone))
	}
	for _, state := range task.SubtasksDone {
		if state != SubtaskDone && state != SubtaskNotDone {
			return fmt.Errorf("%w: task %d: unknown subtask state %q", ErrInvalidRecord, task.ID, state)
		}
	}

	return nil
}

func (user User) Validate() error {
	for _, task := range user.Tasks {
		if err := task.Validate(); err != nil {
			return fmt.Errorf("user %d: %w", user.ID, err)
		}
	}
	return nil
}

// ValidateUsers validates every user. Ids are not required to be
// unique; lookups take the first match.
func ValidateUsers(users []User) error {
	for _, user := range users {
		if err := user.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DueTime parses the due date. ok is false when the task has none.
func (task Task) DueTime() (due time.Time, ok bool) {
	if task.DueDate == "" {
		return time.Time{}, false
	}
	due, err := time.Parse(DateLayout, task.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}
