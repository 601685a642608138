package account

import (
	"github.com/Bios-Marcel/join/avatar"
	"github.com/Bios-Marcel/join/data"
	"github.com/Bios-Marcel/join/views"
)

const seedDueDate = "2024-10-05"

// idSequence hands out the task and contact ids of a new account.
type idSequence struct {
	next int
}

func (s *idSequence) take() int {
	id := s.next
	s.next++
	return id
}

// seedTasks returns the demo tasks every new account starts with, all
// assigned to the account owner.
func seedTasks(svg string, ids *idSequence) []data.Task {
	assign := func(task data.Task) data.Task {
		task.AssignedTo = []string{views.AssigneeBadge("You", svg)}
		task.AssignedToNames = []string{"You"}
		task.Assignments = []data.Assignment{{Name: "You", SVG: svg}}
		task.DueDate = seedDueDate
		task.ID = ids.take()
		return task
	}

	return []data.Task{
		assign(data.Task{
			Title:        "Implement User Authentication System",
			Description:  "Develop a secure user authentication system for our web application. The system should allow users to sign up using an email and password, and also provide options for password recovery. The backend should securely store hashed passwords and ensure that every data transmission happens over an encrypted connection. Integration with third-party authentication providers like Google or Facebook is a plus.",
			Category:     "development",
			Prio:         data.PriorityUrgent,
			Status:       data.StatusToDo,
			Subtasks:     []string{"Research and Choose a Framework", "Database Integration", "Front-end Development"},
			SubtasksDone: []data.SubtaskState{data.SubtaskDone, data.SubtaskNotDone, data.SubtaskNotDone},
		}),
		assign(data.Task{
			Title:        "Redesign Homepage for Mobile Responsiveness",
			Description:  "Revamp the current homepage to ensure a seamless experience for mobile users.",
			Category:     "design",
			Prio:         data.PriorityMedium,
			Status:       data.StatusInProgress,
			Subtasks:     []string{"Identify Key Elements", "Wireframing", "Collaboration"},
			SubtasksDone: []data.SubtaskState{data.SubtaskNotDone, data.SubtaskDone, data.SubtaskDone},
		}),
		assign(data.Task{
			Title:        "Conduct User Testing for New Features",
			Description:  "To ensure our recent application updates align with user expectations, conduct a comprehensive user testing session.",
			Category:     "quality",
			Prio:         data.PriorityUrgent,
			Status:       data.StatusAwaitingFeedback,
			Subtasks:     []string{"Recruit Testers", "Prepare Test Scenarios", "Feedback Collection"},
			SubtasksDone: []data.SubtaskState{data.SubtaskDone, data.SubtaskNotDone, data.SubtaskNotDone},
		}),
	}
}

// seedContacts returns the demo contacts of a new account. They are
// address book entries only and cannot log in.
func seedContacts(ids *idSequence) []data.Contact {
	return []data.Contact{
		{
			ID:       ids.take(),
			Name:     "Günther Jauch",
			Email:    "guenther@jauch.de",
			Phone:    "1234",
			Monogram: avatar.Monogram("GJ", "#f28034"),
		},
		{
			ID:       ids.take(),
			Name:     "Walter Röhrich",
			Email:    "walter@roehrich.de",
			Phone:    "1454556456",
			Monogram: avatar.Monogram("WR", "#7e356"),
		},
		{
			ID:       ids.take(),
			Name:     "Andreas Ernst",
			Email:    "andreas@gmail.com",
			Phone:    "0456456456",
			Monogram: avatar.Monogram("AE", "#64f5e0"),
		},
	}
}
