// Package assistant answers free-text questions about a household from a
// snapshot of its records. Matching is plain keyword routing; there is no
// external model and answers are deterministic for a given snapshot.
package assistant

import (
	"fmt"
	"strings"

	"family-records-api/internal/domain/entity"
	"family-records-api/internal/reminder"
)

// Snapshot is the household data the assistant answers from. It is computed
// by the caller so the package stays free of storage concerns.
type Snapshot struct {
	Members           int
	Documents         int
	Vehicles          int
	HealthRecords     int
	ExpiringDocuments int
	ExpiredDocuments  int
	Reminders         []reminder.Item
}

// route binds trigger keywords to an answer builder. Routes are evaluated in
// order and the first keyword hit wins.
type route struct {
	keywords []string
	answer   func(snap Snapshot) string
}

var routes = []route{
	{
		keywords: []string{"summary", "overview", "everything"},
		answer:   summaryAnswer,
	},
	{
		keywords: []string{"remind", "due", "upcoming", "expir", "renew"},
		answer:   reminderAnswer,
	},
	{
		keywords: []string{"document", "passport", "license", "certificate"},
		answer:   documentAnswer,
	},
	{
		keywords: []string{"vehicle", "car", "bike", "truck", "insurance", "puc"},
		answer: func(snap Snapshot) string {
			return fmt.Sprintf("You have %s registered.", plural(snap.Vehicles, "vehicle"))
		},
	},
	{
		keywords: []string{"member", "family", "people", "who"},
		answer: func(snap Snapshot) string {
			return fmt.Sprintf("Your family has %s on record.", plural(snap.Members, "member"))
		},
	},
	{
		keywords: []string{"health", "medical", "medication", "vaccine", "doctor"},
		answer: func(snap Snapshot) string {
			return fmt.Sprintf("There are %s in the health history.", plural(snap.HealthRecords, "record"))
		},
	},
}

// Answer routes a question to the matching topic. Unrecognized questions get
// a short capability hint instead of a guess.
func Answer(question string, snap Snapshot) string {
	q := strings.ToLower(question)

	for _, r := range routes {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.answer(snap)
			}
		}
	}

	return "I can help with questions about your family members, documents, vehicles, health records and upcoming reminders."
}

func summaryAnswer(snap Snapshot) string {
	answer := fmt.Sprintf("Your household has %s, %s, %s and %s on record.",
		plural(snap.Members, "family member"),
		plural(snap.Documents, "document"),
		plural(snap.Vehicles, "vehicle"),
		plural(snap.HealthRecords, "health record"),
	)
	if snap.ExpiredDocuments > 0 || snap.ExpiringDocuments > 0 {
		answer += fmt.Sprintf(" Documents needing attention: %d expired, %d expiring within 30 days.",
			snap.ExpiredDocuments, snap.ExpiringDocuments)
	}
	if len(snap.Reminders) > 0 {
		answer += fmt.Sprintf(" %s coming up.", plural(len(snap.Reminders), "reminder"))
	}
	return answer
}

func reminderAnswer(snap Snapshot) string {
	if len(snap.Reminders) == 0 {
		return "Nothing needs attention right now. All tracked dates are in good standing."
	}

	high := 0
	urgent := snap.Reminders[0]
	for _, item := range snap.Reminders {
		if item.Priority == entity.PriorityHigh {
			if high == 0 {
				urgent = item
			}
			high++
		}
	}

	answer := fmt.Sprintf("You have %s coming up", plural(len(snap.Reminders), "reminder"))
	if high > 0 {
		answer += fmt.Sprintf(", %d of them high priority", high)
	}
	answer += ". The most urgent: " + urgent.Title + "."
	return answer
}

func documentAnswer(snap Snapshot) string {
	answer := fmt.Sprintf("You have %s stored.", plural(snap.Documents, "document"))
	if snap.ExpiredDocuments > 0 {
		answer += fmt.Sprintf(" %d already expired.", snap.ExpiredDocuments)
	}
	if snap.ExpiringDocuments > 0 {
		answer += fmt.Sprintf(" %d expiring within 30 days.", snap.ExpiringDocuments)
	}
	return answer
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
