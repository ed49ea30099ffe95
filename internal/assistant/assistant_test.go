package assistant

import (
	"strings"
	"testing"

	"family-records-api/internal/domain/entity"
	"family-records-api/internal/reminder"
)

func TestAnswerRoutesByKeyword(t *testing.T) {
	snap := Snapshot{
		Members:       4,
		Documents:     7,
		Vehicles:      2,
		HealthRecords: 3,
	}

	tests := []struct {
		question string
		contains string
	}{
		{"How many family members do we have?", "4 members"},
		{"show my documents", "7 documents"},
		{"what about the car", "2 vehicles"},
		{"any medical records?", "3 records"},
	}

	for _, tt := range tests {
		got := Answer(tt.question, snap)
		if !strings.Contains(got, tt.contains) {
			t.Fatalf("Answer(%q) = %q, want it to mention %q", tt.question, got, tt.contains)
		}
	}
}

func TestAnswerIsCaseInsensitive(t *testing.T) {
	snap := Snapshot{Vehicles: 1}
	if got := Answer("HOW MANY VEHICLES?", snap); !strings.Contains(got, "1 vehicle") {
		t.Fatalf("uppercase question not routed: %q", got)
	}
}

func TestAnswerSummary(t *testing.T) {
	snap := Snapshot{
		Members:           4,
		Documents:         7,
		Vehicles:          2,
		HealthRecords:     3,
		ExpiredDocuments:  1,
		ExpiringDocuments: 2,
		Reminders: []reminder.Item{
			{Title: "Passport expires in 10 days", Priority: entity.PriorityHigh},
		},
	}

	got := Answer("Give me a summary of everything", snap)
	for _, want := range []string{
		"4 family members",
		"7 documents",
		"2 vehicles",
		"3 health records",
		"1 expired",
		"2 expiring within 30 days",
		"1 reminder coming up",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary answer = %q, want it to mention %q", got, want)
		}
	}

	if strings.Contains(got, "I can help") {
		t.Fatalf("summary question fell through to the fallback: %q", got)
	}
}

func TestAnswerSummaryWinsOverTopicKeywords(t *testing.T) {
	snap := Snapshot{Members: 4, Documents: 7}
	if got := Answer("summary of my documents", snap); !strings.Contains(got, "4 family members") {
		t.Fatalf("summary keyword not routed first: %q", got)
	}
}

func TestAnswerRemindersEmpty(t *testing.T) {
	got := Answer("anything due soon?", Snapshot{})
	if !strings.Contains(got, "Nothing needs attention") {
		t.Fatalf("empty feed answer = %q", got)
	}
}

func TestAnswerRemindersPicksMostUrgent(t *testing.T) {
	snap := Snapshot{
		Reminders: []reminder.Item{
			{Title: "Visa expires in 45 days", Priority: entity.PriorityMedium},
			{Title: "Passport expires in 10 days", Priority: entity.PriorityHigh},
		},
	}

	got := Answer("what reminders do I have", snap)
	if !strings.Contains(got, "2 reminders") {
		t.Fatalf("reminder count missing: %q", got)
	}
	if !strings.Contains(got, "1 of them high priority") {
		t.Fatalf("high priority count missing: %q", got)
	}
	if !strings.Contains(got, "Passport expires in 10 days") {
		t.Fatalf("most urgent reminder not surfaced: %q", got)
	}
}

func TestAnswerDocumentsMentionExpiry(t *testing.T) {
	snap := Snapshot{Documents: 5, ExpiredDocuments: 1, ExpiringDocuments: 2}

	got := Answer("tell me about my documents", snap)
	if !strings.Contains(got, "1 already expired") {
		t.Fatalf("expired count missing: %q", got)
	}
	if !strings.Contains(got, "2 expiring within 30 days") {
		t.Fatalf("expiring count missing: %q", got)
	}
}

func TestAnswerUnknownQuestion(t *testing.T) {
	got := Answer("what is the meaning of life", Snapshot{})
	if !strings.Contains(got, "I can help") {
		t.Fatalf("fallback answer = %q", got)
	}
}
