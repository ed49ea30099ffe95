package dto

// DashboardSummaryResponse feeds the dashboard count badges.
type DashboardSummaryResponse struct {
	Members           int            `json:"members"`
	Documents         int            `json:"documents"`
	Vehicles          int            `json:"vehicles"`
	HealthRecords     int            `json:"health_records"`
	ExpiringDocuments int            `json:"expiring_documents"`
	ExpiredDocuments  int            `json:"expired_documents"`
	VehiclesAttention int            `json:"vehicles_attention"`
	Reminders         ReminderCounts `json:"reminders"`
}

type ReminderCounts struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Assistant DTOs

type AssistantRequest struct {
	Question string `json:"question" validate:"required,min=1,max=500"`
}

type AssistantResponse struct {
	Answer string `json:"answer"`
}
