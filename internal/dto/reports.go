package dto

import "time"

// ReportSummaryResponse is one entry of the recent interviews list
type ReportSummaryResponse struct {
	IntervieweeName string    `json:"interviewee_name"`
	Date            string    `json:"date"`
	Total           int       `json:"total"`
	Answered        int       `json:"answered"`
	Positive        int       `json:"positive"`
	Neutral         int       `json:"neutral"`
	Negative        int       `json:"negative"`
	Rating          float64   `json:"rating"`
	File            string    `json:"file"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// RecentReportsResponse lists recently finished interviews, newest first
type RecentReportsResponse struct {
	Success bool                    `json:"success" example:"true"`
	Reports []ReportSummaryResponse `json:"reports"`
}

// HealthResponse reports process and database health
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}
