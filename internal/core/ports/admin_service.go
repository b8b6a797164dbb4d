package ports

import "context"

// InquiryStats summarises the inquiry workload for the dashboard.
type InquiryStats struct {
	Total      int64 `json:"total"`
	New        int64 `json:"new"`
	Read       int64 `json:"read"`
	Replied    int64 `json:"replied"`
	LastSevenD int64 `json:"last_7_days"`
}

// EventInquiryStats summarises event inquiries for the dashboard.
type EventInquiryStats struct {
	Total      int64 `json:"total"`
	New        int64 `json:"new"`
	LastSevenD int64 `json:"last_7_days"`
}

// RoomStats summarises room counts for the dashboard.
type RoomStats struct {
	Total    int64 `json:"total"`
	Featured int64 `json:"featured"`
}

// DashboardStats is the admin landing-page overview.
type DashboardStats struct {
	Inquiries      InquiryStats      `json:"inquiries"`
	EventInquiries EventInquiryStats `json:"event_inquiries"`
	Rooms          RoomStats         `json:"rooms"`
}

// AdminService aggregates cross-entity statistics.
type AdminService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
