package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
)

// AdminService aggregates dashboard statistics across the inquiry and room
// collections.
type AdminService struct {
	inquiries ports.InquiryRepository
	events    ports.EventInquiryRepository
	rooms     ports.RoomRepository
	log       zerolog.Logger
	now       func() time.Time
}

func NewAdminService(
	inquiries ports.InquiryRepository,
	events ports.EventInquiryRepository,
	rooms ports.RoomRepository,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		inquiries: inquiries,
		events:    events,
		rooms:     rooms,
		log:       log,
		now:       time.Now,
	}
}

// Dashboard builds the admin overview: totals, triage breakdown and
// last-7-days activity.
func (s *AdminService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	weekAgo := s.now().UTC().AddDate(0, 0, -7)
	stats := &ports.DashboardStats{}

	var err error
	if stats.Inquiries.Total, err = s.inquiries.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Inquiries.New, err = s.inquiries.CountByStatus(ctx, domain.InquiryNew); err != nil {
		return nil, err
	}
	if stats.Inquiries.Read, err = s.inquiries.CountByStatus(ctx, domain.InquiryRead); err != nil {
		return nil, err
	}
	if stats.Inquiries.Replied, err = s.inquiries.CountByStatus(ctx, domain.InquiryReplied); err != nil {
		return nil, err
	}
	if stats.Inquiries.LastSevenD, err = s.inquiries.CountSince(ctx, weekAgo); err != nil {
		return nil, err
	}

	if stats.EventInquiries.Total, err = s.events.Count(ctx); err != nil {
		return nil, err
	}
	if stats.EventInquiries.New, err = s.events.CountByStatus(ctx, domain.InquiryNew); err != nil {
		return nil, err
	}
	if stats.EventInquiries.LastSevenD, err = s.events.CountSince(ctx, weekAgo); err != nil {
		return nil, err
	}

	if stats.Rooms.Total, err = s.rooms.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.Rooms.Featured, err = s.rooms.CountFeatured(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
