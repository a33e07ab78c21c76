package service

import (
	"context"
	"fmt"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"

	"github.com/google/uuid"
)

type availabilityService struct {
	bookingRepo  repository.BookingRepository
	resourceRepo repository.ResourceRepository
	templateRepo repository.AvailabilityTemplateRepository
	slotDuration time.Duration
}

func NewAvailabilityService(
	bookingRepo repository.BookingRepository,
	resourceRepo repository.ResourceRepository,
	templateRepo repository.AvailabilityTemplateRepository,
	slotMinutes int,
) AvailabilityService {
	if slotMinutes <= 0 {
		slotMinutes = 60
	}
	return &availabilityService{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		templateRepo: templateRepo,
		slotDuration: time.Duration(slotMinutes) * time.Minute,
	}
}

func (s *availabilityService) CheckAvailability(ctx context.Context, actor domain.Actor, resourceID int32, start, end time.Time, excludeBookingID *uuid.UUID) (*domain.AvailabilityResult, error) {
	if !start.Before(end) {
		return nil, domain.NewValidation("start %s must be before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	overlapping, err := s.bookingRepo.ListOverlapping(ctx, actor.TenantID, resourceID, start, end, excludeBookingID)
	if err != nil {
		return nil, domain.NewUnavailable("availability check", err)
	}
	if len(overlapping) > 0 {
		return &domain.AvailabilityResult{
			Available: false,
			Reason:    fmt.Sprintf("conflicts with booking %s", overlapping[0].BookingNumber),
		}, nil
	}
	return &domain.AvailabilityResult{Available: true}, nil
}

// Resource-less appointment slots are bounded by the tenant-wide template
// row stored under resource ID 0.
const tenantDefaultTemplateResource int32 = 0

func (s *availabilityService) ListAvailableSlots(ctx context.Context, actor domain.Actor, resourceID *int32, date time.Time) ([]domain.TimeSlot, error) {
	templateResource := tenantDefaultTemplateResource
	if resourceID != nil {
		templateResource = *resourceID

		resource, err := s.resourceRepo.GetByID(ctx, actor.TenantID, *resourceID)
		if err != nil {
			if domain.IsKind(err, domain.ErrKindNotFound) {
				return nil, err
			}
			return nil, domain.NewUnavailable("resource lookup", err)
		}
		if !resource.IsActive {
			return []domain.TimeSlot{}, nil
		}
	}

	tmpl, err := s.templateRepo.Get(ctx, actor.TenantID, templateResource, date.Weekday())
	if err != nil {
		return nil, domain.NewUnavailable("template lookup", err)
	}
	// No template row is a closed day, not open-by-default.
	if tmpl == nil || !tmpl.IsAvailable {
		return []domain.TimeSlot{}, nil
	}

	opens, closes, err := tmpl.Window(date)
	if err != nil {
		return nil, domain.NewValidation("%v", err)
	}

	slots := []domain.TimeSlot{}
	for candidate := opens; !candidate.Add(s.slotDuration).After(closes); candidate = candidate.Add(s.slotDuration) {
		slotEnd := candidate.Add(s.slotDuration)

		if resourceID != nil {
			result, err := s.CheckAvailability(ctx, actor, *resourceID, candidate, slotEnd, nil)
			if err != nil {
				return nil, err
			}
			if !result.Available {
				continue
			}
		}

		slots = append(slots, domain.TimeSlot{
			StartTime: candidate,
			EndTime:   slotEnd,
			Label:     fmt.Sprintf("%s - %s", candidate.Format("3:04 PM"), slotEnd.Format("3:04 PM")),
		})
	}
	return slots, nil
}

func (s *availabilityService) GetTemplates(ctx context.Context, actor domain.Actor, resourceID int32) ([]domain.AvailabilityTemplate, error) {
	templates, err := s.templateRepo.ListByResource(ctx, actor.TenantID, resourceID)
	if err != nil {
		return nil, domain.NewUnavailable("template list", err)
	}
	return templates, nil
}

func (s *availabilityService) PutTemplate(ctx context.Context, actor domain.Actor, t *domain.AvailabilityTemplate) error {
	if t.Weekday < time.Sunday || t.Weekday > time.Saturday {
		return domain.NewValidation("invalid weekday %d", t.Weekday)
	}
	if t.IsAvailable {
		if _, _, err := t.Window(time.Now()); err != nil {
			return domain.NewValidation("%v", err)
		}
	}
	t.TenantID = actor.TenantID
	if err := s.templateRepo.Upsert(ctx, t); err != nil {
		return domain.NewUnavailable("template upsert", err)
	}
	return nil
}
