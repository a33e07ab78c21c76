package service

import (
	"context"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"
)

type resourceStatusService struct {
	resourceRepo repository.ResourceRepository
	bookingRepo  repository.BookingRepository
}

func NewResourceStatusService(resourceRepo repository.ResourceRepository, bookingRepo repository.BookingRepository) ResourceStatusService {
	return &resourceStatusService{resourceRepo: resourceRepo, bookingRepo: bookingRepo}
}

func (s *resourceStatusService) DeriveStatus(ctx context.Context, actor domain.Actor, resourceID int32) (domain.ResourceStatus, error) {
	resource, err := s.resourceRepo.GetByID(ctx, actor.TenantID, resourceID)
	if err != nil {
		if domain.IsKind(err, domain.ErrKindNotFound) {
			return "", err
		}
		return "", domain.NewUnavailable("resource lookup", err)
	}

	// Operator-set dirty/maintenance win over derivation.
	if resource.Status.IsManualOverride() {
		return resource.Status, nil
	}

	occupied, err := s.bookingRepo.AnyCheckedIn(ctx, actor.TenantID, resourceID)
	if err != nil {
		return "", domain.NewUnavailable("occupancy check", err)
	}
	if occupied {
		return domain.ResourceStatusOccupied, nil
	}
	return domain.ResourceStatusVacant, nil
}

// ListResources returns the tenant's active resources with their derived
// statuses, for front-desk dashboards.
func (s *resourceStatusService) ListResources(ctx context.Context, actor domain.Actor) ([]domain.Resource, error) {
	resources, err := s.resourceRepo.ListActive(ctx, actor.TenantID)
	if err != nil {
		return nil, domain.NewUnavailable("resource list", err)
	}
	for i := range resources {
		if resources[i].Status.IsManualOverride() {
			continue
		}
		occupied, err := s.bookingRepo.AnyCheckedIn(ctx, actor.TenantID, resources[i].ID)
		if err != nil {
			return nil, domain.NewUnavailable("occupancy check", err)
		}
		if occupied {
			resources[i].Status = domain.ResourceStatusOccupied
		} else {
			resources[i].Status = domain.ResourceStatusVacant
		}
	}
	return resources, nil
}

func (s *resourceStatusService) OverrideStatus(ctx context.Context, actor domain.Actor, resourceID int32, status domain.ResourceStatus) error {
	if !status.IsManualOverride() {
		return domain.NewValidation("only %s and %s can be set manually", domain.ResourceStatusDirty, domain.ResourceStatusMaintenance)
	}
	if err := s.resourceRepo.SetStatus(ctx, actor.TenantID, resourceID, status); err != nil {
		if domain.IsKind(err, domain.ErrKindNotFound) {
			return err
		}
		return domain.NewUnavailable("resource status update", err)
	}
	return nil
}

func (s *resourceStatusService) MarkClean(ctx context.Context, actor domain.Actor, resourceID int32) error {
	resource, err := s.resourceRepo.GetByID(ctx, actor.TenantID, resourceID)
	if err != nil {
		if domain.IsKind(err, domain.ErrKindNotFound) {
			return err
		}
		return domain.NewUnavailable("resource lookup", err)
	}
	if resource.Status == domain.ResourceStatusMaintenance {
		return domain.NewValidation("resource %s is under maintenance; clear maintenance first", resource.Name)
	}
	if err := s.resourceRepo.SetStatus(ctx, actor.TenantID, resourceID, domain.ResourceStatusVacant); err != nil {
		return domain.NewUnavailable("resource status update", err)
	}
	return nil
}
