package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
)

// Compile-time check to ensure catalogService implements CatalogService
var _ CatalogService = (*catalogService)(nil)

type catalogService struct {
	serviceRepo repositories.ServiceRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogService {
	return &catalogService{serviceRepo: serviceRepo}
}

// CreateService creates a catalog entry, assigning fresh identifiers to
// the service and each content item
func (s *catalogService) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.Service, error) {
	content := make([]models.ServiceContent, 0, len(req.ServiceContent))
	for _, item := range req.ServiceContent {
		key := strings.TrimSpace(item.Key)
		value := strings.TrimSpace(item.Value)
		if key == "" || value == "" {
			return nil, fmt.Errorf("%w: content items need a non-empty key and value", ErrInvalidAction)
		}
		if err := validatePrice(value); err != nil {
			return nil, err
		}
		content = append(content, models.ServiceContent{
			ContentID: uuid.NewString(),
			Key:       key,
			Value:     value,
		})
	}

	service := &models.Service{
		ServiceID:          uuid.NewString(),
		ServiceHeading:     strings.TrimSpace(req.ServiceHeading),
		ServiceDescription: strings.TrimSpace(req.ServiceDescription),
		ServiceContent:     content,
	}
	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

// GetAllServices retrieves services with pagination and optional search
func (s *catalogService) GetAllServices(ctx context.Context, page, limit int, search string) ([]*models.Service, int64, error) {
	return s.serviceRepo.FindAll(ctx, page, limit, strings.TrimSpace(search))
}

// GetServiceByID retrieves a service by its stable identifier
func (s *catalogService) GetServiceByID(ctx context.Context, serviceID string) (*models.Service, error) {
	service, err := s.serviceRepo.FindByServiceID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return service, nil
}

// UpdateService merges the request into the stored service. Content items
// carrying a contentId overwrite the matching item; items without one are
// appended with a fresh identifier. Unknown contentIds are ignored.
func (s *catalogService) UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.Service, error) {
	service, err := s.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	if heading := strings.TrimSpace(req.ServiceHeading); heading != "" {
		service.ServiceHeading = heading
	}
	if desc := strings.TrimSpace(req.ServiceDescription); desc != "" {
		service.ServiceDescription = desc
	}

	for _, item := range req.ServiceContent {
		key := strings.TrimSpace(item.Key)
		value := strings.TrimSpace(item.Value)
		if key == "" || value == "" {
			return nil, fmt.Errorf("%w: content items need a non-empty key and value", ErrInvalidAction)
		}
		if err := validatePrice(value); err != nil {
			return nil, err
		}
		if item.ContentID != "" {
			if existing := service.ContentByID(item.ContentID); existing != nil {
				existing.Key = key
				existing.Value = value
			}
			continue
		}
		service.ServiceContent = append(service.ServiceContent, models.ServiceContent{
			ContentID: uuid.NewString(),
			Key:       key,
			Value:     value,
		})
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return service, nil
}

// DeleteService removes a catalog entry
func (s *catalogService) DeleteService(ctx context.Context, serviceID string) error {
	err := s.serviceRepo.Delete(ctx, serviceID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrServiceNotFound
	}
	return err
}

// DeleteServiceContent removes a single content item from a service
func (s *catalogService) DeleteServiceContent(ctx context.Context, serviceID, contentID string) (*models.Service, error) {
	service, err := s.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	kept := service.ServiceContent[:0]
	for _, item := range service.ServiceContent {
		if item.ContentID != contentID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(service.ServiceContent) {
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, contentID)
	}
	service.ServiceContent = kept

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return service, nil
}

// ResolvePrice returns the current display key and unit price for a
// content item. The lookup is by stable identifier, never by position.
func (s *catalogService) ResolvePrice(ctx context.Context, serviceID, contentID string) (*ResolvedPrice, error) {
	service, err := s.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	entry := service.ContentByID(contentID)
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, contentID)
	}
	price, err := parsePrice(entry.Value)
	if err != nil {
		return nil, err
	}
	return &ResolvedPrice{Key: entry.Key, UnitPrice: price}, nil
}

// PriceActions resolves every action against the service's catalog and
// returns the grand total. A missing service fails the whole operation;
// an invalid content reference also fails it, attributable to the action.
func (s *catalogService) PriceActions(ctx context.Context, serviceID string, actions []models.Action) (float64, error) {
	service, err := s.GetServiceByID(ctx, serviceID)
	if err != nil {
		return 0, err
	}
	return priceActions(service, actions)
}

// priceActions is the pure pricing step: it fills in the contentKey,
// unitPrice and totalCost snapshots on each action and returns the grand
// total. Re-running it with identical inputs always converges to the
// same totals.
func priceActions(service *models.Service, actions []models.Action) (float64, error) {
	var grandTotal float64
	for i := range actions {
		action := &actions[i]
		if action.Quantity < 1 {
			return 0, fmt.Errorf("%w: quantity must be at least 1 for contentId %q", ErrInvalidAction, action.ContentID)
		}
		entry := service.ContentByID(action.ContentID)
		if entry == nil {
			return 0, fmt.Errorf("%w: invalid contentId %q for service %s", ErrInvalidAction, action.ContentID, service.ServiceID)
		}
		price, err := parsePrice(entry.Value)
		if err != nil {
			return 0, err
		}
		action.ContentKey = entry.Key
		action.UnitPrice = price
		action.TotalCost = price * float64(action.Quantity)
		grandTotal += action.TotalCost
	}
	return grandTotal, nil
}

func parsePrice(value string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable price %q", ErrInvalidAction, value)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: negative price %q", ErrInvalidAction, value)
	}
	return price, nil
}

func validatePrice(value string) error {
	_, err := parsePrice(value)
	return err
}
