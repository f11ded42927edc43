package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
	"github.com/sharemitra/sharemitra-backend/pkg/mailer"
)

// Compile-time check to ensure campaignService implements CampaignService
var _ CampaignService = (*campaignService)(nil)

type campaignService struct {
	campaignRepo repositories.CampaignRepository
	clientRepo   repositories.ClientRepository
	catalog      CatalogService
	mail         mailer.Mailer
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(campaignRepo repositories.CampaignRepository, clientRepo repositories.ClientRepository, catalog CatalogService, mail mailer.Mailer) CampaignService {
	return &campaignService{
		campaignRepo: campaignRepo,
		clientRepo:   clientRepo,
		catalog:      catalog,
		mail:         mail,
	}
}

// CreateCampaign validates the client and service, prices the requested
// actions and persists the campaign with its snapshots baked in. The
// snapshots are never refreshed afterwards, even if the underlying
// client or service changes.
func (s *campaignService) CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (string, error) {
	client, err := s.clientRepo.FindByClientID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrClientNotFound
		}
		return "", fmt.Errorf("failed to load client: %w", err)
	}

	service, err := s.catalog.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		return "", err
	}

	actions := make([]models.Action, 0, len(req.Actions))
	for _, a := range req.Actions {
		actions = append(actions, models.Action{
			ActionID:  uuid.NewString(),
			ContentID: a.ContentID,
			Quantity:  a.Quantity,
		})
	}

	total, err := s.catalog.PriceActions(ctx, req.ServiceID, actions)
	if err != nil {
		return "", err
	}

	campaign := &models.Campaign{
		CampaignID:     uuid.NewString(),
		ClientID:       client.ClientID,
		ClientName:     client.Name,
		ServiceID:      service.ServiceID,
		ServiceHeading: service.ServiceHeading,
		Link:           strings.TrimSpace(req.Link),
		Actions:        actions,
		TotalAmount:    total,
		Status:         models.CampaignStatusPending,
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return "", fmt.Errorf("failed to create campaign: %w", err)
	}

	// Fire-and-forget confirmation; a mail failure never rolls back the
	// persisted campaign.
	if err := s.mail.Send(client.Email, "Your ShareMitra Campaign Was Created", campaignConfirmationBody(client, campaign)); err != nil {
		log.WithError(err).WithField("campaignId", campaign.CampaignID).Warn("failed to send campaign confirmation email")
	}

	return campaign.CampaignID, nil
}

// UpdateCampaign overwrites the link and/or merges the action list, then
// re-derives every action snapshot and the total from scratch before
// saving. Repeated saves with identical inputs converge to the same
// totals.
func (s *campaignService) UpdateCampaign(ctx context.Context, req *models.UpdateCampaignRequest) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindByCampaignID(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}

	if req.Link != "" {
		campaign.Link = strings.TrimSpace(req.Link)
	}

	for _, a := range req.Actions {
		if a.ActionID != "" {
			if existing := campaign.ActionByID(a.ActionID); existing != nil {
				existing.Quantity = a.Quantity
			}
			continue
		}
		if a.ContentID == "" {
			return nil, fmt.Errorf("%w: new actions require a contentId", ErrInvalidAction)
		}
		campaign.Actions = append(campaign.Actions, models.Action{
			ActionID:  uuid.NewString(),
			ContentID: a.ContentID,
			Quantity:  a.Quantity,
		})
	}

	total, err := s.catalog.PriceActions(ctx, campaign.ServiceID, campaign.Actions)
	if err != nil {
		return nil, err
	}
	campaign.TotalAmount = total

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

// GetAllCampaigns retrieves all campaigns, newest first
func (s *campaignService) GetAllCampaigns(ctx context.Context) ([]*models.Campaign, error) {
	return s.campaignRepo.FindAll(ctx)
}

// GetCampaignsByClient retrieves a client's campaigns in the given status
// with pagination and optional search
func (s *campaignService) GetCampaignsByClient(ctx context.Context, clientID string, status models.CampaignStatus, page, limit int, search string) ([]*models.Campaign, int64, error) {
	if _, err := s.clientRepo.FindByClientID(ctx, clientID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, 0, ErrClientNotFound
		}
		return nil, 0, fmt.Errorf("failed to load client: %w", err)
	}
	return s.campaignRepo.FindByClientAndStatus(ctx, clientID, status, page, limit, strings.TrimSpace(search))
}

// UpdateStatus is the administrative status transition. Completion
// triggers a best-effort notification to the client.
func (s *campaignService) UpdateStatus(ctx context.Context, campaignID string, status models.CampaignStatus) (*models.Campaign, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, status)
	}

	campaign, err := s.campaignRepo.UpdateStatus(ctx, campaignID, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to update campaign status: %w", err)
	}

	if status == models.CampaignStatusCompleted {
		s.notifyCompletion(ctx, campaign)
	}
	return campaign, nil
}

// DeleteCampaign removes a campaign
func (s *campaignService) DeleteCampaign(ctx context.Context, campaignID string) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.Delete(ctx, campaignID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to delete campaign: %w", err)
	}
	return campaign, nil
}

// notifyCompletion emails the client that their campaign is done.
// Best-effort: failures are logged and swallowed.
func (s *campaignService) notifyCompletion(ctx context.Context, campaign *models.Campaign) {
	client, err := s.clientRepo.FindByClientID(ctx, campaign.ClientID)
	if err != nil {
		log.WithError(err).WithField("clientId", campaign.ClientID).Warn("campaign completed but client lookup failed")
		return
	}

	subject := fmt.Sprintf("Your %s Campaign Is Complete", campaign.ServiceHeading)
	body := fmt.Sprintf(`Hello %s,

We're happy to let you know that your campaign for %q was completed on %s.

Thank you for partnering with us. If you have any feedback or need further assistance, please reply to this email or contact care@sharemitra.com.

Best regards,
The ShareMitra Team`,
		client.Name.FirstName, campaign.ServiceHeading, time.Now().Format("02 Jan 2006 15:04 MST"))

	if err := s.mail.Send(client.Email, subject, body); err != nil {
		log.WithError(err).WithField("campaignId", campaign.CampaignID).Warn("failed to send completion email")
	}
}

func campaignConfirmationBody(client *models.Client, campaign *models.Campaign) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nYour campaign for %q has been created.\n\n", client.Name.FirstName, campaign.ServiceHeading)
	for _, action := range campaign.Actions {
		fmt.Fprintf(&b, "  %s x %d @ %.2f = %.2f\n", action.ContentKey, action.Quantity, action.UnitPrice, action.TotalCost)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f\n\nBest regards,\nThe ShareMitra Team", campaign.TotalAmount)
	return b.String()
}
