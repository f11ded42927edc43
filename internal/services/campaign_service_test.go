package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharemitra/sharemitra-backend/internal/models"
)

type campaignFixture struct {
	campaigns CampaignService
	catalog   CatalogService
	repo      *fakeCampaignRepo
	clients   *fakeClientRepo
	mail      *recordingMailer
	client    *models.Client
	service   *models.Service
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	t.Helper()

	catalog, service := newTestCatalog(t)
	repo := newFakeCampaignRepo()
	clients := newFakeClientRepo()
	mail := &recordingMailer{}

	client := &models.Client{
		ClientID: "client-1",
		Name:     models.ClientName{FirstName: "Asha", LastName: "Patel"},
		Email:    "asha@example.com",
		Verified: true,
	}
	require.NoError(t, clients.Create(context.Background(), client))

	return &campaignFixture{
		campaigns: NewCampaignService(repo, clients, catalog, mail),
		catalog:   catalog,
		repo:      repo,
		clients:   clients,
		mail:      mail,
		client:    client,
		service:   service,
	}
}

func (f *campaignFixture) create(t *testing.T, actions ...models.ActionRequest) *models.Campaign {
	t.Helper()

	id, err := f.campaigns.CreateCampaign(context.Background(), &models.CreateCampaignRequest{
		ClientID:  f.client.ClientID,
		ServiceID: f.service.ServiceID,
		Link:      "https://instagram.com/asha",
		Actions:   actions,
	})
	require.NoError(t, err)

	campaign, err := f.repo.FindByCampaignID(context.Background(), id)
	require.NoError(t, err)
	return campaign
}

func TestCreateCampaignComputesTotal(t *testing.T) {
	f := newCampaignFixture(t)

	// 3 x 5.00 Followers = 15.00
	campaign := f.create(t, models.ActionRequest{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 3})

	require.Len(t, campaign.Actions, 1)
	assert.Equal(t, "Followers", campaign.Actions[0].ContentKey)
	assert.Equal(t, 5.00, campaign.Actions[0].UnitPrice)
	assert.Equal(t, 15.00, campaign.Actions[0].TotalCost)
	assert.Equal(t, 15.00, campaign.TotalAmount)
	assert.Equal(t, models.CampaignStatusPending, campaign.Status)
	assert.Equal(t, f.client.Name, campaign.ClientName)
	assert.Equal(t, f.service.ServiceHeading, campaign.ServiceHeading)

	// Total always equals the sum of line totals.
	var sum float64
	for _, a := range campaign.Actions {
		sum += a.TotalCost
	}
	assert.Equal(t, sum, campaign.TotalAmount)
}

func TestCreateCampaignSendsConfirmation(t *testing.T) {
	f := newCampaignFixture(t)

	f.create(t, models.ActionRequest{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 3})

	require.Equal(t, 1, f.mail.count())
	assert.Equal(t, f.client.Email, f.mail.sent[0].To)
	assert.Contains(t, f.mail.sent[0].Body, "15.00")
}

func TestCreateCampaignInvalidContentPersistsNothing(t *testing.T) {
	f := newCampaignFixture(t)

	_, err := f.campaigns.CreateCampaign(context.Background(), &models.CreateCampaignRequest{
		ClientID:  f.client.ClientID,
		ServiceID: f.service.ServiceID,
		Link:      "https://instagram.com/asha",
		Actions: []models.ActionRequest{
			{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 2},
			{ContentID: "bogus", Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrInvalidAction)

	all, err := f.campaigns.GetAllCampaigns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "no partial campaign may be persisted")
	assert.Zero(t, f.mail.count())
}

func TestCreateCampaignUnknownClientOrService(t *testing.T) {
	f := newCampaignFixture(t)

	_, err := f.campaigns.CreateCampaign(context.Background(), &models.CreateCampaignRequest{
		ClientID:  "ghost",
		ServiceID: f.service.ServiceID,
		Link:      "https://instagram.com/asha",
		Actions:   []models.ActionRequest{{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = f.campaigns.CreateCampaign(context.Background(), &models.CreateCampaignRequest{
		ClientID:  f.client.ClientID,
		ServiceID: "ghost",
		Link:      "https://instagram.com/asha",
		Actions:   []models.ActionRequest{{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCampaignSnapshotsSurviveCatalogChanges(t *testing.T) {
	f := newCampaignFixture(t)
	followersID := f.service.ServiceContent[0].ContentID

	campaign := f.create(t, models.ActionRequest{ContentID: followersID, Quantity: 3})
	require.Equal(t, 15.00, campaign.TotalAmount)

	// Reprice Followers in the catalog after the campaign exists.
	_, err := f.catalog.UpdateService(context.Background(), &models.UpdateServiceRequest{
		ServiceID:      f.service.ServiceID,
		ServiceContent: []models.ServiceContentRequest{{ContentID: followersID, Key: "Followers", Value: "9.00"}},
	})
	require.NoError(t, err)

	stored, err := f.repo.FindByCampaignID(context.Background(), campaign.CampaignID)
	require.NoError(t, err)
	assert.Equal(t, 5.00, stored.Actions[0].UnitPrice, "snapshots are never refreshed")
	assert.Equal(t, 15.00, stored.TotalAmount)
}

func TestUpdateCampaignRepricesFromScratch(t *testing.T) {
	f := newCampaignFixture(t)

	campaign := f.create(t, models.ActionRequest{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 3})
	actionID := campaign.Actions[0].ActionID

	updated, err := f.campaigns.UpdateCampaign(context.Background(), &models.UpdateCampaignRequest{
		CampaignID: campaign.CampaignID,
		Actions: []models.UpdateActionRequest{
			{ActionID: actionID, Quantity: 5},
			{ContentID: f.service.ServiceContent[1].ContentID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 5 x 5.00 + 2 x 2.50 = 30.00
	require.Len(t, updated.Actions, 2)
	assert.Equal(t, 25.00, updated.Actions[0].TotalCost)
	assert.Equal(t, 5.00, updated.Actions[1].TotalCost)
	assert.Equal(t, 30.00, updated.TotalAmount)

	// Saving again with identical inputs converges.
	again, err := f.campaigns.UpdateCampaign(context.Background(), &models.UpdateCampaignRequest{
		CampaignID: campaign.CampaignID,
		Actions:    []models.UpdateActionRequest{{ActionID: actionID, Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, 30.00, again.TotalAmount)
}

func TestUpdateCampaignRejectsNewActionWithoutContent(t *testing.T) {
	f := newCampaignFixture(t)
	campaign := f.create(t, models.ActionRequest{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 1})

	_, err := f.campaigns.UpdateCampaign(context.Background(), &models.UpdateCampaignRequest{
		CampaignID: campaign.CampaignID,
		Actions:    []models.UpdateActionRequest{{Quantity: 2}},
	})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestUpdateStatusCompletionSendsEmail(t *testing.T) {
	f := newCampaignFixture(t)
	campaign := f.create(t, models.ActionRequest{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 1})
	sentBefore := f.mail.count()

	updated, err := f.campaigns.UpdateStatus(context.Background(), campaign.CampaignID, models.CampaignStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusCompleted, updated.Status)
	assert.Equal(t, sentBefore+1, f.mail.count())

	_, err = f.campaigns.UpdateStatus(context.Background(), campaign.CampaignID, models.CampaignStatus(7))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.campaigns.UpdateStatus(context.Background(), "ghost", models.CampaignStatusCompleted)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestGetCampaignsByClientPagination(t *testing.T) {
	f := newCampaignFixture(t)

	for i := 0; i < 23; i++ {
		f.create(t, models.ActionRequest{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 1})
	}

	page1, total, err := f.campaigns.GetCampaignsByClient(context.Background(), f.client.ClientID, models.CampaignStatusPending, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(23), total)
	assert.Len(t, page1, 10)

	page3, _, err := f.campaigns.GetCampaignsByClient(context.Background(), f.client.ClientID, models.CampaignStatusPending, 3, 10, "")
	require.NoError(t, err)
	assert.Len(t, page3, 3)

	page4, _, err := f.campaigns.GetCampaignsByClient(context.Background(), f.client.ClientID, models.CampaignStatusPending, 4, 10, "")
	require.NoError(t, err)
	assert.Empty(t, page4)
}

func TestDeleteCampaign(t *testing.T) {
	f := newCampaignFixture(t)
	campaign := f.create(t, models.ActionRequest{ContentID: f.service.ServiceContent[0].ContentID, Quantity: 1})

	deleted, err := f.campaigns.DeleteCampaign(context.Background(), campaign.CampaignID)
	require.NoError(t, err)
	assert.Equal(t, campaign.CampaignID, deleted.CampaignID)

	_, err = f.campaigns.DeleteCampaign(context.Background(), campaign.CampaignID)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestCampaignTotalMatchesManualSum(t *testing.T) {
	f := newCampaignFixture(t)

	var reqs []models.ActionRequest
	for i, item := range f.service.ServiceContent {
		reqs = append(reqs, models.ActionRequest{ContentID: item.ContentID, Quantity: i + 1})
	}
	campaign := f.create(t, reqs...)

	var sum float64
	for _, a := range campaign.Actions {
		assert.Equal(t, a.UnitPrice*float64(a.Quantity), a.TotalCost, fmt.Sprintf("line %s", a.ContentKey))
		sum += a.TotalCost
	}
	assert.Equal(t, sum, campaign.TotalAmount)
}
