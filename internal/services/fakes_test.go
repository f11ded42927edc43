package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
)

// In-memory repository fakes backing the service tests. They mirror the
// MongoDB implementations' contracts, including mongo.ErrNoDocuments on
// misses and the conditional state-machine updates.

type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]*models.Service
}

var _ repositories.ServiceRepository = (*fakeServiceRepo)(nil)

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*models.Service)}
}

func (r *fakeServiceRepo) Create(_ context.Context, service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	service.CreatedAt = time.Now()
	service.UpdatedAt = service.CreatedAt
	cp := *service
	r.services[service.ServiceID] = &cp
	return nil
}

func (r *fakeServiceRepo) FindByServiceID(_ context.Context, serviceID string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	service, ok := r.services[serviceID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *service
	cp.ServiceContent = append([]models.ServiceContent(nil), service.ServiceContent...)
	return &cp, nil
}

func (r *fakeServiceRepo) FindAll(_ context.Context, page, limit int, search string) ([]*models.Service, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*models.Service
	for _, service := range r.services {
		if search == "" || strings.Contains(strings.ToLower(service.ServiceHeading), strings.ToLower(search)) {
			matched = append(matched, service)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	skip := (page - 1) * limit
	if skip >= len(matched) {
		return []*models.Service{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[service.ServiceID]; !ok {
		return mongo.ErrNoDocuments
	}
	service.UpdatedAt = time.Now()
	cp := *service
	r.services[service.ServiceID] = &cp
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, serviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[serviceID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.services, serviceID)
	return nil
}

type fakeCampaignRepo struct {
	mu        sync.Mutex
	campaigns map[string]*models.Campaign
	seq       int
}

var _ repositories.CampaignRepository = (*fakeCampaignRepo)(nil)

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: make(map[string]*models.Campaign)}
}

func (r *fakeCampaignRepo) Create(_ context.Context, campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	campaign.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	campaign.UpdatedAt = campaign.CreatedAt
	cp := *campaign
	r.campaigns[campaign.CampaignID] = &cp
	return nil
}

func (r *fakeCampaignRepo) FindByCampaignID(_ context.Context, campaignID string) (*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *campaign
	cp.Actions = append([]models.Action(nil), campaign.Actions...)
	return &cp, nil
}

func (r *fakeCampaignRepo) FindAll(_ context.Context) ([]*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCampaignRepo) FindByClientAndStatus(_ context.Context, clientID string, status models.CampaignStatus, page, limit int, search string) ([]*models.Campaign, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*models.Campaign
	for _, c := range r.campaigns {
		if c.ClientID != clientID || c.Status != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.ServiceHeading), strings.ToLower(search)) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	skip := (page - 1) * limit
	if skip >= len(matched) {
		return []*models.Campaign{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *fakeCampaignRepo) Update(_ context.Context, campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.campaigns[campaign.CampaignID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	campaign.CreatedAt = existing.CreatedAt
	campaign.UpdatedAt = time.Now()
	cp := *campaign
	r.campaigns[campaign.CampaignID] = &cp
	return nil
}

func (r *fakeCampaignRepo) UpdateStatus(_ context.Context, campaignID string, status models.CampaignStatus) (*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	campaign.Status = status
	campaign.UpdatedAt = time.Now()
	cp := *campaign
	return &cp, nil
}

func (r *fakeCampaignRepo) CompleteLatestPending(_ context.Context, clientID, serviceID string) (*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *models.Campaign
	for _, c := range r.campaigns {
		if c.ClientID != clientID || c.ServiceID != serviceID || c.Status != models.CampaignStatusPending {
			continue
		}
		if latest == nil || c.CreatedAt.After(latest.CreatedAt) {
			latest = c
		}
	}
	if latest == nil {
		return nil, mongo.ErrNoDocuments
	}
	latest.Status = models.CampaignStatusCompleted
	latest.UpdatedAt = time.Now()
	cp := *latest
	return &cp, nil
}

func (r *fakeCampaignRepo) Delete(_ context.Context, campaignID string) (*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(r.campaigns, campaignID)
	return campaign, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*models.Payment
}

var _ repositories.PaymentRepository = (*fakePaymentRepo)(nil)

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	cp := *payment
	r.payments[payment.OrderID] = &cp
	return nil
}

func (r *fakePaymentRepo) FindByOrderID(_ context.Context, orderID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[orderID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *payment
	return &cp, nil
}

func (r *fakePaymentRepo) UpdateStatusFromCreated(_ context.Context, orderID string, status models.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[orderID]
	if !ok || payment.Status != models.PaymentStatusCreated {
		return nil // same as MatchedCount == 0
	}
	payment.Status = status
	return nil
}

func (r *fakePaymentRepo) Approve(_ context.Context, orderID, paymentID, signature string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[orderID]
	if !ok || payment.Status != models.PaymentStatusCreated {
		return nil, mongo.ErrNoDocuments
	}
	now := time.Now()
	payment.PaymentID = paymentID
	payment.Signature = signature
	payment.Status = models.PaymentStatusApproved
	payment.ApprovedAt = &now
	cp := *payment
	return &cp, nil
}

type fakeClientRepo struct {
	mu      sync.Mutex
	clients map[string]*models.Client
}

var _ repositories.ClientRepository = (*fakeClientRepo)(nil)

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*models.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	client.Email = strings.ToLower(client.Email)
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt
	cp := *client
	r.clients[client.ClientID] = &cp
	return nil
}

func (r *fakeClientRepo) FindByClientID(_ context.Context, clientID string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	client, ok := r.clients[clientID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *client
	return &cp, nil
}

func (r *fakeClientRepo) FindByEmail(_ context.Context, email string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, client := range r.clients {
		if client.Email == strings.ToLower(email) {
			cp := *client
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeClientRepo) FindAll(_ context.Context) ([]*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ClientID]; !ok {
		return mongo.ErrNoDocuments
	}
	client.Email = strings.ToLower(client.Email)
	client.UpdatedAt = time.Now()
	cp := *client
	r.clients[client.ClientID] = &cp
	return nil
}

// recordingMailer captures sent mail instead of delivering it
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*models.Admin
}

var _ repositories.AdminRepository = (*fakeAdminRepo)(nil)

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin.Email = strings.ToLower(admin.Email)
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	cp := *admin
	r.admins[admin.AdminID] = &cp
	return nil
}

func (r *fakeAdminRepo) FindByAdminID(_ context.Context, adminID string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[adminID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *admin
	return &cp, nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Email == strings.ToLower(email) {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAdminRepo) Update(_ context.Context, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[admin.AdminID]; !ok {
		return mongo.ErrNoDocuments
	}
	admin.Email = strings.ToLower(admin.Email)
	admin.UpdatedAt = time.Now()
	cp := *admin
	r.admins[admin.AdminID] = &cp
	return nil
}

type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]*models.Invoice
	seq      int64
}

var _ repositories.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*models.Invoice)}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice.CreatedAt = time.Now()
	cp := *invoice
	r.invoices[invoice.InvoiceID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) FindByInvoiceID(_ context.Context, invoiceID string) (*models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice, ok := r.invoices[invoiceID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *invoice
	return &cp, nil
}

func (r *fakeInvoiceRepo) FindByCampaignID(_ context.Context, campaignID string) ([]*models.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Invoice{}
	for _, inv := range r.invoices {
		if inv.CampaignID == campaignID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) NextSequence(_ context.Context, _ string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

type fakeDocumentRepo struct {
	mu   sync.Mutex
	docs map[models.DocumentType]*models.Document
}

var _ repositories.DocumentRepository = (*fakeDocumentRepo)(nil)

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[models.DocumentType]*models.Document)}
}

func (r *fakeDocumentRepo) Upsert(_ context.Context, document *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.docs[document.Type]; ok {
		document.CreatedAt = existing.CreatedAt
	} else {
		document.CreatedAt = time.Now()
	}
	document.UpdatedAt = time.Now()
	cp := *document
	r.docs[document.Type] = &cp
	return nil
}

func (r *fakeDocumentRepo) FindByType(_ context.Context, docType models.DocumentType) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	document, ok := r.docs[docType]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *document
	return &cp, nil
}

func (r *fakeDocumentRepo) FindAll(_ context.Context) ([]*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Document{}
	for _, d := range r.docs {
		out = append(out, d)
	}
	return out, nil
}
