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
	"golang.org/x/crypto/bcrypt"

	"github.com/sharemitra/sharemitra-backend/internal/config"
	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
	"github.com/sharemitra/sharemitra-backend/internal/utils"
	"github.com/sharemitra/sharemitra-backend/pkg/mailer"
)

// otpTTL is how long a one-time code stays valid
const otpTTL = 10 * time.Minute

// Compile-time check to ensure clientService implements ClientService
var _ ClientService = (*clientService)(nil)

type clientService struct {
	clientRepo repositories.ClientRepository
	mail       mailer.Mailer
	cfg        *config.Config
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo repositories.ClientRepository, mail mailer.Mailer, cfg *config.Config) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		mail:       mail,
		cfg:        cfg,
	}
}

// GenerateOTP starts registration: it records an unverified client (or
// refreshes an existing unverified one) and emails a 6-digit code.
// Registering an address that already has a verified account fails.
func (s *clientService) GenerateOTP(ctx context.Context, req *models.GenerateOTPRequest) error {
	email := normalizeEmail(req.Email)

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	expiry := time.Now().Add(otpTTL)

	client, err := s.clientRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if client.Verified {
			return ErrEmailInUse
		}
		client.Name = models.ClientName{FirstName: strings.TrimSpace(req.FirstName), LastName: strings.TrimSpace(req.LastName)}
		client.OTP = otp
		client.OTPExpiry = expiry
		if err := s.clientRepo.Update(ctx, client); err != nil {
			return fmt.Errorf("failed to update client: %w", err)
		}
	case errors.Is(err, mongo.ErrNoDocuments):
		client = &models.Client{
			ClientID:  uuid.NewString(),
			Name:      models.ClientName{FirstName: strings.TrimSpace(req.FirstName), LastName: strings.TrimSpace(req.LastName)},
			Email:     email,
			OTP:       otp,
			OTPExpiry: expiry,
		}
		if err := s.clientRepo.Create(ctx, client); err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up client: %w", err)
	}

	body := fmt.Sprintf(`Hello %s,

Your ShareMitra verification code is %s. It expires in 10 minutes.

If you did not request this, you can safely ignore this email.

Best regards,
The ShareMitra Team`, client.Name.FirstName, otp)

	if err := s.mail.Send(email, "Your ShareMitra Verification Code", body); err != nil {
		log.WithError(err).WithField("email", email).Error("failed to send OTP email")
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	return nil
}

// Register completes registration: it checks the emailed code, stores
// the password hash, marks the account verified and issues a session
// token.
func (s *clientService) Register(ctx context.Context, req *models.RegisterRequest) (string, string, error) {
	client, err := s.clientRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", "", ErrClientNotFound
		}
		return "", "", fmt.Errorf("failed to look up client: %w", err)
	}
	if client.Verified {
		return "", "", ErrEmailInUse
	}
	if client.OTP == "" || client.OTP != req.OTP || time.Now().After(client.OTPExpiry) {
		return "", "", ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	client.PasswordHash = string(hash)
	client.Verified = true
	client.OTP = ""
	client.OTPExpiry = time.Time{}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return "", "", fmt.Errorf("failed to update client: %w", err)
	}

	token, err := utils.GenerateJWT(client.ClientID, client.Email, "client", s.cfg)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue token: %w", err)
	}
	return client.ClientID, token, nil
}

// Login authenticates a verified client and issues a session token.
// Unknown emails and wrong passwords are indistinguishable to callers.
func (s *clientService) Login(ctx context.Context, req *models.LoginRequest) (string, string, error) {
	client, err := s.clientRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("failed to look up client: %w", err)
	}
	if !client.Verified {
		return "", "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)) != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(client.ClientID, client.Email, "client", s.cfg)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue token: %w", err)
	}
	return client.ClientID, token, nil
}

// GetClientByID retrieves a client by its stable identifier
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*models.Client, error) {
	client, err := s.clientRepo.FindByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// GetAllClients retrieves all clients
func (s *clientService) GetAllClients(ctx context.Context) ([]*models.Client, error) {
	return s.clientRepo.FindAll(ctx)
}

// UpdatePassword changes a password after verifying the current one
func (s *clientService) UpdatePassword(ctx context.Context, req *models.UpdatePasswordRequest) error {
	client, err := s.GetClientByID(ctx, req.ClientID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.OldPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	client.PasswordHash = string(hash)
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// GenerateResetOTP emails a password-reset code to a verified client
func (s *clientService) GenerateResetOTP(ctx context.Context, email string) error {
	client, err := s.clientRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to look up client: %w", err)
	}
	if !client.Verified {
		return ErrClientNotFound
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	client.ResetOTP = otp
	client.ResetOTPExpiry = time.Now().Add(otpTTL)
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	body := fmt.Sprintf(`Hello %s,

Your ShareMitra password reset code is %s. It expires in 10 minutes.

If you did not request a password reset, you can safely ignore this email.

Best regards,
The ShareMitra Team`, client.Name.FirstName, otp)

	if err := s.mail.Send(client.Email, "Reset Your ShareMitra Password", body); err != nil {
		log.WithError(err).WithField("email", client.Email).Error("failed to send reset OTP email")
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	return nil
}

// ResetPassword completes an OTP password reset
func (s *clientService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	client, err := s.clientRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to look up client: %w", err)
	}
	if client.ResetOTP == "" || client.ResetOTP != req.OTP || time.Now().After(client.ResetOTPExpiry) {
		return ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	client.PasswordHash = string(hash)
	client.ResetOTP = ""
	client.ResetOTPExpiry = time.Time{}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
