package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/sharemitra/sharemitra-backend/internal/config"
	"github.com/sharemitra/sharemitra-backend/internal/models"
	"github.com/sharemitra/sharemitra-backend/internal/repositories"
	"github.com/sharemitra/sharemitra-backend/internal/utils"
	"github.com/sharemitra/sharemitra-backend/pkg/mailer"
)

// Compile-time check to ensure adminService implements AdminService
var _ AdminService = (*adminService)(nil)

type adminService struct {
	adminRepo repositories.AdminRepository
	mail      mailer.Mailer
	cfg       *config.Config
}

// NewAdminService creates a new AdminService
func NewAdminService(adminRepo repositories.AdminRepository, mail mailer.Mailer, cfg *config.Config) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		mail:      mail,
		cfg:       cfg,
	}
}

// Login authenticates an admin and issues a session token
func (s *adminService) Login(ctx context.Context, req *models.LoginRequest) (string, string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("failed to look up admin: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(admin.AdminID, admin.Email, "admin", s.cfg)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue token: %w", err)
	}
	return admin.AdminID, token, nil
}

// UpdatePassword changes an admin password after verifying the old one
func (s *adminService) UpdatePassword(ctx context.Context, req *models.AdminUpdatePasswordRequest) error {
	admin, err := s.findByAdminID(ctx, req.AdminID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.OldPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin.PasswordHash = string(hash)
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	return nil
}

// ForgotPassword emails a password-reset code to the admin address
func (s *adminService) ForgotPassword(ctx context.Context, email string) error {
	admin, err := s.adminRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	admin.ResetOTP = otp
	admin.ResetOTPExpiry = time.Now().Add(otpTTL)
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}

	body := fmt.Sprintf(`Hello,

Your ShareMitra admin password reset code is %s. It expires in 10 minutes.

If you did not request a password reset, please secure your account.

Best regards,
The ShareMitra Team`, otp)

	if err := s.mail.Send(admin.Email, "Reset Your ShareMitra Admin Password", body); err != nil {
		log.WithError(err).WithField("email", admin.Email).Error("failed to send admin reset OTP email")
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	return nil
}

// ResetPassword completes an admin OTP password reset
func (s *adminService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	admin, err := s.adminRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin.ResetOTP == "" || admin.ResetOTP != req.OTP || time.Now().After(admin.ResetOTPExpiry) {
		return ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin.PasswordHash = string(hash)
	admin.ResetOTP = ""
	admin.ResetOTPExpiry = time.Time{}
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	return nil
}

// RequestEmailUpdate records a pending email change and sends the
// confirmation code to the CURRENT address, so a hijacked session alone
// cannot move the account.
func (s *adminService) RequestEmailUpdate(ctx context.Context, req *models.RequestEmailUpdateRequest) error {
	admin, err := s.findByAdminID(ctx, req.AdminID)
	if err != nil {
		return err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	admin.EmailChange = &models.EmailChangeRequest{
		OTP:      otp,
		NewEmail: normalizeEmail(req.NewEmail),
		Expiry:   time.Now().Add(otpTTL),
	}
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}

	body := fmt.Sprintf(`Hello,

A request was made to change this admin account's email to %s.

Your confirmation code is %s. It expires in 10 minutes.

If you did not request this change, please secure your account.

Best regards,
The ShareMitra Team`, admin.EmailChange.NewEmail, otp)

	if err := s.mail.Send(admin.Email, "Confirm Your ShareMitra Email Change", body); err != nil {
		log.WithError(err).WithField("email", admin.Email).Error("failed to send email change OTP")
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	return nil
}

// VerifyEmailUpdate applies a pending email change and reissues the
// session token for the new address
func (s *adminService) VerifyEmailUpdate(ctx context.Context, req *models.VerifyEmailUpdateRequest) (string, string, error) {
	admin, err := s.findByAdminID(ctx, req.AdminID)
	if err != nil {
		return "", "", err
	}
	if admin.EmailChange == nil {
		return "", "", ErrNoPendingRequest
	}
	if admin.EmailChange.OTP != req.OTP || time.Now().After(admin.EmailChange.Expiry) {
		return "", "", ErrInvalidOTP
	}

	admin.Email = admin.EmailChange.NewEmail
	admin.EmailChange = nil
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return "", "", fmt.Errorf("failed to update admin: %w", err)
	}

	token, err := utils.GenerateJWT(admin.AdminID, admin.Email, "admin", s.cfg)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue token: %w", err)
	}
	return admin.Email, token, nil
}

func (s *adminService) findByAdminID(ctx context.Context, adminID string) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByAdminID(ctx, adminID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	return admin, nil
}
