package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/user"
	"github.com/fanvault/backend/pkg/auth"
	"github.com/fanvault/backend/pkg/domain"
	"github.com/fanvault/backend/pkg/logger"
	"github.com/fanvault/backend/pkg/referral"
	"github.com/go-playground/validator/v10"
)

// Service is the user directory: registration, authentication and lookups.
type Service struct {
	db        *ent.Client
	referrals *referral.Service
	log       logger.Logger
	validate  *validator.Validate
}

// NewService creates a new users service
func NewService(db *ent.Client, referrals *referral.Service, log logger.Logger) *Service {
	return &Service{
		db:        db,
		referrals: referrals,
		log:       log,
		validate:  validator.New(),
	}
}

// RegisterInput is the payload for creating a new user
type RegisterInput struct {
	Username     string `json:"username" validate:"required,min=3,max=64,alphanum"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	DisplayName  string `json:"display_name" validate:"omitempty,max=128"`
	ReferralCode string `json:"referral_code" validate:"omitempty,min=6,max=12"`
}

// Register creates a user and attributes the signup to a referrer when a
// code was supplied. Attribution failures are logged and swallowed:
// registration succeeds regardless, per the platform contract.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*ent.User, *referral.Attribution, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, nil, domain.NewValidationError(err.Error())
	}

	u, err := s.db.User.
		Create().
		SetUsername(strings.ToLower(input.Username)).
		SetEmail(strings.ToLower(input.Email)).
		SetPasswordHash(mustHash(input.Password)).
		SetDisplayName(input.DisplayName).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, nil, domain.NewConflictError("username or email already taken")
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	code := strings.ToUpper(strings.TrimSpace(input.ReferralCode))
	attribution, err := s.referrals.AttributeNewUser(ctx, u.ID, u.Username, code)
	if err != nil {
		s.log.Warn("referral attribution failed, user registered without a chain",
			"user_id", u.ID,
			"referral_code", code,
			"error", err)
		attribution = nil
	}

	return u, attribution, nil
}

// Authenticate verifies credentials and records the login
func (s *Service) Authenticate(ctx context.Context, username, password string) (*ent.User, error) {
	u, err := s.db.User.
		Query().
		Where(
			user.Or(
				user.UsernameEQ(strings.ToLower(username)),
				user.EmailEQ(strings.ToLower(username)),
			),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError()
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !u.IsActive {
		return nil, domain.NewForbiddenError("account is disabled")
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, domain.NewUnauthorizedError()
	}

	u, err = s.db.User.
		UpdateOne(u).
		SetLastLoginAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return u, nil
}

// FindByID returns a user by id
func (s *Service) FindByID(ctx context.Context, id int) (*ent.User, error) {
	u, err := s.db.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return u, nil
}

// FindByUsername returns a user by username
func (s *Service) FindByUsername(ctx context.Context, username string) (*ent.User, error) {
	u, err := s.db.User.
		Query().
		Where(user.UsernameEQ(strings.ToLower(username))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// SetPayoutAddress configures where commission payouts for a user go
func (s *Service) SetPayoutAddress(ctx context.Context, userID int, address string) error {
	if strings.TrimSpace(address) == "" {
		return domain.NewValidationError("payout address cannot be empty")
	}

	_, err := s.db.User.
		UpdateOneID(userID).
		SetPayoutAddress(address).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("user")
		}
		return fmt.Errorf("failed to set payout address: %w", err)
	}
	return nil
}

func mustHash(password string) string {
	hash, err := auth.HashPassword(password)
	if err != nil {
		// bcrypt only fails on cost misconfiguration, which is a programmer error
		panic(fmt.Sprintf("password hashing failed: %v", err))
	}
	return hash
}
