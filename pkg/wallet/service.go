package wallet

import (
	"context"
	"fmt"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/wallet"
	"github.com/fanvault/backend/pkg/domain"
)

// Service handles balance wallets. Wallets are created lazily on first credit.
type Service struct {
	db *ent.Client
}

// NewService creates a new wallet service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Credit adds amount to a user's balance, creating the wallet if needed.
// The balance update is an atomic increment, not read-modify-write.
func (s *Service) Credit(ctx context.Context, userID int, amount float64) error {
	n, err := s.db.Wallet.
		Update().
		Where(wallet.UserIDEQ(userID)).
		AddBalance(amount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.db.Wallet.
		Create().
		SetUserID(userID).
		SetBalance(amount).
		Save(ctx)
	if err != nil {
		// Lost the create race; retry as an increment.
		if ent.IsConstraintError(err) {
			_, err = s.db.Wallet.
				Update().
				Where(wallet.UserIDEQ(userID)).
				AddBalance(amount).
				Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to create wallet: %w", err)
		}
	}

	return nil
}

// Get returns a user's wallet
func (s *Service) Get(ctx context.Context, userID int) (*ent.Wallet, error) {
	w, err := s.db.Wallet.
		Query().
		Where(wallet.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("wallet")
		}
		return nil, fmt.Errorf("failed to query wallet: %w", err)
	}
	return w, nil
}
