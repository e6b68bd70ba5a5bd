package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/pkg/commission"
	"github.com/fanvault/backend/pkg/ledger"
	"github.com/fanvault/backend/pkg/referral"
)

// NetworkConfig configures referral network generation
type NetworkConfig struct {
	Roots               int     // organically acquired users
	ReferralsPerRoot    int     // direct signups per root
	SecondLevelPerChild int     // signups under each direct referral
	TransactionsPerUser int     // completed transactions per referred user
	MinAmount           float64 // transaction amount range
	MaxAmount           float64
	PayoutAddressChance float64 // probability a user has a payout destination
	Seed                int64   // 0 = non-deterministic
}

// DefaultNetworkConfig returns a small but fully chained network
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Roots:               3,
		ReferralsPerRoot:    4,
		SecondLevelPerChild: 2,
		TransactionsPerUser: 3,
		MinAmount:           5,
		MaxAmount:           250,
		PayoutAddressChance: 0.8,
	}
}

// Generator builds realistic referral networks for seeds and demos
type Generator struct {
	db        *ent.Client
	referrals *referral.Service
	ledger    *ledger.Service
	faker     *gofakeit.Faker
	rng       *rand.Rand
}

// NewGenerator creates a network generator. A non-zero seed makes output
// reproducible.
func NewGenerator(db *ent.Client, referrals *referral.Service, ledgerService *ledger.Service, seed int64) *Generator {
	if seed == 0 {
		seed = gofakeit.New(0).Int64()
	}
	return &Generator{
		db:        db,
		referrals: referrals,
		ledger:    ledgerService,
		faker:     gofakeit.New(seed),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// NetworkResult reports what a generation run created
type NetworkResult struct {
	Users        int
	Attributed   int
	Transactions int
}

// GenerateNetwork creates a two-level referral network: roots sign up
// organically, their referrals sign up with the root's code, and the second
// level signs up with a first-level code. Every referred user then earns
// completed transactions so commissions flow through both tiers.
func (g *Generator) GenerateNetwork(ctx context.Context, cfg NetworkConfig) (*NetworkResult, error) {
	result := &NetworkResult{}

	for r := 0; r < cfg.Roots; r++ {
		root, rootCode, err := g.createUser(ctx, cfg, "")
		if err != nil {
			return result, err
		}
		result.Users++
		_ = root

		for c := 0; c < cfg.ReferralsPerRoot; c++ {
			child, childCode, err := g.createUser(ctx, cfg, rootCode)
			if err != nil {
				return result, err
			}
			result.Users++
			result.Attributed++

			if err := g.earnTransactions(ctx, cfg, child.ID, result); err != nil {
				return result, err
			}

			for gc := 0; gc < cfg.SecondLevelPerChild; gc++ {
				grandchild, _, err := g.createUser(ctx, cfg, childCode)
				if err != nil {
					return result, err
				}
				result.Users++
				result.Attributed++

				if err := g.earnTransactions(ctx, cfg, grandchild.ID, result); err != nil {
					return result, err
				}
			}
		}
	}

	return result, nil
}

// createUser inserts a fake user and attributes it with the given code
// (empty = organic). Returns the user and its own referral code.
func (g *Generator) createUser(ctx context.Context, cfg NetworkConfig, withCode string) (*ent.User, string, error) {
	username := g.uniqueUsername()

	create := g.db.User.
		Create().
		SetUsername(username).
		SetEmail(fmt.Sprintf("%s@%s", username, g.faker.DomainName())).
		SetPasswordHash("$2a$10$seeded.user.placeholder.hash.value.demo").
		SetDisplayName(g.faker.Name())
	if g.rng.Float64() < cfg.PayoutAddressChance {
		create.SetPayoutAddress(g.faker.UUID())
	}

	u, err := create.Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create seed user: %w", err)
	}

	attr, err := g.referrals.AttributeNewUser(ctx, u.ID, u.Username, withCode)
	if err != nil {
		return nil, "", fmt.Errorf("failed to attribute seed user %s: %w", u.Username, err)
	}

	return u, attr.Code, nil
}

// earnTransactions records and completes transactions for one user, which
// drives commission creation through the normal path.
func (g *Generator) earnTransactions(ctx context.Context, cfg NetworkConfig, userID int, result *NetworkResult) error {
	types := []string{"subscription", "tip", "message", "post"}

	for t := 0; t < cfg.TransactionsPerUser; t++ {
		amount := cfg.MinAmount + g.rng.Float64()*(cfg.MaxAmount-cfg.MinAmount)
		amount = commission.RoundCents(amount)

		txn, err := g.ledger.Record(ctx, ledger.RecordInput{
			Amount:          amount,
			Type:            types[g.rng.Intn(len(types))],
			RecipientUserID: &userID,
			Description:     g.faker.Sentence(4),
		})
		if err != nil {
			return fmt.Errorf("failed to record seed transaction: %w", err)
		}

		if _, _, err := g.ledger.Complete(ctx, txn.ID); err != nil {
			return fmt.Errorf("failed to complete seed transaction: %w", err)
		}
		result.Transactions++
	}

	return nil
}

func (g *Generator) uniqueUsername() string {
	base := strings.ToLower(g.faker.Username())
	return fmt.Sprintf("%s%d", base, g.rng.Intn(100000))
}
