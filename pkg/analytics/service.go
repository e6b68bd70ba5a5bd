package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/fanvault/backend/ent"
	"github.com/fanvault/backend/ent/commission"
	"github.com/fanvault/backend/ent/referralaccount"
	"github.com/fanvault/backend/ent/user"
	"github.com/fanvault/backend/pkg/cache"
	"github.com/fanvault/backend/pkg/domain"
	"github.com/fanvault/backend/pkg/logger"
)

const (
	leaderboardCacheKey = "analytics:leaderboard"
	maxLeaderboardSize  = 100
)

// CacheMetrics counts cache outcomes. May be nil.
type CacheMetrics interface {
	RecordCacheHit(cacheType string)
	RecordCacheMiss(cacheType string)
}

// Service answers referral-program reporting queries. The leaderboard is
// cached in Redis; everything else hits the database directly.
type Service struct {
	db       *ent.Client
	cache    *cache.Client
	cacheTTL time.Duration
	metrics  CacheMetrics
	log      logger.Logger
}

// NewService creates a new analytics service. cache may be nil, in which case
// every leaderboard request recomputes; metrics may be nil.
func NewService(db *ent.Client, cacheClient *cache.Client, cacheTTL time.Duration, m CacheMetrics, log logger.Logger) *Service {
	return &Service{db: db, cache: cacheClient, cacheTTL: cacheTTL, metrics: m, log: log}
}

// UserSummary is one user's referral program standing
type UserSummary struct {
	UserID                int     `json:"user_id"`
	Code                  string  `json:"code"`
	TotalReferrals        int     `json:"total_referrals"`
	ActiveReferrals       int     `json:"active_referrals"`
	TotalCommissionEarned float64 `json:"total_commission_earned"`
	Tier1Commission       float64 `json:"tier1_commission"`
	Tier2Commission       float64 `json:"tier2_commission"`
	PendingAmount         float64 `json:"pending_amount"`
	PaidAmount            float64 `json:"paid_amount"`
	PendingCount          int     `json:"pending_count"`
	PaidCount             int     `json:"paid_count"`
	LastActivityAt        string  `json:"last_activity_at"`
}

// GetUserSummary returns the referral standing of one user: lifetime counters
// from the account plus live pending/paid aggregates from the commission table.
func (s *Service) GetUserSummary(ctx context.Context, userID int) (*UserSummary, error) {
	account, err := s.db.ReferralAccount.
		Query().
		Where(referralaccount.OwnerUserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("referral account")
		}
		return nil, fmt.Errorf("failed to load referral account: %w", err)
	}

	summary := &UserSummary{
		UserID:                account.OwnerUserID,
		Code:                  account.Code,
		TotalReferrals:        account.TotalReferrals,
		ActiveReferrals:       account.ActiveReferrals,
		TotalCommissionEarned: account.TotalCommissionEarned,
		Tier1Commission:       account.Tier1CommissionEarned,
		Tier2Commission:       account.Tier2CommissionEarned,
		LastActivityAt:        account.LastActivityAt.Format(time.RFC3339),
	}

	var rows []struct {
		Status string  `json:"status"`
		Sum    float64 `json:"sum"`
		Count  int     `json:"count"`
	}
	err = s.db.Commission.
		Query().
		Where(commission.RecipientUserIDEQ(userID)).
		GroupBy(commission.FieldStatus).
		Aggregate(
			ent.As(ent.Sum(commission.FieldCommissionAmount), "sum"),
			ent.Count(),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate commissions: %w", err)
	}

	for _, row := range rows {
		switch row.Status {
		case string(commission.StatusPending):
			summary.PendingAmount = row.Sum
			summary.PendingCount = row.Count
		case string(commission.StatusPaid):
			summary.PaidAmount = row.Sum
			summary.PaidCount = row.Count
		}
	}

	return summary, nil
}

// LeaderboardEntry is one row of the referral leaderboard
type LeaderboardEntry struct {
	Rank                  int     `json:"rank"`
	UserID                int     `json:"user_id"`
	Username              string  `json:"username"`
	TotalReferrals        int     `json:"total_referrals"`
	TotalCommissionEarned float64 `json:"total_commission_earned"`
}

// GetLeaderboard returns the top referrers by lifetime commission, referral
// count breaking ties. Results are cached; pass limit <= 0 for the full
// cached board.
func (s *Service) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	if s.cache != nil {
		var cached []LeaderboardEntry
		err := s.cache.GetJSON(ctx, leaderboardCacheKey, &cached)
		if err == nil {
			if s.metrics != nil {
				s.metrics.RecordCacheHit("leaderboard")
			}
			if len(cached) > limit {
				cached = cached[:limit]
			}
			return cached, nil
		}
		if cache.IsMiss(err) {
			if s.metrics != nil {
				s.metrics.RecordCacheMiss("leaderboard")
			}
		} else {
			s.log.Warn("leaderboard cache read failed", "error", err)
		}
	}

	entries, err := s.computeLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, leaderboardCacheKey, entries, s.cacheTTL); err != nil {
			s.log.Warn("leaderboard cache write failed", "error", err)
		}
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// RefreshLeaderboard recomputes the board and replaces the cached copy.
// Used by the warmup job so user requests rarely pay the query cost.
func (s *Service) RefreshLeaderboard(ctx context.Context) error {
	entries, err := s.computeLeaderboard(ctx)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.SetJSON(ctx, leaderboardCacheKey, entries, s.cacheTTL)
}

func (s *Service) computeLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	// Zero-commission referrers still rank by their signups; only accounts
	// with no referral activity at all stay off the board.
	accounts, err := s.db.ReferralAccount.
		Query().
		Where(
			referralaccount.IsActiveEQ(true),
			referralaccount.Or(
				referralaccount.TotalCommissionEarnedGT(0),
				referralaccount.TotalReferralsGT(0),
			),
		).
		Order(
			ent.Desc(referralaccount.FieldTotalCommissionEarned),
			ent.Desc(referralaccount.FieldTotalReferrals),
		).
		Limit(maxLeaderboardSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard accounts: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(accounts))
	for i, acc := range accounts {
		owner, err := s.db.User.
			Query().
			Where(user.IDEQ(acc.OwnerUserID)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load leaderboard user %d: %w", acc.OwnerUserID, err)
		}
		entries = append(entries, LeaderboardEntry{
			Rank:                  i + 1,
			UserID:                acc.OwnerUserID,
			Username:              owner.Username,
			TotalReferrals:        acc.TotalReferrals,
			TotalCommissionEarned: acc.TotalCommissionEarned,
		})
	}
	return entries, nil
}

// GlobalStats is the program-wide report for a time window
type GlobalStats struct {
	From                time.Time          `json:"from"`
	To                  time.Time          `json:"to"`
	TotalAccounts       int                `json:"total_accounts"`
	AttributedAccounts  int                `json:"attributed_accounts"`
	CommissionsByStatus map[string]Bucket  `json:"commissions_by_status"`
	CommissionsByType   map[string]Bucket  `json:"commissions_by_type"`
	TierSplit           map[string]float64 `json:"tier_split"`
	TotalCommissionPaid float64            `json:"total_commission_paid"`
}

// Bucket is a count plus a summed amount
type Bucket struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// GetGlobalStats reports program-wide numbers for commissions created in
// [from, to). Account counts are all-time, not windowed.
func (s *Service) GetGlobalStats(ctx context.Context, from, to time.Time) (*GlobalStats, error) {
	stats := &GlobalStats{
		From:                from,
		To:                  to,
		CommissionsByStatus: map[string]Bucket{},
		CommissionsByType:   map[string]Bucket{},
		TierSplit:           map[string]float64{},
	}

	var err error
	stats.TotalAccounts, err = s.db.ReferralAccount.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count referral accounts: %w", err)
	}

	stats.AttributedAccounts, err = s.db.ReferralAccount.
		Query().
		Where(referralaccount.Tier1ReferrerIDNotNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count attributed accounts: %w", err)
	}

	commissions, err := s.db.Commission.
		Query().
		Where(
			commission.CreatedAtGTE(from),
			commission.CreatedAtLT(to),
		).
		WithSourceTransaction().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query window commissions: %w", err)
	}

	for _, c := range commissions {
		status := string(c.Status)
		b := stats.CommissionsByStatus[status]
		b.Count++
		b.Amount += c.CommissionAmount
		stats.CommissionsByStatus[status] = b

		if txn := c.Edges.SourceTransaction; txn != nil {
			t := string(txn.Type)
			tb := stats.CommissionsByType[t]
			tb.Count++
			tb.Amount += c.CommissionAmount
			stats.CommissionsByType[t] = tb
		}

		stats.TierSplit[fmt.Sprintf("tier%d", c.Tier)] += c.CommissionAmount

		if c.Status == commission.StatusPaid {
			stats.TotalCommissionPaid += c.CommissionAmount
		}
	}

	return stats, nil
}
