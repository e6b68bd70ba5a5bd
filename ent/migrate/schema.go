// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CommissionsColumns holds the columns for the "commissions" table.
	CommissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "earning_user_id", Type: field.TypeInt},
		{Name: "tier", Type: field.TypeInt},
		{Name: "commission_rate", Type: field.TypeFloat64},
		{Name: "base_amount", Type: field.TypeFloat64},
		{Name: "commission_amount", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString, Size: 8, Default: "USD"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "paid", "failed", "cancelled"}, Default: "pending"},
		{Name: "payment_transaction_id", Type: field.TypeInt, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source_transaction_id", Type: field.TypeInt},
		{Name: "recipient_user_id", Type: field.TypeInt},
	}
	// CommissionsTable holds the schema information for the "commissions" table.
	CommissionsTable = &schema.Table{
		Name:       "commissions",
		Columns:    CommissionsColumns,
		PrimaryKey: []*schema.Column{CommissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "commissions_transactions_commissions",
				Columns:    []*schema.Column{CommissionsColumns[12]},
				RefColumns: []*schema.Column{TransactionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "commissions_users_commissions_received",
				Columns:    []*schema.Column{CommissionsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "commission_source_transaction_id_tier",
				Unique:  true,
				Columns: []*schema.Column{CommissionsColumns[12], CommissionsColumns[2]},
			},
			{
				Name:    "commission_recipient_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{CommissionsColumns[13], CommissionsColumns[7]},
			},
			{
				Name:    "commission_status",
				Unique:  false,
				Columns: []*schema.Column{CommissionsColumns[7]},
			},
			{
				Name:    "commission_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommissionsColumns[11]},
			},
		},
	}
	// ReferralAccountsColumns holds the columns for the "referral_accounts" table.
	ReferralAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 12},
		{Name: "direct_referrals", Type: field.TypeJSON, Nullable: true},
		{Name: "tier1_referrer_id", Type: field.TypeInt, Nullable: true},
		{Name: "tier2_referrer_id", Type: field.TypeInt, Nullable: true},
		{Name: "total_referrals", Type: field.TypeInt, Default: 0},
		{Name: "active_referrals", Type: field.TypeInt, Default: 0},
		{Name: "total_commission_earned", Type: field.TypeFloat64, Default: 0},
		{Name: "tier1_commission_earned", Type: field.TypeFloat64, Default: 0},
		{Name: "tier2_commission_earned", Type: field.TypeFloat64, Default: 0},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"organic", "campaign", "influencer", "partner", "migration", "referral"}, Default: "organic"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_user_id", Type: field.TypeInt, Unique: true},
	}
	// ReferralAccountsTable holds the schema information for the "referral_accounts" table.
	ReferralAccountsTable = &schema.Table{
		Name:       "referral_accounts",
		Columns:    ReferralAccountsColumns,
		PrimaryKey: []*schema.Column{ReferralAccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "referral_accounts_users_referral_account",
				Columns:    []*schema.Column{ReferralAccountsColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "referralaccount_code",
				Unique:  true,
				Columns: []*schema.Column{ReferralAccountsColumns[1]},
			},
			{
				Name:    "referralaccount_owner_user_id",
				Unique:  true,
				Columns: []*schema.Column{ReferralAccountsColumns[16]},
			},
			{
				Name:    "referralaccount_is_active",
				Unique:  false,
				Columns: []*schema.Column{ReferralAccountsColumns[11]},
			},
			{
				Name:    "referralaccount_total_commission_earned",
				Unique:  false,
				Columns: []*schema.Column{ReferralAccountsColumns[7]},
			},
			{
				Name:    "referralaccount_source",
				Unique:  false,
				Columns: []*schema.Column{ReferralAccountsColumns[13]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString, Size: 8, Default: "USD"},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"subscription", "tip", "message", "post", "payout"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed"}, Default: "pending"},
		{Name: "sender_user_id", Type: field.TypeInt, Nullable: true},
		{Name: "reference", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recipient_user_id", Type: field.TypeInt, Nullable: true},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_users_transactions",
				Columns:    []*schema.Column{TransactionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_recipient_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[10], TransactionsColumns[4]},
			},
			{
				Name:    "transaction_type",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[3]},
			},
			{
				Name:    "transaction_status",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[4]},
			},
			{
				Name:    "transaction_created_at",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[9]},
			},
			{
				Name:    "transaction_reference",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "creator", "admin"}, Default: "user"},
		{Name: "payout_address", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[2]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
		},
	}
	// WalletsColumns holds the columns for the "wallets" table.
	WalletsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "balance", Type: field.TypeFloat64, Default: 0},
		{Name: "currency", Type: field.TypeString, Size: 8, Default: "USD"},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt, Unique: true},
	}
	// WalletsTable holds the schema information for the "wallets" table.
	WalletsTable = &schema.Table{
		Name:       "wallets",
		Columns:    WalletsColumns,
		PrimaryKey: []*schema.Column{WalletsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "wallets_users_wallet",
				Columns:    []*schema.Column{WalletsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "wallet_user_id",
				Unique:  true,
				Columns: []*schema.Column{WalletsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CommissionsTable,
		ReferralAccountsTable,
		TransactionsTable,
		UsersTable,
		WalletsTable,
	}
)

func init() {
	CommissionsTable.ForeignKeys[0].RefTable = TransactionsTable
	CommissionsTable.ForeignKeys[1].RefTable = UsersTable
	ReferralAccountsTable.ForeignKeys[0].RefTable = UsersTable
	TransactionsTable.ForeignKeys[0].RefTable = UsersTable
	WalletsTable.ForeignKeys[0].RefTable = UsersTable
}
