package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cardinal/database"
	"cardinal/models"
)

// UserAccountRepository provides access to user economy records
type UserAccountRepository struct {
	q queryable
}

// NewUserAccountRepository creates a new user account repository
func NewUserAccountRepository(db *database.DB) *UserAccountRepository {
	return &UserAccountRepository{q: db.DB}
}

const userAccountColumns = `
	user_id, user_name, guild_id,
	vip_tier, vip_level, vip_exp,
	level_xp, xp, chat_lvl, total_xp, chat_exp,
	birthday, last_xp_gain, currency
`

func scanUserAccount(row interface{ Scan(...any) error }) (*models.UserAccount, error) {
	var account models.UserAccount
	err := row.Scan(
		&account.UserID,
		&account.UserName,
		&account.GuildID,
		&account.VIPTier,
		&account.VIPLevel,
		&account.VIPExp,
		&account.LevelXp,
		&account.Xp,
		&account.ChatLvl,
		&account.TotalXp,
		&account.ChatExp,
		&account.Birthday,
		&account.LastXpGain,
		&account.Currency,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByUserID retrieves an account by user ID. A missing account is a
// normal outcome and returns (nil, nil).
func (r *UserAccountRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserAccount, error) {
	query := `SELECT ` + userAccountColumns + ` FROM user_accounts WHERE user_id = ?`

	account, err := scanUserAccount(r.q.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account for user %d: %w", userID, err)
	}

	return account, nil
}

// GetTopByExperience returns up to limit accounts ordered by total
// experience, highest first. Ties fall back to the engine's natural order,
// which is unspecified.
func (r *UserAccountRepository) GetTopByExperience(ctx context.Context, limit int) ([]*models.UserAccount, error) {
	query := `SELECT ` + userAccountColumns + `
		FROM user_accounts
		ORDER BY total_xp DESC
		LIMIT ?`

	rows, err := r.q.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.UserAccount
	for rows.Next() {
		account, err := scanUserAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// ApplyCurrencyDelta adjusts an account's currency by delta and returns the
// resulting balance. The increment is evaluated inside the store in a single
// statement, so concurrent deltas against the same account always sum
// correctly. Applying a delta to a missing account returns ErrNotFound and
// never creates a row.
func (r *UserAccountRepository) ApplyCurrencyDelta(ctx context.Context, userID int64, delta int64) (int64, error) {
	query := `
		UPDATE user_accounts
		SET currency = currency + ?
		WHERE user_id = ?
		RETURNING currency
	`

	var newBalance int64
	err := r.q.QueryRowContext(ctx, query, delta, userID).Scan(&newBalance)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to apply currency delta for user %d: %w", userID, err)
	}

	return newBalance, nil
}
