package testutil

import (
	"context"
	"testing"

	"cardinal/models"
)

// CreateTestAccount inserts a user account row with the given balance.
// Account creation is owned by an external onboarding collaborator in
// production, so tests seed rows directly.
func CreateTestAccount(t *testing.T, db *TestDatabase, userID int64, userName string, currency int64) *models.UserAccount {
	t.Helper()

	query := `
		INSERT INTO user_accounts (user_id, user_name, currency)
		VALUES (?, ?, ?)
	`
	if _, err := db.DB.ExecContext(context.Background(), query, userID, userName, currency); err != nil {
		t.Fatalf("failed to insert test account %d: %v", userID, err)
	}

	return &models.UserAccount{UserID: userID, UserName: userName, Currency: currency}
}

// CreateTestAccountWithXp inserts a user account row with a total
// experience value for ranking tests.
func CreateTestAccountWithXp(t *testing.T, db *TestDatabase, userID int64, userName string, totalXp int64) *models.UserAccount {
	t.Helper()

	query := `
		INSERT INTO user_accounts (user_id, user_name, total_xp, currency)
		VALUES (?, ?, ?, 0)
	`
	if _, err := db.DB.ExecContext(context.Background(), query, userID, userName, totalXp); err != nil {
		t.Fatalf("failed to insert test account %d: %v", userID, err)
	}

	return &models.UserAccount{UserID: userID, UserName: userName, TotalXp: &totalXp}
}

// CreateTestGuildConfig inserts a guild config row with raw disabled_cmds
// text, letting tests exercise both valid and malformed stored forms.
func CreateTestGuildConfig(t *testing.T, db *TestDatabase, guildID int64, rawDisabledCmds string) {
	t.Helper()

	query := `
		INSERT INTO guild_configs (guild_id, log_enabled, disabled_cmds)
		VALUES (?, 0, ?)
	`
	if _, err := db.DB.ExecContext(context.Background(), query, guildID, rawDisabledCmds); err != nil {
		t.Fatalf("failed to insert test guild config %d: %v", guildID, err)
	}
}
