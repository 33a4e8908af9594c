package models

// UserAccount represents a Discord user's economy and leveling record.
// The leveling fields are persisted and returned verbatim; only Currency
// is mutated by this codebase, and only through an atomic delta.
type UserAccount struct {
	UserID     int64   `db:"user_id"`
	UserName   string  `db:"user_name"`
	GuildID    *int64  `db:"guild_id"`
	VIPTier    *int64  `db:"vip_tier"`
	VIPLevel   *int64  `db:"vip_level"`
	VIPExp     *int64  `db:"vip_exp"`
	LevelXp    *int64  `db:"level_xp"`
	Xp         *int64  `db:"xp"`
	ChatLvl    *int64  `db:"chat_lvl"`
	TotalXp    *int64  `db:"total_xp"`
	ChatExp    []byte  `db:"chat_exp"`
	Birthday   *string `db:"birthday"`
	LastXpGain *string `db:"last_xp_gain"`
	Currency   int64   `db:"currency"`
}

// Experience returns the ranking key used by the scoreboard. Accounts that
// never gained experience rank as zero.
func (u *UserAccount) Experience() int64 {
	if u.TotalXp == nil {
		return 0
	}
	return *u.TotalXp
}
