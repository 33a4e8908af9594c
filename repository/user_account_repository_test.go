package repository

import (
	"context"
	"sync"
	"testing"

	"cardinal/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAccountRepository_GetByUserID(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("missing account is not an error", func(t *testing.T) {
		account, err := repo.GetByUserID(ctx, 404404)
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("existing account", func(t *testing.T) {
		testutil.CreateTestAccount(t, testDB, 123456, "testuser", 2500)

		account, err := repo.GetByUserID(ctx, 123456)
		require.NoError(t, err)
		require.NotNil(t, account)

		assert.Equal(t, int64(123456), account.UserID)
		assert.Equal(t, "testuser", account.UserName)
		assert.Equal(t, int64(2500), account.Currency)
		assert.Nil(t, account.TotalXp)
	})
}

func TestUserAccountRepository_ApplyCurrencyDelta(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("credit and debit", func(t *testing.T) {
		testutil.CreateTestAccount(t, testDB, 1001, "gambler", 100)

		newBalance, err := repo.ApplyCurrencyDelta(ctx, 1001, 50)
		require.NoError(t, err)
		assert.Equal(t, int64(150), newBalance)

		newBalance, err = repo.ApplyCurrencyDelta(ctx, 1001, -30)
		require.NoError(t, err)
		assert.Equal(t, int64(120), newBalance)

		account, err := repo.GetByUserID(ctx, 1001)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, int64(120), account.Currency)
	})

	t.Run("missing account returns ErrNotFound and creates nothing", func(t *testing.T) {
		_, err := repo.ApplyCurrencyDelta(ctx, 999999, 50)
		assert.ErrorIs(t, err, ErrNotFound)

		account, err := repo.GetByUserID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, account)
	})
}

func TestUserAccountRepository_ApplyCurrencyDelta_Concurrent(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("two racing deltas", func(t *testing.T) {
		testutil.CreateTestAccount(t, testDB, 2001, "racer", 100)

		var wg sync.WaitGroup
		errs := make(chan error, 2)
		for _, delta := range []int64{50, -30} {
			wg.Add(1)
			go func(d int64) {
				defer wg.Done()
				_, err := repo.ApplyCurrencyDelta(ctx, 2001, d)
				errs <- err
			}(delta)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		account, err := repo.GetByUserID(ctx, 2001)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, int64(120), account.Currency)
	})

	t.Run("no delta is lost under heavy interleaving", func(t *testing.T) {
		testutil.CreateTestAccount(t, testDB, 2002, "grinder", 1000)

		const workers = 40
		deltas := make([]int64, workers)
		var expected int64 = 1000
		for i := range deltas {
			// alternating credits and debits of varying size
			d := int64(i + 1)
			if i%2 == 1 {
				d = -d
			}
			deltas[i] = d
			expected += d
		}

		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for _, delta := range deltas {
			wg.Add(1)
			go func(d int64) {
				defer wg.Done()
				_, err := repo.ApplyCurrencyDelta(ctx, 2002, d)
				errs <- err
			}(delta)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		account, err := repo.GetByUserID(ctx, 2002)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, expected, account.Currency)
	})
}

func TestUserAccountRepository_GetTopByExperience(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserAccountRepository(testDB.DB)
	ctx := context.Background()

	testutil.CreateTestAccountWithXp(t, testDB, 3001, "low", 10)
	testutil.CreateTestAccountWithXp(t, testDB, 3002, "high", 50)
	testutil.CreateTestAccountWithXp(t, testDB, 3003, "mid", 30)
	testutil.CreateTestAccountWithXp(t, testDB, 3004, "bottom", 5)

	t.Run("limit bounds and descending order", func(t *testing.T) {
		accounts, err := repo.GetTopByExperience(ctx, 3)
		require.NoError(t, err)
		require.Len(t, accounts, 3)

		assert.Equal(t, int64(50), accounts[0].Experience())
		assert.Equal(t, int64(30), accounts[1].Experience())
		assert.Equal(t, int64(10), accounts[2].Experience())
	})

	t.Run("limit larger than table", func(t *testing.T) {
		accounts, err := repo.GetTopByExperience(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, accounts, 4)
	})
}
