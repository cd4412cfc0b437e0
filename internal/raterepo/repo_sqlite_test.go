package raterepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerlite/ledgerlite/internal/fx"
	"github.com/ledgerlite/ledgerlite/internal/integrationtest"
	"github.com/ledgerlite/ledgerlite/pkg/currencypkg"
)

func TestGetDefaults(t *testing.T) {
	db := integrationtest.SetupDB(t)
	repo := NewRepoSQLite(db)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, fx.DefaultTable(), got)
}

func TestSetThenGet(t *testing.T) {
	db := integrationtest.SetupDB(t)
	repo := NewRepoSQLite(db)

	want := fx.Table{
		currencypkg.Base: 1,
		currencypkg.USD:  1.11,
		currencypkg.RUB:  90,
	}

	require.NoError(t, repo.Set(context.Background(), want))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Replacing with a smaller table removes stale currencies.
	smaller := fx.Table{currencypkg.Base: 1, currencypkg.USD: 1.2}
	require.NoError(t, repo.Set(context.Background(), smaller))

	got, err = repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, smaller, got)
	require.False(t, got.Has(currencypkg.RUB))
}
