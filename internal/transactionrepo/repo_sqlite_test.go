package transactionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlite/ledgerlite/internal/categoryrepo"
	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/internal/integrationtest"
	"github.com/ledgerlite/ledgerlite/internal/integrationtest/helpers"
)

func createTestCategory(t *testing.T, repo *categoryrepo.RepoSQLite) domain.Category {
	t.Helper()

	category, err := repo.Create(context.Background(), helpers.RandomCategory(domain.TypeExpense))
	require.NoError(t, err)

	return category
}

func TestCreate(t *testing.T) {
	db := integrationtest.SetupDB(t)
	repo := NewRepoSQLite(db)
	category := createTestCategory(t, categoryrepo.NewRepoSQLite(db))

	want := helpers.RandomTransaction(category.ID)

	got, err := repo.Create(context.Background(), want)
	require.NoError(t, err)

	compareTimes := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareTimes); diff != "" {
		t.Errorf("created transaction mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateUnknownCategory(t *testing.T) {
	db := integrationtest.SetupDB(t)
	repo := NewRepoSQLite(db)

	tx := helpers.RandomTransaction("no-such-category")

	_, err := repo.Create(context.Background(), tx)
	require.EqualError(t, err, domain.ErrCategoryNotFound.Error())
}

func TestGet(t *testing.T) {
	db := integrationtest.SetupDB(t)
	repo := NewRepoSQLite(db)
	category := createTestCategory(t, categoryrepo.NewRepoSQLite(db))

	created, err := repo.Create(context.Background(), helpers.RandomTransaction(category.ID))
	require.NoError(t, err)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)

	compareTimes := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(created, got, compareTimes); diff != "" {
		t.Errorf("transaction mismatch (-want +got):\n%s", diff)
	}

	_, err = repo.Get(context.Background(), "missing")
	require.EqualError(t, err, domain.ErrTransactionNotFound.Error())
}

func TestList(t *testing.T) {
	db := integrationtest.SetupDB(t)
	repo := NewRepoSQLite(db)
	category := createTestCategory(t, categoryrepo.NewRepoSQLite(db))

	older := helpers.RandomTransaction(category.ID)
	older.Date = "2024-01-01"
	newer := helpers.RandomTransaction(category.ID)
	newer.Date = "2024-06-01"

	for _, tx := range []domain.Transaction{older, newer} {
		_, err := repo.Create(context.Background(), tx)
		require.NoError(t, err)
	}

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, newer.ID, got[0].ID)
	require.Equal(t, older.ID, got[1].ID)
}

func TestUpdate(t *testing.T) {
	db := integrationtest.SetupDB(t)
	repo := NewRepoSQLite(db)
	category := createTestCategory(t, categoryrepo.NewRepoSQLite(db))

	created, err := repo.Create(context.Background(), helpers.RandomTransaction(category.ID))
	require.NoError(t, err)

	created.Amount = "77.70"
	created.Note = "changed"
	created.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	got, err := repo.Update(context.Background(), created)
	require.NoError(t, err)
	require.Equal(t, "77.70", got.Amount)
	require.Equal(t, "changed", got.Note)

	missing := created
	missing.ID = "missing"

	_, err = repo.Update(context.Background(), missing)
	require.EqualError(t, err, domain.ErrTransactionNotFound.Error())
}

func TestDelete(t *testing.T) {
	db := integrationtest.SetupDB(t)
	repo := NewRepoSQLite(db)
	category := createTestCategory(t, categoryrepo.NewRepoSQLite(db))

	created, err := repo.Create(context.Background(), helpers.RandomTransaction(category.ID))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err = repo.Get(context.Background(), created.ID)
	require.EqualError(t, err, domain.ErrTransactionNotFound.Error())

	err = repo.Delete(context.Background(), created.ID)
	require.EqualError(t, err, domain.ErrTransactionNotFound.Error())
}
