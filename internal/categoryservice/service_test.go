package categoryservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/internal/integrationtest/helpers"
)

func TestDefaultColor(t *testing.T) {
	got := DefaultColor("Groceries")

	require.Regexp(t, `^#[0-9a-f]{6}$`, got)
	require.Equal(t, got, DefaultColor("groceries"))
	require.NotEqual(t, got, DefaultColor("rent"))
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		arg           domain.CreateCategoryParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(c domain.Category, err error)
	}{
		{
			name: "OK",
			arg:  domain.CreateCategoryParams{Name: "food", Type: domain.TypeExpense, Color: "#ff0000"},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, c domain.Category) (domain.Category, error) {
						return c, nil
					})
			},
			checkResponse: func(c domain.Category, err error) {
				require.NoError(t, err)
				require.NotEmpty(t, c.ID)
				require.Equal(t, "food", c.Name)
				require.Equal(t, "#ff0000", c.Color)
				require.False(t, c.CreatedAt.IsZero())
			},
		},
		{
			name: "DefaultColor",
			arg:  domain.CreateCategoryParams{Name: "food", Type: domain.TypeExpense},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, c domain.Category) (domain.Category, error) {
						return c, nil
					})
			},
			checkResponse: func(c domain.Category, err error) {
				require.NoError(t, err)
				require.Equal(t, DefaultColor("food"), c.Color)
			},
		},
		{
			name: "NameTaken",
			arg:  domain.CreateCategoryParams{Name: "food", Type: domain.TypeExpense},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Category{}, domain.ErrCategoryNameTaken)
			},
			checkResponse: func(c domain.Category, err error) {
				require.Empty(t, c)
				require.EqualError(t, err, domain.ErrCategoryNameTaken.Error())
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			c, err := service.Create(context.Background(), tc.arg)
			tc.checkResponse(c, err)
		})
	}
}

func TestUpdate(t *testing.T) {
	stored := helpers.RandomCategory(domain.TypeExpense)
	newName := "utilities"
	newColor := "#00ff00"

	testCases := []struct {
		name          string
		arg           domain.UpdateCategoryParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(c domain.Category, err error)
	}{
		{
			name: "OK",
			arg:  domain.UpdateCategoryParams{Name: &newName, Color: &newColor},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(stored.ID)).
					Times(1).
					Return(stored, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, c domain.Category) (domain.Category, error) {
						return c, nil
					})
			},
			checkResponse: func(c domain.Category, err error) {
				require.NoError(t, err)
				require.Equal(t, newName, c.Name)
				require.Equal(t, newColor, c.Color)
				require.Equal(t, stored.Type, c.Type)
			},
		},
		{
			name: "NotFound",
			arg:  domain.UpdateCategoryParams{Name: &newName},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(stored.ID)).
					Times(1).
					Return(domain.Category{}, domain.ErrCategoryNotFound)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(c domain.Category, err error) {
				require.Empty(t, c)
				require.EqualError(t, err, domain.ErrCategoryNotFound.Error())
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			c, err := service.Update(context.Background(), stored.ID, tc.arg)
			tc.checkResponse(c, err)
		})
	}
}

func TestDelete(t *testing.T) {
	stored := helpers.RandomCategory(domain.TypeExpense)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepo(ctrl)
	service := New(repo)

	repo.EXPECT().Delete(gomock.Any(), gomock.Eq(stored.ID)).
		Times(1).
		Return(domain.ErrCategoryInUse)

	err := service.Delete(context.Background(), stored.ID)
	require.EqualError(t, err, domain.ErrCategoryInUse.Error())
}
