package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daphne-i/pantrypal/common"
	"github.com/daphne-i/pantrypal/fsdal"
	"github.com/daphne-i/pantrypal/profile/dal/mocks"
	"github.com/daphne-i/pantrypal/profile/domain"
)

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("missing profile yields defaults", func(t *testing.T) {
		d := mocks.Profiles{}
		d.On("Get", ctx, "user-1").Return(nil, fsdal.ErrNotFound).Once()

		s := &profileService{dal: &d}

		profile, err := s.GetProfile(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, &domain.UserProfile{ID: "user-1", Theme: DefaultTheme}, profile)
		d.AssertExpectations(t)
	})

	t.Run("stored profile is returned as-is", func(t *testing.T) {
		d := mocks.Profiles{}
		d.On("Get", ctx, "user-1").Return(&domain.UserProfile{
			ID:            "user-1",
			Theme:         "dark",
			MonthlyBudget: common.Float(5000),
		}, nil).Once()

		s := &profileService{dal: &d}

		profile, err := s.GetProfile(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, "dark", profile.Theme)
		assert.Equal(t, common.Float(5000), profile.MonthlyBudget)
	})
}

func TestProfileService_SetTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("known theme is saved", func(t *testing.T) {
		d := mocks.Profiles{}
		d.On("Save", ctx, "user-1", map[string]interface{}{
			"theme": "dark",
		}, true).Return(nil).Once()

		s := &profileService{dal: &d}

		assert.NoError(t, s.SetTheme(ctx, "user-1", "dark"))
		d.AssertExpectations(t)
	})

	t.Run("unknown theme is rejected", func(t *testing.T) {
		d := mocks.Profiles{}
		s := &profileService{dal: &d}

		assert.ErrorIs(t, s.SetTheme(ctx, "user-1", "solarized"), ErrInvalidTheme)
		d.AssertNotCalled(t, "Save")
	})
}

func TestProfileService_SetBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("budget value is saved", func(t *testing.T) {
		d := mocks.Profiles{}
		d.On("Save", ctx, "user-1", map[string]interface{}{
			"monthlyBudget": common.Float(7500),
		}, true).Return(nil).Once()

		s := &profileService{dal: &d}

		assert.NoError(t, s.SetBudget(ctx, "user-1", common.Float(7500)))
		d.AssertExpectations(t)
	})

	t.Run("clearing the budget writes an explicit null", func(t *testing.T) {
		d := mocks.Profiles{}
		d.On("Save", ctx, "user-1", map[string]interface{}{
			"monthlyBudget": (*float64)(nil),
		}, true).Return(nil).Once()

		s := &profileService{dal: &d}

		assert.NoError(t, s.SetBudget(ctx, "user-1", nil))
		d.AssertExpectations(t)
	})
}
