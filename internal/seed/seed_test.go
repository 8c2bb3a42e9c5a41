package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uptalent/uptalent-server/internal/hash"
	"github.com/uptalent/uptalent-server/internal/mocks"
	"github.com/uptalent/uptalent-server/internal/model"
	"github.com/uptalent/uptalent-server/internal/testutil"
)

func TestTalents(t *testing.T) {
	ctx := context.Background()
	logger := testutil.MakeNoopLogger()
	hasher := hash.NewBcrypt()

	t.Run("creates requested number of talents", func(t *testing.T) {
		store := new(mocks.TalentStore)
		store.On("ExistsByEmail", ctx, mock.AnythingOfType("string")).Return(false, nil).Times(5)
		store.On("Create", ctx, mock.AnythingOfType("model.Talent")).Return(model.Talent{ID: 1}, nil).Times(5)

		err := Talents(ctx, store, hasher, 5, logger)

		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("skips existing emails", func(t *testing.T) {
		store := new(mocks.TalentStore)
		store.On("ExistsByEmail", ctx, mock.AnythingOfType("string")).Return(true, nil).Times(3)

		err := Talents(ctx, store, hasher, 3, logger)

		require.NoError(t, err)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("generated talent is complete", func(t *testing.T) {
		store := new(mocks.TalentStore)
		var got model.Talent
		store.On("ExistsByEmail", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
		store.On("Create", ctx, mock.AnythingOfType("model.Talent")).
			Run(func(args mock.Arguments) {
				got = args.Get(1).(model.Talent)
			}).
			Return(model.Talent{ID: 1}, nil).Once()

		err := Talents(ctx, store, hasher, 1, logger)

		require.NoError(t, err)
		assert.NotEmpty(t, got.Firstname)
		assert.NotEmpty(t, got.Lastname)
		assert.Contains(t, got.Email, "@gmail.com")
		assert.GreaterOrEqual(t, len(got.Skills), 3)
		assert.LessOrEqual(t, len(got.Skills), 5)
		assert.NotNil(t, got.Avatar)
		assert.NotNil(t, got.Banner)
		assert.NotNil(t, got.Location)
		assert.NotNil(t, got.Birthday)
		assert.True(t, hasher.Matches("1234567890", got.PasswordHash))
	})
}
