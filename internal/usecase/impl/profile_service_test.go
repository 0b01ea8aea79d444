package impl

import (
	"context"
	"testing"

	"rently/internal/domain/entity"
	domainerrors "rently/internal/domain/errors"
	"rently/internal/domain/repository"
	mockRepo "rently/internal/mocks/repository"
	mockSvc "rently/internal/mocks/service"
	"rently/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	accountRepo  *mockRepo.MockAccountRepository
	profileCache *mockSvc.MockProfileCache
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	profileCache := mockSvc.NewMockProfileCache(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			AccountRepo:  accountRepo,
			ProfileCache: profileCache,
			Logger:       newDiscardLogger(),
		}),
		accountRepo:  accountRepo,
		profileCache: profileCache,
	}
}

func TestProfileService_GetUserInfo_CacheHit(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	cached := newTestAccount(entity.RoleTenant)
	cached.PasswordHash = nil

	fx.profileCache.EXPECT().Get(ctx, cached.ID).Return(cached, nil)

	account, err := fx.service.GetUserInfo(ctx, cached.ID)

	require.NoError(t, err)
	assert.Same(t, cached, account)
	fx.accountRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProfileService_GetUserInfo_CacheMissLoadsAndStores(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	stored := newTestAccount(entity.RoleLandlord)

	fx.profileCache.EXPECT().Get(ctx, stored.ID).Return(nil, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.profileCache.EXPECT().Set(ctx, stored).Return(nil)

	account, err := fx.service.GetUserInfo(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored, account)
}

func TestProfileService_GetUserInfo_CacheErrorsDegrade(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	stored := newTestAccount(entity.RoleAdmin)

	fx.profileCache.EXPECT().Get(ctx, stored.ID).Return(nil, errors.New("redis down"))
	fx.accountRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.profileCache.EXPECT().Set(ctx, stored).Return(errors.New("redis down"))

	account, err := fx.service.GetUserInfo(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, account.ID)
}

func TestProfileService_GetUserInfo_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	id := newTestAccount(entity.RoleTenant).ID

	fx.profileCache.EXPECT().Get(ctx, id).Return(nil, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.GetUserInfo(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestProfileService_GetUserInfo_StorageError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	id := newTestAccount(entity.RoleTenant).ID

	fx.profileCache.EXPECT().Get(ctx, id).Return(nil, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, errors.New("connection reset"))

	_, err := fx.service.GetUserInfo(ctx, id)

	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageError(err))
}

func TestProfileService_GetNavigation(t *testing.T) {
	fx := createTestProfileService(t)

	for _, role := range entity.AllRoles() {
		navigation, err := fx.service.GetNavigation(role)

		require.NoError(t, err)
		assert.Equal(t, role, navigation.Role)
		assert.NotEmpty(t, navigation.Main)
		assert.NotEmpty(t, navigation.Settings)
	}

	_, err := fx.service.GetNavigation(entity.Role("guest"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
