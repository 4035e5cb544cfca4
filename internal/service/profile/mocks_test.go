package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Reading, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *historyRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reading, error) {
	if mock.ListByUserFunc == nil {
		panic("historyRepoMock.ListByUserFunc: method is nil but historyRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *historyRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

var _ settingsProvider = &settingsProviderMock{}

type settingsProviderMock struct {
	SettingsForFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)

	calls struct {
		SettingsFor []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockSettingsFor sync.RWMutex
}

func (mock *settingsProviderMock) SettingsFor(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if mock.SettingsForFunc == nil {
		panic("settingsProviderMock.SettingsForFunc: method is nil but settingsProvider.SettingsFor was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockSettingsFor.Lock()
	mock.calls.SettingsFor = append(mock.calls.SettingsFor, callInfo)
	mock.lockSettingsFor.Unlock()
	return mock.SettingsForFunc(ctx, userID)
}

func (mock *settingsProviderMock) SettingsForCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockSettingsFor.RLock()
	calls := mock.calls.SettingsFor
	mock.lockSettingsFor.RUnlock()
	return calls
}
