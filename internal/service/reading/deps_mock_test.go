package reading

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

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

var _ interpreter = &interpreterMock{}

type interpreterMock struct {
	GenerateFunc func(ctx context.Context, req domain.InterpretationRequest) (string, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			Req domain.InterpretationRequest
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *interpreterMock) Generate(ctx context.Context, req domain.InterpretationRequest) (string, error) {
	if mock.GenerateFunc == nil {
		panic("interpreterMock.GenerateFunc: method is nil but interpreter.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.InterpretationRequest
	}{Ctx: ctx, Req: req}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *interpreterMock) GenerateCalls() []struct {
	Ctx context.Context
	Req domain.InterpretationRequest
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

var _ artResolver = &artResolverMock{}

type artResolverMock struct {
	URLFunc func(ctx context.Context, imageRef string) (string, error)

	calls struct {
		URL []struct {
			Ctx      context.Context
			ImageRef string
		}
	}
	lockURL sync.RWMutex
}

func (mock *artResolverMock) URL(ctx context.Context, imageRef string) (string, error) {
	if mock.URLFunc == nil {
		panic("artResolverMock.URLFunc: method is nil but artResolver.URL was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ImageRef string
	}{Ctx: ctx, ImageRef: imageRef}
	mock.lockURL.Lock()
	mock.calls.URL = append(mock.calls.URL, callInfo)
	mock.lockURL.Unlock()
	return mock.URLFunc(ctx, imageRef)
}

func (mock *artResolverMock) URLCalls() []struct {
	Ctx      context.Context
	ImageRef string
} {
	mock.lockURL.RLock()
	calls := mock.calls.URL
	mock.lockURL.RUnlock()
	return calls
}
