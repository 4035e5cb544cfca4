package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/internal/service/reading"
	"github.com/heartmarshall/tarot-backend/internal/service/user"
)

var _ cardService = &cardServiceMock{}

type cardServiceMock struct {
	CatalogFunc      func(ctx context.Context, pool domain.DeckPool) ([]reading.CardResult, error)
	CardBySlugFunc   func(ctx context.Context, slug string) (*reading.CardResult, error)
	CardOfTheDayFunc func(ctx context.Context, tz string) (*reading.DailyCard, error)

	calls struct {
		Catalog []struct {
			Ctx  context.Context
			Pool domain.DeckPool
		}
		CardBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		CardOfTheDay []struct {
			Ctx context.Context
			Tz  string
		}
	}
	lockCatalog      sync.RWMutex
	lockCardBySlug   sync.RWMutex
	lockCardOfTheDay sync.RWMutex
}

func (mock *cardServiceMock) Catalog(ctx context.Context, pool domain.DeckPool) ([]reading.CardResult, error) {
	if mock.CatalogFunc == nil {
		panic("cardServiceMock.CatalogFunc: method is nil but cardService.Catalog was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Pool domain.DeckPool
	}{Ctx: ctx, Pool: pool}
	mock.lockCatalog.Lock()
	mock.calls.Catalog = append(mock.calls.Catalog, callInfo)
	mock.lockCatalog.Unlock()
	return mock.CatalogFunc(ctx, pool)
}

func (mock *cardServiceMock) CatalogCalls() []struct {
	Ctx  context.Context
	Pool domain.DeckPool
} {
	mock.lockCatalog.RLock()
	calls := mock.calls.Catalog
	mock.lockCatalog.RUnlock()
	return calls
}

func (mock *cardServiceMock) CardBySlug(ctx context.Context, slug string) (*reading.CardResult, error) {
	if mock.CardBySlugFunc == nil {
		panic("cardServiceMock.CardBySlugFunc: method is nil but cardService.CardBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockCardBySlug.Lock()
	mock.calls.CardBySlug = append(mock.calls.CardBySlug, callInfo)
	mock.lockCardBySlug.Unlock()
	return mock.CardBySlugFunc(ctx, slug)
}

func (mock *cardServiceMock) CardBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockCardBySlug.RLock()
	calls := mock.calls.CardBySlug
	mock.lockCardBySlug.RUnlock()
	return calls
}

func (mock *cardServiceMock) CardOfTheDay(ctx context.Context, tz string) (*reading.DailyCard, error) {
	if mock.CardOfTheDayFunc == nil {
		panic("cardServiceMock.CardOfTheDayFunc: method is nil but cardService.CardOfTheDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tz  string
	}{Ctx: ctx, Tz: tz}
	mock.lockCardOfTheDay.Lock()
	mock.calls.CardOfTheDay = append(mock.calls.CardOfTheDay, callInfo)
	mock.lockCardOfTheDay.Unlock()
	return mock.CardOfTheDayFunc(ctx, tz)
}

func (mock *cardServiceMock) CardOfTheDayCalls() []struct {
	Ctx context.Context
	Tz  string
} {
	mock.lockCardOfTheDay.RLock()
	calls := mock.calls.CardOfTheDay
	mock.lockCardOfTheDay.RUnlock()
	return calls
}

var _ readingService = &readingServiceMock{}

type readingServiceMock struct {
	DrawPreviewFunc   func(ctx context.Context, input reading.DrawInput) (*reading.DrawResult, error)
	CreateReadingFunc func(ctx context.Context, input reading.CreateReadingInput) (*domain.Reading, error)
	GetReadingFunc    func(ctx context.Context, id uuid.UUID) (*domain.Reading, error)
	ListReadingsFunc  func(ctx context.Context, input reading.ListReadingsInput) ([]domain.Reading, int, error)
	UpdateNoteFunc    func(ctx context.Context, input reading.UpdateNoteInput) (*domain.Reading, error)
	DeleteReadingFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		DrawPreview []struct {
			Ctx   context.Context
			Input reading.DrawInput
		}
		CreateReading []struct {
			Ctx   context.Context
			Input reading.CreateReadingInput
		}
		GetReading []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListReadings []struct {
			Ctx   context.Context
			Input reading.ListReadingsInput
		}
		UpdateNote []struct {
			Ctx   context.Context
			Input reading.UpdateNoteInput
		}
		DeleteReading []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockDrawPreview   sync.RWMutex
	lockCreateReading sync.RWMutex
	lockGetReading    sync.RWMutex
	lockListReadings  sync.RWMutex
	lockUpdateNote    sync.RWMutex
	lockDeleteReading sync.RWMutex
}

func (mock *readingServiceMock) DrawPreview(ctx context.Context, input reading.DrawInput) (*reading.DrawResult, error) {
	if mock.DrawPreviewFunc == nil {
		panic("readingServiceMock.DrawPreviewFunc: method is nil but readingService.DrawPreview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reading.DrawInput
	}{Ctx: ctx, Input: input}
	mock.lockDrawPreview.Lock()
	mock.calls.DrawPreview = append(mock.calls.DrawPreview, callInfo)
	mock.lockDrawPreview.Unlock()
	return mock.DrawPreviewFunc(ctx, input)
}

func (mock *readingServiceMock) DrawPreviewCalls() []struct {
	Ctx   context.Context
	Input reading.DrawInput
} {
	mock.lockDrawPreview.RLock()
	calls := mock.calls.DrawPreview
	mock.lockDrawPreview.RUnlock()
	return calls
}

func (mock *readingServiceMock) CreateReading(ctx context.Context, input reading.CreateReadingInput) (*domain.Reading, error) {
	if mock.CreateReadingFunc == nil {
		panic("readingServiceMock.CreateReadingFunc: method is nil but readingService.CreateReading was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reading.CreateReadingInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateReading.Lock()
	mock.calls.CreateReading = append(mock.calls.CreateReading, callInfo)
	mock.lockCreateReading.Unlock()
	return mock.CreateReadingFunc(ctx, input)
}

func (mock *readingServiceMock) CreateReadingCalls() []struct {
	Ctx   context.Context
	Input reading.CreateReadingInput
} {
	mock.lockCreateReading.RLock()
	calls := mock.calls.CreateReading
	mock.lockCreateReading.RUnlock()
	return calls
}

func (mock *readingServiceMock) GetReading(ctx context.Context, id uuid.UUID) (*domain.Reading, error) {
	if mock.GetReadingFunc == nil {
		panic("readingServiceMock.GetReadingFunc: method is nil but readingService.GetReading was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetReading.Lock()
	mock.calls.GetReading = append(mock.calls.GetReading, callInfo)
	mock.lockGetReading.Unlock()
	return mock.GetReadingFunc(ctx, id)
}

func (mock *readingServiceMock) GetReadingCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetReading.RLock()
	calls := mock.calls.GetReading
	mock.lockGetReading.RUnlock()
	return calls
}

func (mock *readingServiceMock) ListReadings(ctx context.Context, input reading.ListReadingsInput) ([]domain.Reading, int, error) {
	if mock.ListReadingsFunc == nil {
		panic("readingServiceMock.ListReadingsFunc: method is nil but readingService.ListReadings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reading.ListReadingsInput
	}{Ctx: ctx, Input: input}
	mock.lockListReadings.Lock()
	mock.calls.ListReadings = append(mock.calls.ListReadings, callInfo)
	mock.lockListReadings.Unlock()
	return mock.ListReadingsFunc(ctx, input)
}

func (mock *readingServiceMock) ListReadingsCalls() []struct {
	Ctx   context.Context
	Input reading.ListReadingsInput
} {
	mock.lockListReadings.RLock()
	calls := mock.calls.ListReadings
	mock.lockListReadings.RUnlock()
	return calls
}

func (mock *readingServiceMock) UpdateNote(ctx context.Context, input reading.UpdateNoteInput) (*domain.Reading, error) {
	if mock.UpdateNoteFunc == nil {
		panic("readingServiceMock.UpdateNoteFunc: method is nil but readingService.UpdateNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reading.UpdateNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateNote.Lock()
	mock.calls.UpdateNote = append(mock.calls.UpdateNote, callInfo)
	mock.lockUpdateNote.Unlock()
	return mock.UpdateNoteFunc(ctx, input)
}

func (mock *readingServiceMock) UpdateNoteCalls() []struct {
	Ctx   context.Context
	Input reading.UpdateNoteInput
} {
	mock.lockUpdateNote.RLock()
	calls := mock.calls.UpdateNote
	mock.lockUpdateNote.RUnlock()
	return calls
}

func (mock *readingServiceMock) DeleteReading(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteReadingFunc == nil {
		panic("readingServiceMock.DeleteReadingFunc: method is nil but readingService.DeleteReading was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteReading.Lock()
	mock.calls.DeleteReading = append(mock.calls.DeleteReading, callInfo)
	mock.lockDeleteReading.Unlock()
	return mock.DeleteReadingFunc(ctx, id)
}

func (mock *readingServiceMock) DeleteReadingCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteReading.RLock()
	calls := mock.calls.DeleteReading
	mock.lockDeleteReading.RUnlock()
	return calls
}

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc func(ctx context.Context) (*domain.Profile, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
	}
	lockGetProfile sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*domain.Profile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

var _ settingsService = &settingsServiceMock{}

type settingsServiceMock struct {
	GetSettingsFunc    func(ctx context.Context) (*domain.UserSettings, error)
	UpdateSettingsFunc func(ctx context.Context, input user.UpdateSettingsInput) (*domain.UserSettings, error)

	calls struct {
		GetSettings []struct {
			Ctx context.Context
		}
		UpdateSettings []struct {
			Ctx   context.Context
			Input user.UpdateSettingsInput
		}
	}
	lockGetSettings    sync.RWMutex
	lockUpdateSettings sync.RWMutex
}

func (mock *settingsServiceMock) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	if mock.GetSettingsFunc == nil {
		panic("settingsServiceMock.GetSettingsFunc: method is nil but settingsService.GetSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx)
}

func (mock *settingsServiceMock) GetSettingsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetSettings.RLock()
	calls := mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}

func (mock *settingsServiceMock) UpdateSettings(ctx context.Context, input user.UpdateSettingsInput) (*domain.UserSettings, error) {
	if mock.UpdateSettingsFunc == nil {
		panic("settingsServiceMock.UpdateSettingsFunc: method is nil but settingsService.UpdateSettings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateSettingsInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateSettings.Lock()
	mock.calls.UpdateSettings = append(mock.calls.UpdateSettings, callInfo)
	mock.lockUpdateSettings.Unlock()
	return mock.UpdateSettingsFunc(ctx, input)
}

func (mock *settingsServiceMock) UpdateSettingsCalls() []struct {
	Ctx   context.Context
	Input user.UpdateSettingsInput
} {
	mock.lockUpdateSettings.RLock()
	calls := mock.calls.UpdateSettings
	mock.lockUpdateSettings.RUnlock()
	return calls
}
