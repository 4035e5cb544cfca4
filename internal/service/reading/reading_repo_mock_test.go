package reading

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tarot-backend/internal/domain"
)

var _ readingRepo = &readingRepoMock{}

type readingRepoMock struct {
	ListFunc       func(ctx context.Context, userID uuid.UUID, filter domain.ReadingFilter) ([]domain.Reading, int, error)
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Reading, error)
	CreateFunc     func(ctx context.Context, r *domain.Reading) (*domain.Reading, error)
	UpdateNoteFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID, note *string) (*domain.Reading, error)
	DeleteFunc     func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.ReadingFilter
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			R   *domain.Reading
		}
		UpdateNote []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
			Note   *string
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
	}
	lockList       sync.RWMutex
	lockGetByID    sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdateNote sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *readingRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.ReadingFilter) ([]domain.Reading, int, error) {
	if mock.ListFunc == nil {
		panic("readingRepoMock.ListFunc: method is nil but readingRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.ReadingFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *readingRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.ReadingFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *readingRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Reading, error) {
	if mock.GetByIDFunc == nil {
		panic("readingRepoMock.GetByIDFunc: method is nil but readingRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *readingRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *readingRepoMock) Create(ctx context.Context, r *domain.Reading) (*domain.Reading, error) {
	if mock.CreateFunc == nil {
		panic("readingRepoMock.CreateFunc: method is nil but readingRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   *domain.Reading
	}{Ctx: ctx, R: r}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *readingRepoMock) CreateCalls() []struct {
	Ctx context.Context
	R   *domain.Reading
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *readingRepoMock) UpdateNote(ctx context.Context, userID uuid.UUID, id uuid.UUID, note *string) (*domain.Reading, error) {
	if mock.UpdateNoteFunc == nil {
		panic("readingRepoMock.UpdateNoteFunc: method is nil but readingRepo.UpdateNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
		Note   *string
	}{Ctx: ctx, UserID: userID, Id: id, Note: note}
	mock.lockUpdateNote.Lock()
	mock.calls.UpdateNote = append(mock.calls.UpdateNote, callInfo)
	mock.lockUpdateNote.Unlock()
	return mock.UpdateNoteFunc(ctx, userID, id, note)
}

func (mock *readingRepoMock) UpdateNoteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
	Note   *string
} {
	mock.lockUpdateNote.RLock()
	calls := mock.calls.UpdateNote
	mock.lockUpdateNote.RUnlock()
	return calls
}

func (mock *readingRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("readingRepoMock.DeleteFunc: method is nil but readingRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *readingRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
