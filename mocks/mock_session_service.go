package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"trimatch/internal/domain"
	"trimatch/internal/match"
	"trimatch/internal/service"
)

// MockSessionService is a mock implementation of service.SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, input service.CreateSessionInput) (*domain.ReconciliationSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSession), args.Error(1)
}

func (m *MockSessionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReconciliationSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSession), args.Error(1)
}

func (m *MockSessionService) List(ctx context.Context, offset, limit int) ([]domain.ReconciliationSession, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ReconciliationSession), args.Int(1), args.Error(2)
}

func (m *MockSessionService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionService) AttachDocument(ctx context.Context, input service.AttachDocumentInput) (*domain.SessionDocument, *domain.ReconciliationSession, error) {
	args := m.Called(ctx, input)
	var doc *domain.SessionDocument
	var session *domain.ReconciliationSession
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.SessionDocument)
	}
	if args.Get(1) != nil {
		session = args.Get(1).(*domain.ReconciliationSession)
	}
	return doc, session, args.Error(2)
}

func (m *MockSessionService) GetRecord(ctx context.Context, sessionID uuid.UUID) (*match.Record, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*match.Record), args.Error(1)
}
