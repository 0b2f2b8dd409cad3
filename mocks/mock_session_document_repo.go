package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"trimatch/internal/domain"
)

// MockSessionDocumentRepo is a mock implementation of port.SessionDocumentRepository.
type MockSessionDocumentRepo struct {
	mock.Mock
}

func (m *MockSessionDocumentRepo) Upsert(ctx context.Context, d *domain.SessionDocument) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockSessionDocumentRepo) GetByRole(ctx context.Context, sessionID uuid.UUID, role domain.DocumentRole) (*domain.SessionDocument, error) {
	args := m.Called(ctx, sessionID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionDocument), args.Error(1)
}

func (m *MockSessionDocumentRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.SessionDocument, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SessionDocument), args.Error(1)
}

func (m *MockSessionDocumentRepo) DeleteBySession(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
