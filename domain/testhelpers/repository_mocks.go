package testhelpers

import (
	"context"

	"smanager/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockScrimRepository is a mock implementation of ScrimRepository
type MockScrimRepository struct {
	mock.Mock
}

func (m *MockScrimRepository) GetByID(ctx context.Context, id int64) (*entities.Scrim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Scrim), args.Error(1)
}

func (m *MockScrimRepository) DeleteByRegistrationChannel(ctx context.Context, channelID int64) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScrimRepository) AppendAvailableSlot(ctx context.Context, scrimID int64, num int) error {
	args := m.Called(ctx, scrimID, num)
	return args.Error(0)
}

func (m *MockScrimRepository) GetRegistrationChannelIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockTourneyRepository is a mock implementation of TourneyRepository
type MockTourneyRepository struct {
	mock.Mock
}

func (m *MockTourneyRepository) GetByID(ctx context.Context, id int64) (*entities.Tourney, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Tourney), args.Error(1)
}

func (m *MockTourneyRepository) DeleteByRegistrationChannel(ctx context.Context, channelID int64) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTourneyRepository) GetRegistrationChannelIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockReservedSlotRepository is a mock implementation of ReservedSlotRepository
type MockReservedSlotRepository struct {
	mock.Mock
}

func (m *MockReservedSlotRepository) GetReservedUserIDs(ctx context.Context, scrimID int64) ([]int64, error) {
	args := m.Called(ctx, scrimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReservedSlotRepository) GetByScrimAndUser(ctx context.Context, scrimID, userID int64) (*entities.ReservedSlot, error) {
	args := m.Called(ctx, scrimID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ReservedSlot), args.Error(1)
}

func (m *MockReservedSlotRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssignedSlotRepository is a mock implementation of AssignedSlotRepository
type MockAssignedSlotRepository struct {
	mock.Mock
}

func (m *MockAssignedSlotRepository) GetByScrim(ctx context.Context, scrimID int64) ([]*entities.AssignedSlot, error) {
	args := m.Called(ctx, scrimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AssignedSlot), args.Error(1)
}

func (m *MockAssignedSlotRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockTagCheckRepository is a mock implementation of TagCheckRepository
type MockTagCheckRepository struct {
	mock.Mock
}

func (m *MockTagCheckRepository) DeleteByChannel(ctx context.Context, channelID int64) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTagCheckRepository) GetChannelIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockEasyTagRepository is a mock implementation of EasyTagRepository
type MockEasyTagRepository struct {
	mock.Mock
}

func (m *MockEasyTagRepository) DeleteByChannel(ctx context.Context, channelID int64) (int64, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEasyTagRepository) GetChannelIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
