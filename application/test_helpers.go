package application

import (
	"context"
	"sync"
	"time"

	"smanager/application/dto"
	"smanager/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockMessenger is a mock implementation of Messenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) ChannelExists(ctx context.Context, channelID int64) bool {
	return m.Called(ctx, channelID).Bool(0)
}

func (m *MockMessenger) CanSend(ctx context.Context, channelID int64) bool {
	return m.Called(ctx, channelID).Bool(0)
}

func (m *MockMessenger) RoleExists(ctx context.Context, guildID, roleID int64) bool {
	return m.Called(ctx, guildID, roleID).Bool(0)
}

func (m *MockMessenger) InGuild(guildID int64) bool {
	return m.Called(guildID).Bool(0)
}

func (m *MockMessenger) UserTag(ctx context.Context, userID int64) string {
	return m.Called(ctx, userID).String(0)
}

func (m *MockMessenger) AddReaction(ctx context.Context, channelID, messageID int64, emoji string) error {
	return m.Called(ctx, channelID, messageID, emoji).Error(0)
}

func (m *MockMessenger) Reply(ctx context.Context, channelID, messageID int64, embed dto.Embed) (int64, error) {
	args := m.Called(ctx, channelID, messageID, embed)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessenger) Send(ctx context.Context, channelID int64, msg dto.OutgoingMessage) error {
	return m.Called(ctx, channelID, msg).Error(0)
}

func (m *MockMessenger) DeleteMessage(ctx context.Context, channelID, messageID int64) error {
	return m.Called(ctx, channelID, messageID).Error(0)
}

func (m *MockMessenger) RemoveRole(ctx context.Context, guildID, userID, roleID int64) error {
	return m.Called(ctx, guildID, userID, roleID).Error(0)
}

// ScheduledTask is a task captured by RecordingScheduler
type ScheduledTask struct {
	Name  string
	Delay time.Duration
	Fn    func(ctx context.Context) error
}

// RecordingScheduler captures scheduled work so tests can inspect and run it
type RecordingScheduler struct {
	mu    sync.Mutex
	Tasks []ScheduledTask
}

func (s *RecordingScheduler) Go(name string, fn func(ctx context.Context) error) {
	s.After(0, name, fn)
}

func (s *RecordingScheduler) After(delay time.Duration, name string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Tasks = append(s.Tasks, ScheduledTask{Name: name, Delay: delay, Fn: fn})
}

// RunAll runs every captured task in order and returns the first error
func (s *RecordingScheduler) RunAll(ctx context.Context) error {
	s.mu.Lock()
	tasks := append([]ScheduledTask(nil), s.Tasks...)
	s.mu.Unlock()

	for _, task := range tasks {
		if err := task.Fn(ctx); err != nil {
			return err
		}
	}
	return nil
}

// MockChannelCache is a mock implementation of ChannelCache
type MockChannelCache struct {
	mock.Mock
}

func (m *MockChannelCache) Evict(channelID int64) {
	m.Called(channelID)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	scrimRepo        interfaces.ScrimRepository
	tourneyRepo      interfaces.TourneyRepository
	reservedSlotRepo interfaces.ReservedSlotRepository
	assignedSlotRepo interfaces.AssignedSlotRepository
	tagCheckRepo     interfaces.TagCheckRepository
	easyTagRepo      interfaces.EasyTagRepository
}

// SetRepositories wires the repositories returned by the getters
func (m *MockUnitOfWork) SetRepositories(
	scrimRepo interfaces.ScrimRepository,
	tourneyRepo interfaces.TourneyRepository,
	reservedSlotRepo interfaces.ReservedSlotRepository,
	assignedSlotRepo interfaces.AssignedSlotRepository,
	tagCheckRepo interfaces.TagCheckRepository,
	easyTagRepo interfaces.EasyTagRepository,
) {
	m.scrimRepo = scrimRepo
	m.tourneyRepo = tourneyRepo
	m.reservedSlotRepo = reservedSlotRepo
	m.assignedSlotRepo = assignedSlotRepo
	m.tagCheckRepo = tagCheckRepo
	m.easyTagRepo = easyTagRepo
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	return m.Called().Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	return m.Called().Error(0)
}

func (m *MockUnitOfWork) ScrimRepository() interfaces.ScrimRepository { return m.scrimRepo }

func (m *MockUnitOfWork) TourneyRepository() interfaces.TourneyRepository { return m.tourneyRepo }

func (m *MockUnitOfWork) ReservedSlotRepository() interfaces.ReservedSlotRepository {
	return m.reservedSlotRepo
}

func (m *MockUnitOfWork) AssignedSlotRepository() interfaces.AssignedSlotRepository {
	return m.assignedSlotRepo
}

func (m *MockUnitOfWork) TagCheckRepository() interfaces.TagCheckRepository { return m.tagCheckRepo }

func (m *MockUnitOfWork) EasyTagRepository() interfaces.EasyTagRepository { return m.easyTagRepo }

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	return m.Called().Get(0).(UnitOfWork)
}
