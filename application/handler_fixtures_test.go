package application

import (
	"context"

	"smanager/domain/entities"
	"smanager/domain/testhelpers"
)

type testRepos struct {
	scrim    *testhelpers.MockScrimRepository
	tourney  *testhelpers.MockTourneyRepository
	reserved *testhelpers.MockReservedSlotRepository
	assigned *testhelpers.MockAssignedSlotRepository
	tagCheck *testhelpers.MockTagCheckRepository
	easyTag  *testhelpers.MockEasyTagRepository
}

// newTestUnitOfWork returns a factory whose units of work begin, commit and roll back cleanly
func newTestUnitOfWork(ctx context.Context) (*MockUnitOfWorkFactory, *MockUnitOfWork, *testRepos) {
	repos := &testRepos{
		scrim:    new(testhelpers.MockScrimRepository),
		tourney:  new(testhelpers.MockTourneyRepository),
		reserved: new(testhelpers.MockReservedSlotRepository),
		assigned: new(testhelpers.MockAssignedSlotRepository),
		tagCheck: new(testhelpers.MockTagCheckRepository),
		easyTag:  new(testhelpers.MockEasyTagRepository),
	}

	uow := new(MockUnitOfWork)
	uow.SetRepositories(repos.scrim, repos.tourney, repos.reserved, repos.assigned, repos.tagCheck, repos.easyTag)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit").Return(nil)
	uow.On("Rollback").Return(nil)

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow)

	return factory, uow, repos
}

func int64Ptr(v int64) *int64 { return &v }

const (
	testGuildID        = int64(100)
	testRegChannelID   = int64(200)
	testLogChannelID   = int64(250)
	testModRoleID      = int64(260)
	testSuccessRoleID  = int64(270)
	testAuthorID       = int64(42)
	testMessageID      = int64(300)
	testScrimID        = int64(7)
	testTourneyID      = int64(9)
	testReplyMessageID = int64(301)
)

func testScrim() *entities.Scrim {
	return &entities.Scrim{
		ID:                    testScrimID,
		GuildID:               testGuildID,
		RegistrationChannelID: testRegChannelID,
		LogChannelID:          int64Ptr(testLogChannelID),
		ModRoleID:             int64Ptr(testModRoleID),
		RoleID:                int64Ptr(testSuccessRoleID),
		RequiredMentions:      4,
		CrossEmoji:            "❌",
	}
}

func testTourney() *entities.Tourney {
	return &entities.Tourney{
		ID:                    testTourneyID,
		GuildID:               testGuildID,
		RegistrationChannelID: testRegChannelID,
		LogChannelID:          int64Ptr(testLogChannelID),
		RequiredMentions:      2,
		CrossEmoji:            "🚫",
	}
}

func testRegistrationMessage() entities.RegistrationMessage {
	return entities.RegistrationMessage{
		ID:           testMessageID,
		ChannelID:    testRegChannelID,
		GuildID:      testGuildID,
		AuthorID:     testAuthorID,
		AuthorTag:    "captain",
		MentionCount: 1,
	}
}
