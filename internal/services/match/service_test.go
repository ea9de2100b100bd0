package match

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/deuce/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/deuce/internal/common/uuid/mocks"
	"github.com/KirkDiggler/deuce/internal/models"
	matchRepo "github.com/KirkDiggler/deuce/internal/repositories/match"
	repoMocks "github.com/KirkDiggler/deuce/internal/repositories/match/mocks"
	"github.com/KirkDiggler/deuce/internal/repositories/record_store"
	"github.com/KirkDiggler/deuce/internal/services/history"
	historyMocks "github.com/KirkDiggler/deuce/internal/services/history/mocks"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MatchServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockMatchRepo      *repoMocks.MockRepository
	mockHistoryService *historyMocks.MockService
	mockClock          *clockMocks.MockClock
	mockUUID           *uuidMocks.MockUUID
	service            *service
	ctx                context.Context

	testTime      time.Time
	testChannelID string
	testMatchID   string
}

func (s *MatchServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMatchRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockHistoryService = historyMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testChannelID = "channel-123"
	s.testMatchID = "match-abc"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		MatchRepo:      s.mockMatchRepo,
		HistoryService: s.mockHistoryService,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
		Logger:         log.New(io.Discard),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MatchServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}

func (s *MatchServiceTestSuite) newMatch() *models.Match {
	return &models.Match{
		ID:          s.testMatchID,
		ChannelID:   s.testChannelID,
		Player1Name: "Ana",
		Player2Name: "Ben",
		Status:      models.MatchStatusInProgress,
		MessageID:   "message-1",
		CreatedAt:   s.testTime.Add(-time.Hour),
		UpdatedAt:   s.testTime.Add(-time.Hour),
	}
}

// matchPointFor returns a match where one more point for player1 wins it
func (s *MatchServiceTestSuite) matchPointFor() *models.Match {
	match := s.newMatch()
	match.State = models.MatchState{
		Player1:   models.GameScore{Points: 3, Games: 5, Sets: 1},
		Player2:   models.GameScore{Points: 0, Games: 2, Sets: 0},
		SetScores: []models.SetScore{{Player1: 6, Player2: 4}},
	}
	match.Stats = models.MatchStats{
		Player1: models.StatTally{Aces: 4, Winners: 9},
		Player2: models.StatTally{DoubleFaults: 3},
	}
	return match
}

func (s *MatchServiceTestSuite) expectLookup(match *models.Match, err error) {
	s.mockMatchRepo.EXPECT().
		GetMatchByChannel(gomock.Any(), &matchRepo.GetMatchByChannelInput{ChannelID: s.testChannelID}).
		Return(match, err)
}

// expectSave captures the match handed to the repository
func (s *MatchServiceTestSuite) expectSave() *models.Match {
	saved := &models.Match{}
	s.mockMatchRepo.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.SaveMatchInput) error {
			*saved = *input.Match
			return nil
		})
	return saved
}

// expectSaves captures every match handed to the repository, in order
func (s *MatchServiceTestSuite) expectSaves(times int) *[]models.Match {
	saved := &[]models.Match{}
	s.mockMatchRepo.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.SaveMatchInput) error {
			*saved = append(*saved, *input.Match)
			return nil
		}).
		Times(times)
	return saved
}

func (s *MatchServiceTestSuite) TestNew_Validation() {
	testCases := []struct {
		name   string
		cfg    *Config
		expect error
	}{
		{name: "nil config", cfg: nil, expect: ErrNilConfig},
		{name: "nil repo", cfg: &Config{}, expect: ErrNilMatchRepo},
		{name: "nil history", cfg: &Config{MatchRepo: s.mockMatchRepo}, expect: ErrNilHistoryService},
		{name: "nil clock", cfg: &Config{MatchRepo: s.mockMatchRepo, HistoryService: s.mockHistoryService}, expect: ErrNilClock},
		{
			name:   "nil uuid",
			cfg:    &Config{MatchRepo: s.mockMatchRepo, HistoryService: s.mockHistoryService, Clock: s.mockClock},
			expect: ErrNilUUIDGenerator,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := New(tc.cfg)
			s.ErrorIs(err, tc.expect)
		})
	}
}

func (s *MatchServiceTestSuite) TestStartMatch_Success() {
	s.expectLookup(nil, matchRepo.ErrMatchNotFound)
	s.mockUUID.EXPECT().NewUUID().Return(s.testMatchID)
	saved := s.expectSave()

	output, err := s.service.StartMatch(s.ctx, &StartMatchInput{
		ChannelID:   s.testChannelID,
		Player1Name: "Ana",
		Player2Name: "Ben",
	})

	s.Require().NoError(err)
	s.Equal(s.testMatchID, output.Match.ID)
	s.Equal(s.testChannelID, output.Match.ChannelID)
	s.Equal("Ana", output.Match.Player1Name)
	s.Equal("Ben", output.Match.Player2Name)
	s.Equal(models.MatchStatusInProgress, output.Match.Status)
	s.Equal(models.MatchState{}, output.Match.State)
	s.Equal(models.MatchStats{}, output.Match.Stats)
	s.Equal(s.testTime, output.Match.CreatedAt)
	s.Equal(s.testMatchID, saved.ID)
}

func (s *MatchServiceTestSuite) TestStartMatch_DefaultNames() {
	s.expectLookup(nil, matchRepo.ErrMatchNotFound)
	s.mockUUID.EXPECT().NewUUID().Return(s.testMatchID)
	s.expectSave()

	output, err := s.service.StartMatch(s.ctx, &StartMatchInput{ChannelID: s.testChannelID})

	s.Require().NoError(err)
	s.Equal(models.DefaultPlayer1Name, output.Match.Player1Name)
	s.Equal(models.DefaultPlayer2Name, output.Match.Player2Name)
}

func (s *MatchServiceTestSuite) TestStartMatch_InProgressMatchExists() {
	s.expectLookup(s.newMatch(), nil)

	_, err := s.service.StartMatch(s.ctx, &StartMatchInput{ChannelID: s.testChannelID})

	s.ErrorIs(err, ErrMatchInProgress)
}

func (s *MatchServiceTestSuite) TestStartMatch_ReplacesCompletedMatch() {
	finished := s.newMatch()
	finished.Status = models.MatchStatusCompleted

	s.expectLookup(finished, nil)
	s.mockMatchRepo.EXPECT().
		DeleteMatch(gomock.Any(), &matchRepo.DeleteMatchInput{MatchID: s.testMatchID}).
		Return(nil)
	s.mockUUID.EXPECT().NewUUID().Return("match-new")
	s.expectSave()

	output, err := s.service.StartMatch(s.ctx, &StartMatchInput{ChannelID: s.testChannelID})

	s.Require().NoError(err)
	s.Equal("match-new", output.Match.ID)
}

func (s *MatchServiceTestSuite) TestStartMatch_LookupError() {
	expectedError := errors.New("redis down")
	s.expectLookup(nil, expectedError)

	_, err := s.service.StartMatch(s.ctx, &StartMatchInput{ChannelID: s.testChannelID})

	s.ErrorIs(err, expectedError)
}

func (s *MatchServiceTestSuite) TestStartMatch_RequiresChannel() {
	_, err := s.service.StartMatch(s.ctx, &StartMatchInput{})
	s.ErrorIs(err, ErrChannelRequired)
}

func (s *MatchServiceTestSuite) TestGetMatchByChannel_NotFound() {
	s.expectLookup(nil, matchRepo.ErrMatchNotFound)

	_, err := s.service.GetMatchByChannel(s.ctx, &GetMatchByChannelInput{ChannelID: s.testChannelID})

	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MatchServiceTestSuite) TestListActiveMatches() {
	active := []*models.Match{s.newMatch()}
	s.mockMatchRepo.EXPECT().
		GetActiveMatches(gomock.Any(), gomock.Any()).
		Return(&matchRepo.GetActiveMatchesOutput{Matches: active}, nil)

	output, err := s.service.ListActiveMatches(s.ctx)

	s.Require().NoError(err)
	s.Equal(active, output.Matches)
}

func (s *MatchServiceTestSuite) TestScorePoint_AdvancesScore() {
	s.expectLookup(s.newMatch(), nil)
	saved := s.expectSave()

	output, err := s.service.ScorePoint(s.ctx, &ScorePointInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotTwo,
	})

	s.Require().NoError(err)
	s.Equal(1, output.Match.State.Player2.Points)
	s.Empty(output.Notifications)
	s.Nil(output.Record)
	s.Equal(1, saved.State.Player2.Points)
	s.Equal(s.testTime, saved.UpdatedAt)
}

func (s *MatchServiceTestSuite) TestScorePoint_GameWonNotification() {
	match := s.newMatch()
	match.State.Player1.Points = 3
	s.expectLookup(match, nil)
	s.expectSave()

	output, err := s.service.ScorePoint(s.ctx, &ScorePointInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotOne,
	})

	s.Require().NoError(err)
	s.Equal([]models.Notification{{Kind: models.NotificationGameWon, Player: models.PlayerSlotOne}}, output.Notifications)
	s.Equal(1, output.Match.State.Player1.Games)
}

func (s *MatchServiceTestSuite) TestScorePoint_InvalidPlayer() {
	_, err := s.service.ScorePoint(s.ctx, &ScorePointInput{
		ChannelID: s.testChannelID,
		Player:    "player3",
	})

	s.ErrorIs(err, ErrInvalidPlayer)
}

func (s *MatchServiceTestSuite) TestScorePoint_NoMatch() {
	s.expectLookup(nil, matchRepo.ErrMatchNotFound)

	_, err := s.service.ScorePoint(s.ctx, &ScorePointInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotOne,
	})

	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MatchServiceTestSuite) TestScorePoint_CompletingMatchSavesHistoryOnce() {
	s.expectLookup(s.matchPointFor(), nil)

	record := &models.MatchRecord{ID: 1745064000000, WinnerName: "Ana", LoserName: "Ben"}
	s.mockHistoryService.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *history.SaveMatchInput) (*history.SaveMatchOutput, error) {
			s.Equal("Ana", input.WinnerName)
			s.Equal("Ben", input.LoserName)
			s.Equal(models.PlayerSlotOne, input.WinnerSlot)
			s.Equal(2, input.Score.Player1.Sets)
			s.Equal(models.PlayerSlotOne, input.Score.Winner)
			s.Equal([]models.SetScore{{Player1: 6, Player2: 4}, {Player1: 6, Player2: 2}}, input.Score.SetScores)
			s.Require().NotNil(input.Stats)
			s.Equal(4, input.Stats.Player1.Aces)
			s.Equal(3, input.Stats.Player2.DoubleFaults)
			return &history.SaveMatchOutput{Record: record}, nil
		}).
		Times(1)
	saved := s.expectSaves(2)

	output, err := s.service.ScorePoint(s.ctx, &ScorePointInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotOne,
	})

	s.Require().NoError(err)
	s.Equal([]models.Notification{{Kind: models.NotificationMatchWon, Player: models.PlayerSlotOne}}, output.Notifications)
	s.Equal(record, output.Record)
	s.Equal(models.MatchStatusCompleted, output.Match.Status)
	s.Equal(record.ID, output.Match.RecordID)

	s.Require().Len(*saved, 2)
	s.Equal(models.MatchStatusCompleted, (*saved)[0].Status)
	s.Zero((*saved)[0].RecordID)
	s.Equal(record.ID, (*saved)[1].RecordID)
}

func (s *MatchServiceTestSuite) TestScorePoint_CompletionSaveErrorSkipsHistory() {
	expectedError := errors.New("redis blip")
	s.expectLookup(s.matchPointFor(), nil)
	s.mockMatchRepo.EXPECT().SaveMatch(gomock.Any(), gomock.Any()).Return(expectedError)
	s.mockHistoryService.EXPECT().SaveMatch(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.ScorePoint(s.ctx, &ScorePointInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotOne,
	})

	s.ErrorIs(err, expectedError)
}

func (s *MatchServiceTestSuite) TestScorePoint_RetryAfterSaveErrorRecordsOnce() {
	repo := &flakyRepository{Repository: matchRepo.NewMemory(), failures: 1}
	store := record_store.NewMemory()
	historySvc, err := history.New(&history.Config{
		Store:  store,
		Clock:  s.mockClock,
		Logger: log.New(io.Discard),
	})
	s.Require().NoError(err)
	svc, err := New(&Config{
		MatchRepo:      repo,
		HistoryService: historySvc,
		Clock:          s.mockClock,
		UUIDGenerator:  s.mockUUID,
		Logger:         log.New(io.Discard),
	})
	s.Require().NoError(err)

	s.Require().NoError(repo.Repository.SaveMatch(s.ctx, &matchRepo.SaveMatchInput{Match: s.matchPointFor()}))

	_, err = svc.ScorePoint(s.ctx, &ScorePointInput{ChannelID: s.testChannelID, Player: models.PlayerSlotOne})
	s.Require().Error(err)

	output, err := svc.ScorePoint(s.ctx, &ScorePointInput{ChannelID: s.testChannelID, Player: models.PlayerSlotOne})
	s.Require().NoError(err)
	s.Require().NotNil(output.Record)

	_, err = svc.ScorePoint(s.ctx, &ScorePointInput{ChannelID: s.testChannelID, Player: models.PlayerSlotOne})
	s.Require().NoError(err)

	records, err := historySvc.ListMatches(s.ctx, &history.ListMatchesInput{})
	s.Require().NoError(err)
	s.Len(records.Records, 1)

	stored, err := repo.GetMatchByChannel(s.ctx, &matchRepo.GetMatchByChannelInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusCompleted, stored.Status)
	s.Equal(output.Record.ID, stored.RecordID)
}

// flakyRepository fails the first SaveMatch calls
type flakyRepository struct {
	matchRepo.Repository
	failures int
}

func (r *flakyRepository) SaveMatch(ctx context.Context, input *matchRepo.SaveMatchInput) error {
	if r.failures > 0 {
		r.failures--
		return errors.New("redis blip")
	}
	return r.Repository.SaveMatch(ctx, input)
}

func (s *MatchServiceTestSuite) TestScorePoint_HistoryFailureStillCompletes() {
	s.expectLookup(s.matchPointFor(), nil)
	s.mockHistoryService.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk full"))
	saved := s.expectSave()

	output, err := s.service.ScorePoint(s.ctx, &ScorePointInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotOne,
	})

	s.Require().NoError(err)
	s.Nil(output.Record)
	s.Equal(models.MatchStatusCompleted, saved.Status)
	s.Zero(saved.RecordID)
	s.Len(output.Notifications, 1)
}

func (s *MatchServiceTestSuite) TestScorePoint_CompletedMatchIsNoOp() {
	match := s.matchPointFor()
	match.State.Winner = models.PlayerSlotOne
	match.State.Player1.Sets = 2
	match.Status = models.MatchStatusCompleted
	s.expectLookup(match, nil)

	output, err := s.service.ScorePoint(s.ctx, &ScorePointInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotTwo,
	})

	s.Require().NoError(err)
	s.Empty(output.Notifications)
	s.Nil(output.Record)
	s.Equal(match.State, output.Match.State)
}

func (s *MatchServiceTestSuite) TestScorePoint_SaveError() {
	expectedError := errors.New("redis down")
	s.expectLookup(s.newMatch(), nil)
	s.mockMatchRepo.EXPECT().SaveMatch(gomock.Any(), gomock.Any()).Return(expectedError)

	_, err := s.service.ScorePoint(s.ctx, &ScorePointInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotOne,
	})

	s.ErrorIs(err, expectedError)
}

func (s *MatchServiceTestSuite) TestRecordStat_AceScoresAndCounts() {
	s.expectLookup(s.newMatch(), nil)
	saved := s.expectSave()

	output, err := s.service.RecordStat(s.ctx, &RecordStatInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotOne,
		Kind:      models.StatKindAce,
	})

	s.Require().NoError(err)
	s.Equal(1, output.Match.Stats.Player1.Aces)
	s.Equal(1, output.Match.State.Player1.Points)
	s.Equal(1, saved.Stats.Player1.Aces)
}

func (s *MatchServiceTestSuite) TestRecordStat_DoubleFaultOnlyCounts() {
	s.expectLookup(s.newMatch(), nil)
	s.expectSave()

	output, err := s.service.RecordStat(s.ctx, &RecordStatInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotTwo,
		Kind:      models.StatKindDoubleFault,
	})

	s.Require().NoError(err)
	s.Equal(1, output.Match.Stats.Player2.DoubleFaults)
	s.Equal(models.MatchState{}, output.Match.State)
}

func (s *MatchServiceTestSuite) TestRecordStat_WinnerCanCompleteMatch() {
	s.expectLookup(s.matchPointFor(), nil)
	s.mockHistoryService.EXPECT().
		SaveMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *history.SaveMatchInput) (*history.SaveMatchOutput, error) {
			s.Equal(10, input.Stats.Player1.Winners)
			return &history.SaveMatchOutput{Record: &models.MatchRecord{ID: 7}}, nil
		})
	s.expectSaves(2)

	output, err := s.service.RecordStat(s.ctx, &RecordStatInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotOne,
		Kind:      models.StatKindWinner,
	})

	s.Require().NoError(err)
	s.Equal(int64(7), output.Match.RecordID)
}

func (s *MatchServiceTestSuite) TestRecordStat_InvalidKind() {
	_, err := s.service.RecordStat(s.ctx, &RecordStatInput{
		ChannelID: s.testChannelID,
		Player:    models.PlayerSlotOne,
		Kind:      "lob",
	})

	s.ErrorIs(err, ErrInvalidStat)
}

func (s *MatchServiceTestSuite) TestResetMatch_KeepsPlayers() {
	match := s.matchPointFor()
	match.Status = models.MatchStatusCompleted
	match.RecordID = 99
	s.expectLookup(match, nil)
	saved := s.expectSave()

	output, err := s.service.ResetMatch(s.ctx, &ResetMatchInput{ChannelID: s.testChannelID})

	s.Require().NoError(err)
	s.Equal("Ana", output.Match.Player1Name)
	s.Equal("Ben", output.Match.Player2Name)
	s.Equal("message-1", output.Match.MessageID)
	s.Equal(models.MatchState{}, output.Match.State)
	s.Equal(models.MatchStats{}, output.Match.Stats)
	s.Equal(models.MatchStatusInProgress, saved.Status)
	s.Zero(saved.RecordID)
}

func (s *MatchServiceTestSuite) TestAbandonMatch() {
	s.expectLookup(s.newMatch(), nil)
	s.mockMatchRepo.EXPECT().
		DeleteMatch(gomock.Any(), &matchRepo.DeleteMatchInput{MatchID: s.testMatchID}).
		Return(nil)

	err := s.service.AbandonMatch(s.ctx, &AbandonMatchInput{ChannelID: s.testChannelID})

	s.NoError(err)
}

func (s *MatchServiceTestSuite) TestAbandonMatch_NoMatch() {
	s.expectLookup(nil, matchRepo.ErrMatchNotFound)

	err := s.service.AbandonMatch(s.ctx, &AbandonMatchInput{ChannelID: s.testChannelID})

	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MatchServiceTestSuite) TestSetMessageID() {
	s.expectLookup(s.newMatch(), nil)
	saved := s.expectSave()

	err := s.service.SetMessageID(s.ctx, &SetMessageIDInput{
		ChannelID: s.testChannelID,
		MessageID: "message-2",
	})

	s.Require().NoError(err)
	s.Equal("message-2", saved.MessageID)
}
