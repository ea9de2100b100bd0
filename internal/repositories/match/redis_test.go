package match

import (
	"context"
	"testing"

	"github.com/KirkDiggler/deuce/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   *redisRepository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveMatch_WritesKeys() {
	err := s.repo.SaveMatch(s.ctx, &SaveMatchInput{Match: &models.Match{
		ID:        "match-1",
		ChannelID: "channel-1",
		Status:    models.MatchStatusInProgress,
	}})
	s.Require().NoError(err)

	s.True(s.mr.Exists("match:match-1"))

	channelMatch, err := s.mr.Get("channel:channel-1")
	s.Require().NoError(err)
	s.Equal("match-1", channelMatch)

	isMember, err := s.mr.SIsMember("active_matches", "match-1")
	s.Require().NoError(err)
	s.True(isMember)
}

func (s *RedisRepositoryTestSuite) TestGetActiveMatches_SkipsDanglingIDs() {
	_, err := s.mr.SAdd("active_matches", "ghost")
	s.Require().NoError(err)

	output, err := s.repo.GetActiveMatches(s.ctx, &GetActiveMatchesInput{})

	s.Require().NoError(err)
	s.Empty(output.Matches)
}

func (s *RedisRepositoryTestSuite) TestGetMatch_CorruptJSON() {
	s.Require().NoError(s.mr.Set("match:bad", "{nope"))

	_, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "bad"})

	s.Error(err)
	s.NotErrorIs(err, ErrMatchNotFound)
}
