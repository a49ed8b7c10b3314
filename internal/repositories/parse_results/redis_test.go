package parseresults_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/pkg/clock"
	parseresults "github.com/KirkDiggler/statblock-api/internal/repositories/parse_results"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
	"github.com/KirkDiggler/statblock-api/internal/testutils"
)

const testRecordID = "pr_123"

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    parseresults.Repository
	clock   *clock.Fixed
	ctx     context.Context
	result  *statblock.ParseResult
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.clock = &clock.Fixed{T: time.Unix(1700000000, 0)}

	repo, err := parseresults.NewRedisRepository(&parseresults.Config{
		Client: client,
		Clock:  s.clock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()

	result, err := statblock.Parse(testutils.GoblinStatBlock)
	s.Require().NoError(err)
	s.result = result
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newRecord() *parseresults.Record {
	return &parseresults.Record{
		ID:     testRecordID,
		Source: "monster manual",
		Text:   testutils.GoblinStatBlock,
		Result: s.result,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepository_Validation() {
	_, err := parseresults.NewRedisRepository(&parseresults.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = parseresults.NewRedisRepository(nil)
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, parseresults.CreateInput{Record: s.newRecord()})
	s.Require().NoError(err)
	s.Assert().Equal(int64(1700000000), created.Record.CreatedAt)
	s.Assert().Equal(int64(1700000000), created.Record.UpdatedAt)

	s.Assert().Equal(time.Hour, s.mr.TTL("statblock:result:"+testRecordID))

	got, err := s.repo.Get(s.ctx, parseresults.GetInput{ID: testRecordID})
	s.Require().NoError(err)
	s.Assert().Equal(created.Record, got.Record)
	s.Assert().Equal("Goblin", got.Record.Result.Name)
	s.Assert().Equal(testRecordID, got.Record.GetID())
	s.Assert().Equal(parseresults.EntityType, got.Record.GetType())
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, parseresults.CreateInput{Record: s.newRecord()})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, parseresults.CreateInput{Record: s.newRecord()})
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	testCases := []struct {
		name   string
		record *parseresults.Record
	}{
		{"nil record", nil},
		{"empty id", &parseresults.Record{Text: "x", Result: s.result}},
		{"empty text", &parseresults.Record{ID: "a", Result: s.result}},
		{"nil result", &parseresults.Record{ID: "a", Text: "x"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, parseresults.CreateInput{Record: tc.record})
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, parseresults.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, parseresults.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestExpiry() {
	_, err := s.repo.Create(s.ctx, parseresults.CreateInput{Record: s.newRecord()})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, parseresults.GetInput{ID: testRecordID})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	created, err := s.repo.Create(s.ctx, parseresults.CreateInput{Record: s.newRecord()})
	s.Require().NoError(err)

	s.mr.FastForward(30 * time.Minute)
	s.clock.T = s.clock.T.Add(30 * time.Minute)

	record := created.Record
	_, err = record.Result.SetOverride(statblock.FieldArmorClass, "16")
	s.Require().NoError(err)

	updated, err := s.repo.Update(s.ctx, parseresults.UpdateInput{Record: record})
	s.Require().NoError(err)
	s.Assert().Equal(created.Record.CreatedAt, updated.Record.CreatedAt)
	s.Assert().Equal(int64(1700001800), updated.Record.UpdatedAt)
	s.Assert().Equal(time.Hour, s.mr.TTL("statblock:result:"+testRecordID))

	got, err := s.repo.Get(s.ctx, parseresults.GetInput{ID: testRecordID})
	s.Require().NoError(err)
	s.Assert().Equal(16, got.Record.Result.ArmorClass)
	rec, ok := got.Record.Result.Field(statblock.FieldArmorClass)
	s.Require().True(ok)
	s.Assert().Equal(statblock.MethodOverride, rec.Method)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, parseresults.UpdateInput{Record: s.newRecord()})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, parseresults.CreateInput{Record: s.newRecord()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, parseresults.DeleteInput{ID: testRecordID})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, parseresults.DeleteInput{ID: testRecordID})
	s.Assert().True(errors.IsNotFound(err))
}
