package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
	"github.com/KirkDiggler/statblock-api/internal/testutils"
)

type RunnerTestSuite struct {
	suite.Suite
	runner *Runner
	ctx    context.Context
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) SetupTest() {
	parser, err := statblock.NewParser(statblock.DefaultConfig())
	s.Require().NoError(err)

	s.runner, err = NewRunner(&Config{Parser: parser})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *RunnerTestSuite) TestNewRunner_Validation() {
	_, err := NewRunner(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = NewRunner(&Config{})
	s.Require().Error(err)
}

func (s *RunnerTestSuite) TestRun_SuiteFile() {
	fixtureSuite, err := LoadSuite("testdata/suite.yaml")
	s.Require().NoError(err)
	s.Assert().Equal("core", fixtureSuite.Name)
	s.Require().Len(fixtureSuite.Cases, 3)

	report, err := s.runner.Run(s.ctx, fixtureSuite)
	s.Require().NoError(err)

	for _, c := range report.Cases {
		s.Assert().Equalf(StatusPass, c.Status, "case %s: %+v %s", c.Name, c.Differences, c.Error)
	}
	s.Assert().True(report.OK())
	s.Assert().Equal(3, report.Passed)
	s.Assert().Equal(FormatFoundryV10, report.Cases[1].Format)
	s.Assert().Positive(report.Cases[0].Summary.Info)
}

func (s *RunnerTestSuite) TestRun_Failures() {
	fixtureSuite, err := ParseSuite([]byte(`
name: failing
cases:
  - name: wrong ac
    input: "` + "Goblin\\nSmall humanoid, neutral evil\\nArmor Class 15\\nHit Points 7 (2d6)" + `"
    expected:
      armor_class: 16
      nickname: gob
  - name: accuracy floor
    input: "Mystery Creature"
    min_accuracy: 50
    expected:
      name: Mystery Creature
  - name: missing file
    input_file: does-not-exist.txt
    expected:
      name: Nothing
`))
	s.Require().NoError(err)

	report, err := s.runner.Run(s.ctx, fixtureSuite)
	s.Require().NoError(err)
	s.Require().Len(report.Cases, 3)
	s.Assert().False(report.OK())
	s.Assert().Equal(2, report.Failed)
	s.Assert().Equal(1, report.Errors)

	wrongAC := report.Cases[0]
	s.Assert().Equal(StatusFail, wrongAC.Status)
	s.Assert().Equal(1, wrongAC.Summary.Errors)
	s.Assert().Equal(1, wrongAC.Summary.Warnings)

	floor := report.Cases[1]
	s.Assert().Equal(StatusFail, floor.Status)
	last := floor.Differences[len(floor.Differences)-1]
	s.Assert().Equal(IssueBelowMinimum, last.Issue)

	s.Assert().Equal(StatusError, report.Cases[2].Status)
	s.Assert().NotEmpty(report.Cases[2].Error)
}

func (s *RunnerTestSuite) TestRun_Canceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	fixtureSuite := &Suite{Name: "x", Cases: []Case{{Name: "a", Input: testutils.GoblinStatBlock, Expected: map[string]any{}}}}
	_, err := s.runner.Run(ctx, fixtureSuite)
	s.Require().Error(err)
}

func (s *RunnerTestSuite) TestParseSuite_Validation() {
	testCases := []struct {
		name string
		yaml string
	}{
		{name: "no cases", yaml: "name: empty\n"},
		{name: "no input", yaml: "cases:\n  - name: a\n    expected: {name: x}\n"},
		{name: "both inputs", yaml: "cases:\n  - name: a\n    input: x\n    input_file: y\n    expected: {name: x}\n"},
		{name: "no expectation", yaml: "cases:\n  - name: a\n    input: x\n"},
		{name: "bad format", yaml: "cases:\n  - name: a\n    input: x\n    format: pdf\n    expected: {name: x}\n"},
		{name: "duplicate names", yaml: "cases:\n  - name: a\n    input: x\n    expected: {}\n  - name: a\n    input: y\n    expected: {}\n"},
		{name: "bad yaml", yaml: "cases: [\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := ParseSuite([]byte(tc.yaml))
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RunnerTestSuite) TestRender() {
	result, err := statblock.Parse(testutils.GoblinStatBlock)
	s.Require().NoError(err)

	doc, err := Render(result, FormatResult)
	s.Require().NoError(err)
	s.Assert().Same(result, doc)

	_, err = Render(result, "pdf")
	s.Assert().True(errors.IsInvalidArgument(err))
}
