package v1alpha1_test

import (
	"context"
	"encoding/base64"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/statblock-api/internal/clients/srd"
	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/fixtures"
	"github.com/KirkDiggler/statblock-api/internal/handlers/statblock/v1alpha1"
	orchestrator "github.com/KirkDiggler/statblock-api/internal/orchestrators/statblock"
	statblockmock "github.com/KirkDiggler/statblock-api/internal/orchestrators/statblock/mock"
	parseresults "github.com/KirkDiggler/statblock-api/internal/repositories/parse_results"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
	"github.com/KirkDiggler/statblock-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *statblockmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = statblockmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		StatBlockService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) goblinRecord() *parseresults.Record {
	result, err := statblock.Parse(testutils.GoblinStatBlock)
	s.Require().NoError(err)
	return &parseresults.Record{ID: "sb_1", Text: testutils.GoblinStatBlock, Result: result}
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) assertCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Assert().Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandler_Validation() {
	_, err := v1alpha1.NewHandler(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestParseStatBlock() {
	record := s.goblinRecord()
	s.mockService.EXPECT().
		ParseStatBlock(s.ctx, &orchestrator.ParseStatBlockInput{Text: record.Text, Source: "MM p.166"}).
		Return(&orchestrator.ParseStatBlockOutput{Record: record}, nil)

	resp, err := s.handler.ParseStatBlock(s.ctx, s.request(map[string]any{
		"text":   record.Text,
		"source": "MM p.166",
	}))
	s.Require().NoError(err)

	var out struct {
		Record parseresults.Record `json:"record"`
	}
	s.Require().NoError(v1alpha1.FromStruct(resp, &out))
	s.Assert().Equal("sb_1", out.Record.ID)
	s.Assert().Equal("Goblin", out.Record.Result.Name)
	s.Assert().Equal(15, out.Record.Result.ArmorClass)
	s.Assert().Equal(record.Result.Accuracy, out.Record.Result.Accuracy)
}

func (s *HandlerTestSuite) TestParseStatBlock_EmptyInput() {
	s.mockService.EXPECT().
		ParseStatBlock(s.ctx, gomock.Any()).
		Return(nil, errors.Wrap(statblock.ErrEmptyInput, "failed to parse stat block"))

	_, err := s.handler.ParseStatBlock(s.ctx, s.request(map[string]any{"text": "  "}))
	s.assertCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetParseResult() {
	s.Run("requires id", func() {
		_, err := s.handler.GetParseResult(s.ctx, wrapperspb.String(""))
		s.assertCode(err, codes.InvalidArgument)
	})

	s.Run("not found", func() {
		s.mockService.EXPECT().
			GetParseResult(s.ctx, &orchestrator.GetParseResultInput{ID: "sb_404"}).
			Return(nil, errors.NotFound("parse result not found"))

		_, err := s.handler.GetParseResult(s.ctx, wrapperspb.String("sb_404"))
		s.assertCode(err, codes.NotFound)
	})

	s.Run("found", func() {
		record := s.goblinRecord()
		s.mockService.EXPECT().
			GetParseResult(s.ctx, &orchestrator.GetParseResultInput{ID: "sb_1"}).
			Return(&orchestrator.GetParseResultOutput{Record: record}, nil)

		resp, err := s.handler.GetParseResult(s.ctx, wrapperspb.String("sb_1"))
		s.Require().NoError(err)
		rec := resp.GetFields()["record"].GetStructValue()
		s.Assert().Equal("sb_1", rec.GetFields()["id"].GetStringValue())
	})
}

func (s *HandlerTestSuite) TestSetOverride() {
	record := s.goblinRecord()
	entry, err := record.Result.SetOverride(statblock.FieldArmorClass, "16")
	s.Require().NoError(err)

	s.mockService.EXPECT().
		SetOverride(s.ctx, &orchestrator.SetOverrideInput{ID: "sb_1", Field: "ac", Value: "16"}).
		Return(&orchestrator.SetOverrideOutput{Entry: entry, Record: record}, nil)

	resp, err := s.handler.SetOverride(s.ctx, s.request(map[string]any{
		"id":    "sb_1",
		"field": "ac",
		"value": "16",
	}))
	s.Require().NoError(err)

	var out struct {
		Entry statblock.FieldRecord `json:"entry"`
	}
	s.Require().NoError(v1alpha1.FromStruct(resp, &out))
	s.Assert().Equal(statblock.MethodOverride, out.Entry.Method)
	s.Assert().Equal("16", out.Entry.RawValue)
	s.Assert().Equal(1.0, out.Entry.Confidence)
}

func (s *HandlerTestSuite) TestExportRecord() {
	s.Run("json is sent as text", func() {
		s.mockService.EXPECT().
			ExportRecord(s.ctx, &orchestrator.ExportRecordInput{ID: "sb_1", Format: "foundry-v12"}).
			Return(&orchestrator.ExportRecordOutput{
				Data:        []byte(`{"name":"Goblin"}`),
				ContentType: "application/json",
				Filename:    "goblin.json",
			}, nil)

		resp, err := s.handler.ExportRecord(s.ctx, s.request(map[string]any{"id": "sb_1", "format": "foundry-v12"}))
		s.Require().NoError(err)
		fields := resp.GetFields()
		s.Assert().Equal(`{"name":"Goblin"}`, fields["data"].GetStringValue())
		s.Assert().Equal(v1alpha1.EncodingUTF8, fields["encoding"].GetStringValue())
		s.Assert().Equal("goblin.json", fields["filename"].GetStringValue())
	})

	s.Run("xlsx is base64 encoded", func() {
		payload := []byte{0x50, 0x4b, 0x03, 0x04, 0xff}
		s.mockService.EXPECT().
			ExportRecord(s.ctx, &orchestrator.ExportRecordInput{ID: "sb_1", Format: "xlsx"}).
			Return(&orchestrator.ExportRecordOutput{
				Data:        payload,
				ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				Filename:    "goblin.xlsx",
			}, nil)

		resp, err := s.handler.ExportRecord(s.ctx, s.request(map[string]any{"id": "sb_1", "format": "xlsx"}))
		s.Require().NoError(err)
		fields := resp.GetFields()
		s.Assert().Equal(v1alpha1.EncodingBase64, fields["encoding"].GetStringValue())
		decoded, err := base64.StdEncoding.DecodeString(fields["data"].GetStringValue())
		s.Require().NoError(err)
		s.Assert().Equal(payload, decoded)
	})

	s.Run("unknown format", func() {
		s.mockService.EXPECT().
			ExportRecord(s.ctx, gomock.Any()).
			Return(nil, errors.InvalidArgument("Format: must be one of json, foundry-v10, foundry-v12, xlsx"))

		_, err := s.handler.ExportRecord(s.ctx, s.request(map[string]any{"id": "sb_1", "format": "pdf"}))
		s.assertCode(err, codes.InvalidArgument)
	})
}

func (s *HandlerTestSuite) TestCrossCheck() {
	s.Run("differences", func() {
		s.mockService.EXPECT().
			CrossCheck(s.ctx, &orchestrator.CrossCheckInput{ID: "sb_1", MonsterKey: "goblin"}).
			Return(&orchestrator.CrossCheckOutput{
				Monster: &srd.Monster{Key: "goblin", Name: "Goblin", ArmorClass: 15},
				Differences: []fixtures.Difference{{
					Path:     "actions.Net",
					Issue:    fixtures.IssueMissingKey,
					Expected: "0",
					Severity: fixtures.SeverityError,
				}},
				Summary: fixtures.Summary{Errors: 1},
			}, nil)

		resp, err := s.handler.CrossCheck(s.ctx, s.request(map[string]any{"id": "sb_1", "monster_key": "goblin"}))
		s.Require().NoError(err)

		var out orchestrator.CrossCheckOutput
		s.Require().NoError(v1alpha1.FromStruct(resp, &out))
		s.Assert().Equal("goblin", out.Monster.Key)
		s.Require().Len(out.Differences, 1)
		s.Assert().Equal(fixtures.SeverityError, out.Differences[0].Severity)
		s.Assert().Equal(1, out.Summary.Errors)
	})

	s.Run("not configured", func() {
		s.mockService.EXPECT().
			CrossCheck(s.ctx, gomock.Any()).
			Return(nil, errors.FailedPrecondition("srd client is not configured"))

		_, err := s.handler.CrossCheck(s.ctx, s.request(map[string]any{"id": "sb_1"}))
		s.assertCode(err, codes.FailedPrecondition)
	})
}

// TestOverTheWire registers the handler on a real grpc server and calls it
// through the generated-style client
func (s *HandlerTestSuite) TestOverTheWire() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterStatBlockServiceServer(srv, s.handler)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()
	client := v1alpha1.NewStatBlockServiceClient(conn)

	record := s.goblinRecord()
	s.mockService.EXPECT().
		GetParseResult(gomock.Any(), &orchestrator.GetParseResultInput{ID: "sb_1"}).
		Return(&orchestrator.GetParseResultOutput{Record: record}, nil)
	s.mockService.EXPECT().
		GetParseResult(gomock.Any(), &orchestrator.GetParseResultInput{ID: "sb_2"}).
		Return(nil, errors.NotFound("parse result not found").WithMeta("id", "sb_2"))

	resp, err := client.GetParseResult(s.ctx, wrapperspb.String("sb_1"))
	s.Require().NoError(err)
	rec := resp.GetFields()["record"].GetStructValue()
	s.Assert().Equal("Goblin", rec.GetFields()["result"].GetStructValue().GetFields()["name"].GetStringValue())

	_, err = client.GetParseResult(s.ctx, wrapperspb.String("sb_2"))
	s.assertCode(err, codes.NotFound)
	converted := errors.FromGRPCError(err)
	s.Assert().True(errors.IsNotFound(converted))
	s.Assert().Equal("sb_2", errors.GetMeta(converted)["id"])
}
