// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/statblock-api/internal/clients/srd"
	srdmock "github.com/KirkDiggler/statblock-api/internal/clients/srd/mock"
	parseresults "github.com/KirkDiggler/statblock-api/internal/repositories/parse_results"
	parseresultsmock "github.com/KirkDiggler/statblock-api/internal/repositories/parse_results/mock"
)

// Now is the instant the repository helpers stamp on records
var Now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// ExpectRecordGet sets up a mock expectation for loading a stored record
func ExpectRecordGet(mockRepo *parseresultsmock.MockRepository, record *parseresults.Record) *gomock.Call {
	return mockRepo.EXPECT().
		Get(gomock.Any(), parseresults.GetInput{ID: record.ID}).
		Return(&parseresults.GetOutput{Record: record}, nil)
}

// ExpectRecordGetError sets up a mock expectation for a failed load
func ExpectRecordGetError(mockRepo *parseresultsmock.MockRepository, id string, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Get(gomock.Any(), parseresults.GetInput{ID: id}).
		Return(nil, err)
}

// ExpectRecordCreate sets up a mock expectation for storing a new record.
// check, when set, sees the record before it is stamped.
func ExpectRecordCreate(mockRepo *parseresultsmock.MockRepository, check func(*parseresults.Record)) *gomock.Call {
	return mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input parseresults.CreateInput) (*parseresults.CreateOutput, error) {
			if check != nil {
				check(input.Record)
			}
			stored := *input.Record
			stored.CreatedAt = Now.Unix()
			stored.UpdatedAt = Now.Unix()
			return &parseresults.CreateOutput{Record: &stored}, nil
		})
}

// ExpectRecordUpdate sets up a mock expectation for replacing a record
func ExpectRecordUpdate(mockRepo *parseresultsmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input parseresults.UpdateInput) (*parseresults.UpdateOutput, error) {
			stored := *input.Record
			stored.UpdatedAt = Now.Unix()
			return &parseresults.UpdateOutput{Record: &stored}, nil
		})
}

// ExpectMonster sets up a mock expectation for an SRD lookup
func ExpectMonster(mockClient *srdmock.MockClient, key string, monster *srd.Monster, err error) *gomock.Call {
	return mockClient.EXPECT().
		GetMonster(gomock.Any(), key).
		Return(monster, err)
}
