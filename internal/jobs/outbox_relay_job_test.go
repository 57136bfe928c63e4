package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRelayer struct {
	mock.Mock
}

func (m *MockOutboxRelayer) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockJob struct {
	mock.Mock
}

func (m *MockJob) Start() error {
	return m.Called().Error(0)
}

func (m *MockJob) Stop() {
	m.Called()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func batchOf(size int) any {
	return mock.MatchedBy(func(cmd commands.RelayOutboxCommand) bool {
		return cmd.BatchSize() == size
	})
}

func TestOutboxRelayJob_RunOnce_RelaysConfiguredBatch(t *testing.T) {
	relayer := new(MockOutboxRelayer)
	relayer.On("Handle", mock.Anything, batchOf(25)).Return(3, nil).Once()

	job := jobs.NewOutboxRelayJob(relayer, "", 25, discardLogger())
	job.RunOnce()

	relayer.AssertExpectations(t)
}

func TestOutboxRelayJob_RunOnce_SwallowsRelayError(t *testing.T) {
	relayer := new(MockOutboxRelayer)
	relayer.On("Handle", mock.Anything, batchOf(10)).Return(0, errors.New("broker down")).Once()

	job := jobs.NewOutboxRelayJob(relayer, "", 10, discardLogger())
	assert.NotPanics(t, job.RunOnce)

	relayer.AssertExpectations(t)
}

func TestOutboxRelayJob_RunOnce_InvalidBatchSizeSkipsRelay(t *testing.T) {
	relayer := new(MockOutboxRelayer)

	job := jobs.NewOutboxRelayJob(relayer, "", 0, discardLogger())
	job.RunOnce()

	relayer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestOutboxRelayJob_Start_RejectsBadSchedule(t *testing.T) {
	job := jobs.NewOutboxRelayJob(new(MockOutboxRelayer), "not a schedule", 10, discardLogger())

	require.Error(t, job.Start())
}

func TestOutboxRelayJob_StartStop(t *testing.T) {
	job := jobs.NewOutboxRelayJob(new(MockOutboxRelayer), "0 0 0 1 1 *", 10, discardLogger())

	require.NoError(t, job.Start())
	job.Stop()
}

func TestJobManager_StartAll_StopsStartedJobsOnFailure(t *testing.T) {
	first := new(MockJob)
	second := new(MockJob)
	first.On("Start").Return(nil).Once()
	first.On("Stop").Return().Once()
	second.On("Start").Return(errors.New("boom")).Once()

	manager := jobs.NewJobManager(first, second)
	err := manager.StartAll()

	require.Error(t, err)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
	second.AssertNotCalled(t, "Stop")
}

func TestJobManager_StopAll_StopsInReverseOrder(t *testing.T) {
	var stopped []string
	first := new(MockJob)
	second := new(MockJob)
	first.On("Start").Return(nil)
	second.On("Start").Return(nil)
	first.On("Stop").Run(func(mock.Arguments) { stopped = append(stopped, "first") }).Return()
	second.On("Stop").Run(func(mock.Arguments) { stopped = append(stopped, "second") }).Return()

	manager := jobs.NewJobManager(first, second)
	require.NoError(t, manager.StartAll())
	manager.StopAll()
	manager.StopAll()

	assert.Equal(t, []string{"second", "first"}, stopped)
}
