package impl

import (
	"context"
	"testing"

	"shiplog/internal/domain/entity"
	"shiplog/internal/domain/service"
	mockService "shiplog/internal/mocks/service"
	mockUsecase "shiplog/internal/mocks/usecase"
	"shiplog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrackingService_Start_FirstVoyage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	// No existing voyages, so an unresolved start is unambiguous.
	logbook.EXPECT().Snapshot().Return(&usecase.Snapshot{})
	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).Return(nil)

	state, err := svc.Start(ctx, usecase.StartInput{})

	require.NoError(t, err)
	assert.Equal(t, entity.TrackingModeTracking, state.Mode)
	assert.NotEqual(t, uuid.Nil, state.CurrentVoyageID)
	assert.False(t, state.RapidSampling)
	assert.False(t, state.StartedAt.IsZero())
}

func TestTrackingService_Start_RequiresChoiceWhenVoyagesExist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	logbook.EXPECT().Snapshot().Return(&usecase.Snapshot{
		Voyages: []*entity.VoyageGroup{{VoyageID: uuid.New()}},
	})

	state, err := svc.Start(ctx, usecase.StartInput{})

	assert.ErrorIs(t, err, ErrVoyageChoiceRequired)
	// No transition happened and the recorder was never asked to start.
	assert.Equal(t, entity.TrackingModeIdle, state.Mode)
	recorder.AssertNotCalled(t, "StartRecording", mock.Anything, mock.Anything, mock.Anything)
}

func TestTrackingService_Start_ContinueVoyage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	voyageID := uuid.New()
	recorder.EXPECT().StartRecording(ctx, false, voyageID).Return(nil)

	state, err := svc.Start(ctx, usecase.StartInput{
		Resolution:       usecase.StartResolutionContinue,
		ContinueVoyageID: voyageID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TrackingModeTracking, state.Mode)
	assert.Equal(t, voyageID, state.CurrentVoyageID)
}

func TestTrackingService_Start_ContinueWithoutVoyageID(t *testing.T) {
	t.Parallel()

	svc := NewTrackingService(
		mockService.NewMockRecorderService(t),
		nil,
		mockUsecase.NewMockLogbookUsecase(t),
		testLogger(),
	)

	state, err := svc.Start(context.Background(), usecase.StartInput{
		Resolution: usecase.StartResolutionContinue,
	})

	assert.ErrorIs(t, err, ErrContinueVoyageRequired)
	assert.Equal(t, entity.TrackingModeIdle, state.Mode)
}

func TestTrackingService_Start_RecorderFailureRevertsState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).
		Return(errors.New("recorder unreachable"))

	state, err := svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})

	require.Error(t, err)
	assert.Equal(t, entity.TrackingModeIdle, state.Mode)
	assert.Equal(t, uuid.Nil, state.CurrentVoyageID)
	assert.Equal(t, entity.TrackingModeIdle, svc.Status().Mode)
}

func TestTrackingService_Start_WhileTracking(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).Return(nil).Once()

	_, err := svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})
	require.NoError(t, err)

	_, err = svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})

	assert.ErrorIs(t, err, ErrAlreadyTracking)
	assert.Equal(t, entity.TrackingModeTracking, svc.Status().Mode)
}

func TestTrackingService_Pause(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).Return(nil)
	recorder.EXPECT().SetRapidSampling(ctx, true).Return(nil)
	recorder.EXPECT().PauseRecording(ctx).Return(nil)

	started, err := svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})
	require.NoError(t, err)

	_, err = svc.SetRapidSampling(ctx, true)
	require.NoError(t, err)

	state, err := svc.Pause(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.TrackingModePaused, state.Mode)
	// Pausing clears rapid sampling but keeps the voyage.
	assert.False(t, state.RapidSampling)
	assert.Equal(t, started.CurrentVoyageID, state.CurrentVoyageID)
}

func TestTrackingService_Pause_WhileIdle(t *testing.T) {
	t.Parallel()

	svc := NewTrackingService(
		mockService.NewMockRecorderService(t),
		nil,
		mockUsecase.NewMockLogbookUsecase(t),
		testLogger(),
	)

	_, err := svc.Pause(context.Background())

	assert.ErrorIs(t, err, ErrNotTracking)
}

func TestTrackingService_Pause_IsDeadEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).Return(nil)
	recorder.EXPECT().PauseRecording(ctx).Return(nil)

	_, err := svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})
	require.NoError(t, err)
	_, err = svc.Pause(ctx)
	require.NoError(t, err)

	// Paused offers no resume; only Stop or a fresh Start leave it.
	_, err = svc.Pause(ctx)
	assert.ErrorIs(t, err, ErrNotTracking)
	_, err = svc.SetRapidSampling(ctx, true)
	assert.ErrorIs(t, err, ErrNotTracking)
}

func TestTrackingService_Stop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).Return(nil)
	recorder.EXPECT().StopRecording(ctx).Return(nil)

	_, err := svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})
	require.NoError(t, err)

	state, err := svc.Stop(ctx, true)

	require.NoError(t, err)
	assert.Equal(t, entity.TrackingModeIdle, state.Mode)
	assert.Equal(t, uuid.Nil, state.CurrentVoyageID)
	assert.Equal(t, entity.GpsHealthNone, state.GpsHealth)
}

func TestTrackingService_Stop_RequiresConfirmation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).Return(nil)

	_, err := svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})
	require.NoError(t, err)

	state, err := svc.Stop(ctx, false)

	assert.ErrorIs(t, err, ErrStopConfirmationRequired)
	assert.Equal(t, entity.TrackingModeTracking, state.Mode)
	recorder.AssertNotCalled(t, "StopRecording", mock.Anything)
}

func TestTrackingService_Stop_WhileIdle(t *testing.T) {
	t.Parallel()

	svc := NewTrackingService(
		mockService.NewMockRecorderService(t),
		nil,
		mockUsecase.NewMockLogbookUsecase(t),
		testLogger(),
	)

	_, err := svc.Stop(context.Background(), true)

	assert.ErrorIs(t, err, ErrNotTracking)
}

func TestTrackingService_SetRapidSampling_RecorderFailureReverts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).Return(nil)
	recorder.EXPECT().SetRapidSampling(ctx, true).Return(errors.New("recorder unreachable"))

	started, err := svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})
	require.NoError(t, err)

	state, err := svc.SetRapidSampling(ctx, true)

	require.Error(t, err)
	assert.False(t, state.RapidSampling)
	assert.Equal(t, entity.TrackingModeTracking, state.Mode)
	assert.Equal(t, started.CurrentVoyageID, state.CurrentVoyageID)
}

func TestTrackingService_RecordGpsHealth(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).Return(nil)

	started, err := svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})
	require.NoError(t, err)

	svc.RecordGpsHealth(entity.GpsHealthStale)

	state := svc.Status()
	assert.Equal(t, entity.GpsHealthStale, state.GpsHealth)
	// A health reading never changes the mode or voyage.
	assert.Equal(t, entity.TrackingModeTracking, state.Mode)
	assert.Equal(t, started.CurrentVoyageID, state.CurrentVoyageID)
}

func TestTrackingService_ChangesSignalOnTransition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, nil, logbook, testLogger())

	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).Return(nil)

	_, err := svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})
	require.NoError(t, err)

	select {
	case <-svc.Changes():
	default:
		t.Fatal("expected a change signal after a transition")
	}
}

func TestTrackingService_PublishesLifecycleEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	recorder := mockService.NewMockRecorderService(t)
	publisher := mockService.NewMockEventPublisher(t)
	logbook := mockUsecase.NewMockLogbookUsecase(t)
	svc := NewTrackingService(recorder, publisher, logbook, testLogger())

	recorder.EXPECT().StartRecording(ctx, true, uuid.Nil).Return(nil)
	recorder.EXPECT().StopRecording(ctx).Return(nil)

	var eventTypes []string
	publisher.EXPECT().PublishVoyageEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.VoyageEvent) {
			eventTypes = append(eventTypes, event.EventType)
		}).
		Return(nil).
		Times(2)

	_, err := svc.Start(ctx, usecase.StartInput{Resolution: usecase.StartResolutionNew})
	require.NoError(t, err)
	_, err = svc.Stop(ctx, true)
	require.NoError(t, err)

	assert.Equal(t, []string{service.VoyageEventStarted, service.VoyageEventStopped}, eventTypes)
}
