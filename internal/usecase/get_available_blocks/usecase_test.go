package get_available_blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-DentalScheduling/pkg/logger"
)

type mockClinicClient struct {
	mock.Mock
}

func (m *mockClinicClient) GetTimeBlocks(ctx context.Context, doctorID int64, date time.Time) ([]clinicapi.TimeBlock, error) {
	args := m.Called(ctx, doctorID, date)
	blocks, _ := args.Get(0).([]clinicapi.TimeBlock)
	return blocks, args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

var (
	today    = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tomorrow = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
)

func block(id, doctorID int64, start, end string, available bool) clinicapi.TimeBlock {
	return clinicapi.TimeBlock{
		DoctorBlockID: id,
		TimeStart:     start,
		TimeEnd:       end,
		IsAvailable:   available,
		User:          clinicapi.User{ID: doctorID},
	}
}

func newUseCase(client ClinicClient) *UseCase {
	return NewUseCase(client, logger.NewNop()).WithTimeProvider(fixedTime{now: today})
}

func TestUseCase_Execute_FiltersBookableBlocksOfDoctor(t *testing.T) {
	ctx := context.Background()
	client := &mockClinicClient{}

	client.On("GetTimeBlocks", ctx, int64(7), tomorrow).Return([]clinicapi.TimeBlock{
		block(1, 7, "2026-10-20T09:00:00", "2026-10-20T09:30:00", true),
		block(2, 7, "2026-10-20T09:30:00", "2026-10-20T10:00:00", false),
		block(3, 8, "2026-10-20T09:30:00", "2026-10-20T10:00:00", true),
		block(4, 7, "2026-10-21T09:00:00", "2026-10-21T09:30:00", true),
		block(5, 7, "2026-10-20T10:00:00", "2026-10-20T10:30:00", true),
	}, nil)

	resp, err := newUseCase(client).Execute(ctx, &Request{DoctorID: 7, Date: tomorrow})

	require.NoError(t, err)
	ids := make([]int64, len(resp.Blocks))
	for i, b := range resp.Blocks {
		ids[i] = b.DoctorBlockID
	}
	assert.Equal(t, []int64{1, 5}, ids)
	client.AssertExpectations(t)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	client := &mockClinicClient{}

	_, err := newUseCase(client).Execute(context.Background(), &Request{DoctorID: 0, Date: tomorrow})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = newUseCase(client).Execute(context.Background(), &Request{DoctorID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	client.AssertNotCalled(t, "GetTimeBlocks", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_PastDateIsEmpty(t *testing.T) {
	client := &mockClinicClient{}

	resp, err := newUseCase(client).Execute(context.Background(), &Request{
		DoctorID: 7,
		Date:     time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Blocks)
	assert.NotNil(t, resp.Blocks)
	client.AssertNotCalled(t, "GetTimeBlocks", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_TodayIsAllowed(t *testing.T) {
	ctx := context.Background()
	client := &mockClinicClient{}
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	client.On("GetTimeBlocks", ctx, int64(7), date).Return([]clinicapi.TimeBlock{}, nil)

	resp, err := newUseCase(client).Execute(ctx, &Request{DoctorID: 7, Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Blocks)
	client.AssertExpectations(t)
}

func TestUseCase_Execute_UsesClinicCalendarDay(t *testing.T) {
	ctx := context.Background()
	clinic := time.FixedZone("CEST", 2*60*60)
	// 00:30 in the clinic is still the previous day in UTC
	now := time.Date(2026, 10, 20, 0, 30, 0, 0, clinic)

	client := &mockClinicClient{}
	client.On("GetTimeBlocks", ctx, int64(7), tomorrow).Return([]clinicapi.TimeBlock{}, nil)

	uc := NewUseCase(client, logger.NewNop()).WithTimeProvider(fixedTime{now: now})

	_, err := uc.Execute(ctx, &Request{DoctorID: 7, Date: tomorrow})
	require.NoError(t, err)
	client.AssertExpectations(t)

	resp, err := uc.Execute(ctx, &Request{DoctorID: 7, Date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Empty(t, resp.Blocks)
	client.AssertNumberOfCalls(t, "GetTimeBlocks", 1)
}

func TestRealTimeProvider_Location(t *testing.T) {
	clinic := time.FixedZone("CEST", 2*60*60)

	assert.Equal(t, clinic, (&RealTimeProvider{Location: clinic}).Now().Location())
	assert.Equal(t, time.Local, (&RealTimeProvider{}).Now().Location())
}

func TestUseCase_Execute_PropagatesErrors(t *testing.T) {
	ctx := context.Background()

	client := &mockClinicClient{}
	client.On("GetTimeBlocks", ctx, int64(7), tomorrow).
		Return(nil, &clinicapi.TransportError{Op: "get_time_blocks", StatusCode: 404, Err: clinicapi.ErrNotFound})

	_, err := newUseCase(client).Execute(ctx, &Request{DoctorID: 7, Date: tomorrow})
	assert.ErrorIs(t, err, clinicapi.ErrNotFound)

	malformed := &mockClinicClient{}
	malformed.On("GetTimeBlocks", ctx, int64(7), tomorrow).Return([]clinicapi.TimeBlock{
		block(1, 7, "2026-10-20T09:30:00", "2026-10-20T09:00:00", true),
	}, nil)

	_, err = newUseCase(malformed).Execute(ctx, &Request{DoctorID: 7, Date: tomorrow})
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}
