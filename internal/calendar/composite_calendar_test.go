package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/username/production-calendar/pkg/prodcal"
)

type mockCalendar struct {
	mock.Mock
}

func (m *mockCalendar) IsWorkday(ctx context.Context, date time.Time) (bool, int, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *mockCalendar) GetMonthInfo(ctx context.Context, year int, month time.Month) (*MonthInfo, error) {
	args := m.Called(ctx, year, month)
	info, _ := args.Get(0).(*MonthInfo)
	return info, args.Error(1)
}

func (m *mockCalendar) GetDayInfo(ctx context.Context, date time.Time) (*DayInfo, error) {
	args := m.Called(ctx, date)
	info, _ := args.Get(0).(*DayInfo)
	return info, args.Error(1)
}

func TestCompositeCalendar_PrimaryOnly(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	primary := &mockCalendar{}
	fallback := &mockCalendar{}
	primary.On("IsWorkday", ctx, date).Return(true, 8, nil).Once()
	primary.On("GetMonthInfo", ctx, 2025, time.March).Return(&MonthInfo{Year: 2025, Month: time.March, WorkingHours: 167}, nil).Once()

	cc := NewCompositeCalendar(primary, fallback, zaptest.NewLogger(t))

	isWork, hours, err := cc.IsWorkday(ctx, date)
	require.NoError(t, err)
	assert.True(t, isWork)
	assert.Equal(t, 8, hours)

	month, err := cc.GetMonthInfo(ctx, 2025, time.March)
	require.NoError(t, err)
	assert.Equal(t, 167, month.WorkingHours)

	primary.AssertExpectations(t)
	fallback.AssertNotCalled(t, "IsWorkday", mock.Anything, mock.Anything)
	fallback.AssertNotCalled(t, "GetMonthInfo", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompositeCalendar_FallbackOnError(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	apiErr := errors.New("API returned status 503")

	primary := &mockCalendar{}
	fallback := &mockCalendar{}
	primary.On("GetDayInfo", ctx, date).Return(nil, apiErr).Once()
	fallback.On("GetDayInfo", ctx, date).Return(&DayInfo{Date: date, Type: prodcal.PublicHoliday}, nil).Once()

	cc := NewCompositeCalendar(primary, fallback, zaptest.NewLogger(t))

	day, err := cc.GetDayInfo(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, prodcal.PublicHoliday, day.Type)

	primary.AssertExpectations(t)
	fallback.AssertExpectations(t)
}

func TestCompositeCalendar_BothFail(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)

	primary := &mockCalendar{}
	fallback := &mockCalendar{}
	primary.On("IsWorkday", ctx, date).Return(false, 0, errors.New("timeout")).Once()
	fallback.On("IsWorkday", ctx, date).Return(false, 0, errors.New("month not found in calendar: 2025-03")).Once()

	cc := NewCompositeCalendar(primary, fallback, zaptest.NewLogger(t))

	_, _, err := cc.IsWorkday(ctx, date)
	assert.ErrorContains(t, err, "month not found")
}

func TestCompositeCalendar_LoadFallbackSkipsNonFile(t *testing.T) {
	cc := NewCompositeCalendar(&mockCalendar{}, &mockCalendar{}, zaptest.NewLogger(t))
	assert.NoError(t, cc.LoadFallback())
}
