package prodcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePeriodList(t *testing.T) {
	period, err := DecodePeriodList([]byte(periodListBody))
	require.NoError(t, err)

	assert.Equal(t, "ru", period.CountryCode)
	assert.Equal(t, "Россия", period.CountryName)
	assert.Equal(t, NewDate(2025, time.January, 1), period.Start)
	assert.Equal(t, NewDate(2025, time.January, 3), period.End)
	assert.Equal(t, 3, period.Statistic.CalendarDays)
	assert.Equal(t, 3, period.Statistic.Holidays)

	require.Len(t, period.Days, 3)
	first := period.Days[0]
	assert.Equal(t, "01.01.2025", first.Date.String())
	assert.Equal(t, PublicHoliday, first.Type)
	assert.Equal(t, "ср", first.WeekDay)
	assert.False(t, first.Type.IsWorking())

	day, ok := period.Day(time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "чт", day.WeekDay)
}

func TestDecodePeriodMap(t *testing.T) {
	period, err := DecodePeriodMap([]byte(periodMapBody))
	require.NoError(t, err)

	assert.Equal(t, 77, period.RegionCode)
	assert.Equal(t, 167, period.Statistic.WorkingHours)
	assert.Equal(t, 1, period.Statistic.ShortenedWorkingDays)
	require.Len(t, period.Days, 2)

	short := period.Days["07.03.2025"]
	assert.Equal(t, ShortenedWorkingDay, short.Type)
	assert.Equal(t, 7, short.WorkingHours)
	assert.True(t, short.Type.IsWorking())

	holiday, ok := period.Day(time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.True(t, holiday.IsProject)

	_, ok = period.Day(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestDecodeWorkWeek(t *testing.T) {
	week, err := DecodeWorkWeek([]byte(workWeekBody))
	require.NoError(t, err)

	assert.Equal(t, "ru", week.CountryCode)
	assert.Equal(t, NewDate(2025, time.March, 3), week.Start)
	assert.Equal(t, NewDate(2025, time.March, 7), week.End)
}

func TestDecode_CaseInsensitiveFields(t *testing.T) {
	body := `{"Country_Code": "by", "DT_START": "01.02.2025", "Statistic": {"WORK_DAYS": 20},
		"DAYS": [{"Date": "03.02.2025", "TYPE_ID": 1, "Working_Hours": 8}]}`

	period, err := DecodePeriodList([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "by", period.CountryCode)
	assert.Equal(t, "01.02.2025", period.Start.String())
	assert.Equal(t, 20, period.Statistic.WorkDays)
	require.Len(t, period.Days, 1)
	assert.Equal(t, WorkingDay, period.Days[0].Type)
	assert.Equal(t, 8, period.Days[0].WorkingHours)
}

func TestDecode_EmptyBodyIsProtocolError(t *testing.T) {
	for _, body := range []string{"", "   ", "\n\t "} {
		_, err := DecodePeriodList([]byte(body))
		assert.ErrorIs(t, err, ErrProtocol)

		_, err = DecodePeriodMap([]byte(body))
		assert.ErrorIs(t, err, ErrProtocol)

		_, err = DecodeWorkWeek([]byte(body))
		assert.ErrorIs(t, err, ErrProtocol)
	}
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name   string
		decode func([]byte) error
		body   string
		kind   Kind
	}{
		{"list: not json", decodeList, `<html>`, KindDecode},
		{"list: map shaped days", decodeList, periodMapBody, KindDecode},
		{"map: list shaped days", decodeMap, periodListBody, KindDecode},
		{"list: bad day date", decodeList, `{"days": [{"date": "2025-01-01", "type_id": 1}]}`, KindDecode},
		{"list: bad dt_start", decodeList, `{"dt_start": "1.1.2025", "days": []}`, KindDecode},
		{"list: unknown type id", decodeList, `{"days": [{"date": "01.01.2025", "type_id": 9}]}`, KindDecode},
		{"map: bad key", decodeMap, `{"days": {"2025-01-01": {"date": "01.01.2025", "type_id": 1}}}`, KindDecode},
		{"list: guest token message", decodeList, `{"status": "ok", "days": "access restricted"}`, KindDecode},
		{"list: error status", decodeList, `{"status": "error", "days": []}`, KindProtocol},
		{"week: bad start", decodeWeek, `{"work_week_start": "03/03/2025"}`, KindDecode},
		{"week: truncated", decodeWeek, `{"country_code": "ru"`, KindDecode},
		{"list: null body", decodeList, `null`, KindDecode},
		{"map: null body", decodeMap, ` null `, KindDecode},
		{"week: null body", decodeWeek, "null\n", KindDecode},
		{"list: array body", decodeList, `[]`, KindDecode},
		{"week: string body", decodeWeek, `"ok"`, KindDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode([]byte(tt.body))
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err), "error: %v", err)
		})
	}
}

func TestDecode_GuestTokenMessageSurfaces(t *testing.T) {
	_, err := DecodePeriodList([]byte(`{"days": "access restricted"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access restricted")
}

func TestDecode_MissingDaysIsEmpty(t *testing.T) {
	list, err := DecodePeriodList([]byte(`{"country_code": "ru"}`))
	require.NoError(t, err)
	assert.NotNil(t, list.Days)
	assert.Empty(t, list.Days)

	dict, err := DecodePeriodMap([]byte(`{"country_code": "ru", "days": null}`))
	require.NoError(t, err)
	assert.NotNil(t, dict.Days)
	assert.Empty(t, dict.Days)
}

func TestDate_MarshalRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 5)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"05.03.2025"`, string(b))

	var back Date
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, d, back)
}

func decodeList(b []byte) error {
	_, err := DecodePeriodList(b)
	return err
}

func decodeMap(b []byte) error {
	_, err := DecodePeriodMap(b)
	return err
}

func decodeWeek(b []byte) error {
	_, err := DecodeWorkWeek(b)
	return err
}
