package prodcal

import (
	"context"
	"strings"
	"time"

	"github.com/username/production-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// WorkWeekQuery configures a get-work-week request. Like PeriodQuery it is a
// value and setters return copies.
type WorkWeekQuery struct {
	client   *Client
	country  string
	date     *time.Time
	weekType WeekType
}

// Country overrides the client's default country code
func (q WorkWeekQuery) Country(code string) WorkWeekQuery {
	q.country = code
	return q
}

// On sets the date whose work week is requested
func (q WorkWeekQuery) On(date time.Time) WorkWeekQuery {
	q.date = ptr(date)
	return q
}

// WeekType selects five or six day weeks (five by default)
func (q WorkWeekQuery) WeekType(wt WeekType) WorkWeekQuery {
	q.weekType = wt
	return q
}

// Get performs the request. week_type is always sent.
func (q WorkWeekQuery) Get(ctx context.Context) (*WorkWeek, error) {
	const op = "get work week"

	if q.client == nil {
		return nil, newError(KindConfiguration, op, "query is not bound to a client")
	}
	if strings.TrimSpace(q.country) == "" {
		return nil, newError(KindPrecondition, op, "country code is required")
	}
	if q.date == nil {
		return nil, newError(KindPrecondition, op, "date must be set before the request")
	}
	if !q.weekType.Valid() {
		return nil, newError(KindValidation, op, "week type must be 5 or 6, got %d", int(q.weekType))
	}

	params := []Param{{Key: ParamWeekType, Value: q.weekType.String()}}
	url := q.client.url(OpGetWorkWeek, q.country, dateutil.FormatDay(*q.date), params)

	body, err := q.client.fetch(ctx, op, url)
	if err != nil {
		return nil, err
	}

	week, err := DecodeWorkWeek(body)
	if err != nil {
		return nil, err
	}

	q.client.logger.Info("Work week fetched",
		zap.String("country", q.country),
		zap.String("start", week.Start.String()),
		zap.String("end", week.End.String()))

	return week, nil
}
