package prodcal

import (
	"bytes"
	"encoding/json"

	"github.com/username/production-calendar/pkg/dateutil"
)

// periodResponse is the get-period envelope. days stays raw until the caller's
// mode picks the list or map decoder.
type periodResponse struct {
	Status string `json:"status"`
	PeriodInfo
	Days json.RawMessage `json:"days"`
}

type workWeekResponse struct {
	Status string `json:"status"`
	WorkWeek
}

// DecodePeriodList decodes a get-period body whose days are a JSON array
func DecodePeriodList(body []byte) (*PeriodList, error) {
	const op = "decode period list"

	resp, err := decodePeriod(op, body)
	if err != nil {
		return nil, err
	}

	days := []Day{}
	if err := decodeDays(op, resp.Days, &days); err != nil {
		return nil, err
	}

	return &PeriodList{PeriodInfo: resp.PeriodInfo, Days: days}, nil
}

// DecodePeriodMap decodes a get-period body whose days are a JSON object keyed
// by dd.MM.yyyy
func DecodePeriodMap(body []byte) (*PeriodMap, error) {
	const op = "decode period map"

	resp, err := decodePeriod(op, body)
	if err != nil {
		return nil, err
	}

	days := map[string]Day{}
	if err := decodeDays(op, resp.Days, &days); err != nil {
		return nil, err
	}

	for key := range days {
		if _, err := dateutil.ParseDay(key); err != nil {
			return nil, wrapError(err, KindDecode, op, "invalid days key")
		}
	}

	return &PeriodMap{PeriodInfo: resp.PeriodInfo, Days: days}, nil
}

// DecodeWorkWeek decodes a get-work-week body
func DecodeWorkWeek(body []byte) (*WorkWeek, error) {
	const op = "decode work week"

	if err := checkBody(op, body); err != nil {
		return nil, err
	}

	var resp workWeekResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError(err, KindDecode, op, "failed to parse response")
	}
	if err := checkStatus(op, resp.Status); err != nil {
		return nil, err
	}

	return &resp.WorkWeek, nil
}

func decodePeriod(op string, body []byte) (*periodResponse, error) {
	if err := checkBody(op, body); err != nil {
		return nil, err
	}

	var resp periodResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError(err, KindDecode, op, "failed to parse response")
	}
	if err := checkStatus(op, resp.Status); err != nil {
		return nil, err
	}

	return &resp, nil
}

// decodeDays unmarshals raw days into target. A missing or null days field
// leaves target empty.
func decodeDays(op string, raw json.RawMessage, target any) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(raw, target); err != nil {
		// Restricted tokens get a message string instead of days
		var msg string
		if err2 := json.Unmarshal(raw, &msg); err2 == nil {
			return newError(KindDecode, op, "service returned message instead of days: %s", msg)
		}
		return wrapError(err, KindDecode, op, "failed to parse days")
	}

	return nil
}

// checkBody rejects empty bodies and anything that is not a JSON object
func checkBody(op string, body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return newError(KindProtocol, op, "empty response body")
	}
	if trimmed[0] != '{' {
		return newError(KindDecode, op, "response is not a JSON object")
	}
	return nil
}

func checkStatus(op, status string) error {
	if status != "" && status != "ok" {
		return newError(KindProtocol, op, "service returned status %q", status)
	}
	return nil
}
