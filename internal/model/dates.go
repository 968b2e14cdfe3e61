package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// datePart is a month or year as found in a JSON data file, where years are
// often written as numbers.
type datePart string

func (d *datePart) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case string(b) == "null":
		*d = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = datePart(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("date part: expected string or number, got %s", b)
	}
	*d = datePart(n.String())
	return nil
}

type jsonDates struct {
	StartMonth datePart `json:"startMonth"`
	StartYear  datePart `json:"startYear"`
	EndMonth   datePart `json:"endMonth"`
	EndYear    datePart `json:"endYear"`
}

func (j jsonDates) copyTo(startMonth, startYear, endMonth, endYear *string) {
	*startMonth = string(j.StartMonth)
	*startYear = string(j.StartYear)
	*endMonth = string(j.EndMonth)
	*endYear = string(j.EndYear)
}

// decodeWithDates decodes b into v, an alias of an entry type without
// methods, with the date fields masked, then reads the dates on their own.
func decodeWithDates(b []byte, v interface{}) (jsonDates, error) {
	var dates jsonDates
	if err := json.Unmarshal(b, &dates); err != nil {
		return dates, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return dates, err
	}
	return dates, nil
}

func (e *Education) UnmarshalJSON(b []byte) error {
	type plain Education
	aux := struct {
		*plain
		StartMonth json.RawMessage `json:"startMonth"`
		StartYear  json.RawMessage `json:"startYear"`
		EndMonth   json.RawMessage `json:"endMonth"`
		EndYear    json.RawMessage `json:"endYear"`
	}{plain: (*plain)(e)}
	dates, err := decodeWithDates(b, &aux)
	if err != nil {
		return err
	}
	dates.copyTo(&e.StartMonth, &e.StartYear, &e.EndMonth, &e.EndYear)
	return nil
}

func (e *Experience) UnmarshalJSON(b []byte) error {
	type plain Experience
	aux := struct {
		*plain
		StartMonth json.RawMessage `json:"startMonth"`
		StartYear  json.RawMessage `json:"startYear"`
		EndMonth   json.RawMessage `json:"endMonth"`
		EndYear    json.RawMessage `json:"endYear"`
	}{plain: (*plain)(e)}
	dates, err := decodeWithDates(b, &aux)
	if err != nil {
		return err
	}
	dates.copyTo(&e.StartMonth, &e.StartYear, &e.EndMonth, &e.EndYear)
	return nil
}

func (p *Project) UnmarshalJSON(b []byte) error {
	type plain Project
	aux := struct {
		*plain
		StartMonth json.RawMessage `json:"startMonth"`
		StartYear  json.RawMessage `json:"startYear"`
		EndMonth   json.RawMessage `json:"endMonth"`
		EndYear    json.RawMessage `json:"endYear"`
	}{plain: (*plain)(p)}
	dates, err := decodeWithDates(b, &aux)
	if err != nil {
		return err
	}
	dates.copyTo(&p.StartMonth, &p.StartYear, &p.EndMonth, &p.EndYear)
	return nil
}
