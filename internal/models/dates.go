package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// NewDate - полночь UTC, чтобы сравнение дат одинаково работало во всех СУБД
func NewDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Today - текущая дата (UTC)
func Today() datatypes.Date {
	return NewDate(time.Now().UTC())
}

// ParseDate разбирает "YYYY-MM-DD"
func ParseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return datatypes.Date{}, err
	}
	return NewDate(t), nil
}

// FormatDate - "YYYY-MM-DD"
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// FormatDatePtr - nil остается nil
func FormatDatePtr(d *datatypes.Date) *string {
	if d == nil || time.Time(*d).IsZero() {
		return nil
	}
	s := FormatDate(*d)
	return &s
}

// AddDays сдвигает дату на n дней
func AddDays(d datatypes.Date, n int) datatypes.Date {
	return NewDate(time.Time(d).AddDate(0, 0, n))
}

// NewClock переводит time.Time в datatypes.Time (часы, минуты, секунды)
func NewClock(t time.Time) datatypes.Time {
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
}
