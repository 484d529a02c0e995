package checks

import (
	"fmt"
	"time"

	"github.com/raywall/starkbank-go/errs"
)

// DateLayout é o formato canônico de datas nos filtros da API.
const DateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999-07:00",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseDateTime normaliza value (time.Time, *time.Time ou string) para um
// instante em UTC.
func ParseDateTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v.UTC(), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, &errs.ValidationError{Message: "nil datetime"}
		}
		return v.UTC(), nil
	case string:
		for _, layout := range dateTimeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, &errs.ValidationError{Message: fmt.Sprintf("invalid datetime %q", v)}
	}
	return time.Time{}, &errs.ValidationError{Message: fmt.Sprintf("expected datetime, got %T", value)}
}

// ParseDate é como ParseDateTime, mas descarta o horário.
func ParseDate(value any) (time.Time, error) {
	t, err := ParseDateTime(value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDate devolve a representação "2006-01-02" usada em query strings.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
