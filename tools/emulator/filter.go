package emulator

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// parâmetros de listagem que não são filtros
var reserved = map[string]bool{
	"limit":  true,
	"cursor": true,
	"fields": true,
	"sort":   true,
}

// matches aplica os filtros da query string a um objeto.
//
// after/before comparam a data de created; listas separadas por vírgula casam
// com qualquer valor; um parâmetro no plural ("ids", "externalIds") filtra o
// campo no singular quando o objeto não possui o campo no plural.
func matches(obj Object, query url.Values) bool {
	for name, values := range query {
		if reserved[name] {
			continue
		}
		want := splitValues(values)
		if len(want) == 0 {
			continue
		}

		switch name {
		case "after", "before":
			if !inDateRange(obj, name, want[0]) {
				return false
			}
			continue
		}

		field, ok := obj[name]
		if !ok && strings.HasSuffix(name, "s") {
			field, ok = obj[strings.TrimSuffix(name, "s")]
		}
		if !ok && strings.HasSuffix(name, "Ids") {
			// paymentIds -> payment.id (logs)
			if nested, isMap := obj[strings.TrimSuffix(name, "Ids")].(map[string]any); isMap {
				field, ok = nested["id"]
			}
		}
		if !ok || !anyMatch(field, want) {
			return false
		}
	}
	return true
}

func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func inDateRange(obj Object, bound, date string) bool {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	raw, _ := obj["created"].(string)
	created, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return false
	}
	if bound == "after" {
		return !created.Before(day)
	}
	return created.Before(day.Add(24 * time.Hour))
}

func anyMatch(field any, want []string) bool {
	if list, ok := field.([]any); ok {
		for _, item := range list {
			if anyMatch(item, want) {
				return true
			}
		}
		return false
	}
	for _, w := range want {
		if valuesMatch(field, w) {
			return true
		}
	}
	return false
}

func valuesMatch(a any, b string) bool {
	switch v := a.(type) {
	case string:
		return v == b
	case json.Number:
		return v.String() == b
	case float64:
		f, err := strconv.ParseFloat(b, 64)
		return err == nil && v == f
	case int:
		i, err := strconv.Atoi(b)
		return err == nil && v == i
	case bool:
		return strings.ToLower(b) == fmt.Sprintf("%v", v)
	default:
		return false
	}
}
