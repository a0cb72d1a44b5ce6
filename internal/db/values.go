package db

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// Normalize folds driver-specific scan results into a small set of Go
// types: nil, string, int64, float64, bool and time.Time.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(x)
	case string, int64, float64, bool, time.Time:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return float64(x)
	case driver.Valuer:
		// pgtype.Numeric and friends render themselves as text.
		dv, err := x.Value()
		if err != nil {
			return fmt.Sprint(x)
		}
		return Normalize(dv)
	default:
		return x
	}
}

// FormatCSV renders a normalized value as a CSV field. NULL becomes the
// empty string, dates without a clock part print as YYYY-MM-DD.
func FormatCSV(v any) string {
	switch x := Normalize(v).(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(x)
	}
}

// AsInt64 converts a normalized key column to int64.
func AsInt64(v any) (int64, error) {
	switch x := Normalize(v).(type) {
	case int64:
		return x, nil
	case float64:
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", x)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("not an integer: %T", v)
	}
}

// AsFloat64 converts a normalized numeric column to float64.
func AsFloat64(v any) (float64, error) {
	switch x := Normalize(v).(type) {
	case int64:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

// AsTime converts a normalized date column to time.Time. SQLite may hand
// back text when the declared type is not recognized.
func AsTime(v any) (time.Time, error) {
	switch x := Normalize(v).(type) {
	case time.Time:
		return x, nil
	case string:
		for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339Nano,
			"2006-01-02 15:04:05.999999999-07:00"} {
			if t, err := time.Parse(layout, x); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("not a date: %q", x)
	default:
		return time.Time{}, fmt.Errorf("not a date: %T", v)
	}
}

// AsString converts a normalized text column to string.
func AsString(v any) string {
	if v == nil {
		return ""
	}
	return FormatCSV(v)
}

// AsNullTime is AsTime for nullable columns. NULL yields nil.
func AsNullTime(v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := AsTime(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// AsNullInt64 is AsInt64 for nullable columns. NULL yields nil.
func AsNullInt64(v any) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	n, err := AsInt64(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
