package utils

import (
	"errors"
	"fmt"
	"konsulin-admin-console/internal/pkg/exceptions"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var digitRunRegex = regexp.MustCompile(`\d+`)

var errNoLeadingInteger = errors.New("no leading integer")

// NormalizeID coerces the identifier shapes the backend hands out ("42", 42,
// "id-42", json numbers) into a positive integer. Strings go through a leading
// integer parse first and fall back to the first digit run.
func NormalizeID(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, exceptions.ErrIDMissing()
	case int:
		return positiveID(int64(v))
	case int32:
		return positiveID(int64(v))
	case int64:
		return positiveID(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, exceptions.ErrInvalidID(fmt.Errorf("identifier %d overflows", v))
		}
		return positiveID(int64(v))
	case uint64:
		if v > math.MaxInt64 {
			return 0, exceptions.ErrInvalidID(fmt.Errorf("identifier %d overflows", v))
		}
		return positiveID(int64(v))
	case float64:
		return floatID(v)
	case float32:
		return floatID(float64(v))
	case json.Number:
		return NormalizeID(v.String())
	case string:
		return stringID(v)
	default:
		return 0, exceptions.ErrInvalidID(fmt.Errorf("unsupported identifier type %T", raw))
	}
}

func stringID(raw string) (int64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, exceptions.ErrIDMissing()
	}
	id, err := parseLeadingInteger(raw)
	if errors.Is(err, errNoLeadingInteger) {
		run := digitRunRegex.FindString(raw)
		if run == "" {
			return 0, exceptions.ErrInvalidIDFormat(fmt.Errorf("%q has no digits", raw))
		}
		id, err = strconv.ParseInt(run, 10, 64)
	}
	if err != nil {
		return 0, exceptions.ErrInvalidID(err)
	}
	return positiveID(id)
}

// parseLeadingInteger reads optional whitespace, an optional sign and the
// digits that follow; the rest of the string is ignored.
func parseLeadingInteger(raw string) (int64, error) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, errNoLeadingInteger
	}
	return strconv.ParseInt(s[:end], 10, 64)
}

func floatID(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, exceptions.ErrInvalidID(fmt.Errorf("identifier is not finite"))
	}
	if v != math.Trunc(v) || v >= math.MaxInt64 {
		return 0, exceptions.ErrInvalidID(fmt.Errorf("identifier %v is not an integer", v))
	}
	return positiveID(int64(v))
}

func positiveID(id int64) (int64, error) {
	if id <= 0 {
		return 0, exceptions.ErrInvalidID(fmt.Errorf("identifier %d is not positive", id))
	}
	return id, nil
}
