package api

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ParseAvailable reports whether a form value means "available". Only "true"
// and "on" (checkbox) count; anything else is false.
func ParseAvailable(s string) bool {
	return s == "true" || s == "on"
}

// FormString returns the field when the key is present, even if empty.
func FormString(form url.Values, key string) Optional[string] {
	vs, ok := form[key]
	if !ok || len(vs) == 0 {
		return Optional[string]{}
	}
	return Some(vs[0])
}

// ErrNotFinite is returned by FormFloat for NaN and infinities.
var ErrNotFinite = errors.New("number is not finite")

// FormFloat parses a present field as a number. A present but blank,
// non-numeric or non-finite value is an error.
func FormFloat(form url.Values, key string) (Optional[float64], error) {
	s := FormString(form, key)
	if !s.Set {
		return Optional[float64]{}, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
	if err != nil {
		return Optional[float64]{}, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Optional[float64]{}, ErrNotFinite
	}
	return Some(f), nil
}

// FormAvailable maps a present field through ParseAvailable.
func FormAvailable(form url.Values, key string) Optional[bool] {
	s := FormString(form, key)
	if !s.Set {
		return Optional[bool]{}
	}
	return Some(ParseAvailable(s.Value))
}
