package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/opsportal/opsportal/internal/shared/utils/setutil"
)

// IDList is an optional list of ids decoded at the request boundary.
// Present distinguishes "field omitted" from "field sent empty": an omitted field
// leaves the zero value (Present=false), while null, "", [] or 0 decode to an
// empty, present list. Accepted shapes are a single number, a comma-separated
// string, or an array of numbers or numeric strings.
type IDList struct {
	Present bool
	IDs     []uint
}

// SomeIDs builds a present list, sanitized.
func SomeIDs(ids ...uint) IDList {
	return IDList{Present: true, IDs: setutil.Positive(ids)}
}

func (l *IDList) UnmarshalJSON(data []byte) error {
	l.Present = true
	l.IDs = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		l.IDs = []uint{}
		return nil
	}

	var raw []string
	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("id list: %w", err)
		}
		for _, item := range items {
			raw = append(raw, strings.Trim(string(bytes.TrimSpace(item)), `"`))
		}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("id list: %w", err)
		}
		raw = strings.Split(s, ",")
	default:
		raw = []string{string(data)}
	}

	l.IDs = ParseIDTokens(raw)
	return nil
}

func (l IDList) MarshalJSON() ([]byte, error) {
	if !l.Present {
		return []byte("null"), nil
	}
	if l.IDs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.IDs)
}

// ParseIDForm reads a form field that may be repeated (ids=1&ids=2) or a
// single comma-separated value. ok is false when the field is absent.
func ParseIDForm(values []string, ok bool) IDList {
	if !ok {
		return IDList{}
	}
	var raw []string
	for _, v := range values {
		raw = append(raw, strings.Split(v, ",")...)
	}
	return IDList{Present: true, IDs: ParseIDTokens(raw)}
}

// ParseIDTokens keeps tokens that parse as positive integers, deduplicated in
// first-seen order. Anything else is dropped.
func ParseIDTokens(tokens []string) []uint {
	ids := make([]uint, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		// accept 7 and 7.0 but not 7.5
		if f, err := strconv.ParseFloat(tok, 64); err == nil && f > 0 && f == float64(uint(f)) {
			ids = append(ids, uint(f))
		}
	}
	return setutil.Positive(ids)
}

