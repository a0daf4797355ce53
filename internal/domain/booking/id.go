package booking

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"room-booking-bff/internal/pkg/errs"
)

var ErrInvalidID = errs.Define(errs.ErrValidation, "invalid booking id")

// Source tells which booking flow produced a booking. The upstream keeps form
// bookings and assistant bookings in separate tables with overlapping numbers.
type Source int

const (
	SourceForm Source = iota + 1
	SourceAI
)

const aiPrefix = "ai_"

func (s Source) Tag() string {
	switch s {
	case SourceForm:
		return "form"
	case SourceAI:
		return "ai"
	default:
		return ""
	}
}

func ParseSourceTag(tag string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", "form":
		return SourceForm, nil
	case "ai":
		return SourceAI, nil
	default:
		return 0, ErrInvalidID
	}
}

// ID is Form(n) or AI(n). The zero value is not a valid id.
type ID struct {
	source Source
	number int64
}

func FormID(n int64) ID { return ID{source: SourceForm, number: n} }
func AIID(n int64) ID   { return ID{source: SourceAI, number: n} }

func NewID(source Source, n int64) (ID, error) {
	if n <= 0 || (source != SourceForm && source != SourceAI) {
		return ID{}, ErrInvalidID
	}
	return ID{source: source, number: n}, nil
}

// ParseID accepts "123" for form bookings and "ai_123" for assistant bookings.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	source := SourceForm
	if len(s) > len(aiPrefix) && strings.EqualFold(s[:len(aiPrefix)], aiPrefix) {
		source = SourceAI
		s = s[len(aiPrefix):]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, ErrInvalidID
	}
	return NewID(source, n)
}

func (id ID) Source() Source { return id.source }

// Number is the row id inside the source's own table, used for every upstream lookup.
func (id ID) Number() int64 { return id.number }

func (id ID) IsAI() bool   { return id.source == SourceAI }
func (id ID) IsZero() bool { return id.number == 0 }

func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	n := strconv.FormatInt(id.number, 10)
	if id.source == SourceAI {
		return aiPrefix + n
	}
	return n
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON accepts a bare number as well as the string forms.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return ErrInvalidID
		}
	} else {
		raw = string(data)
	}
	parsed, err := ParseID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
