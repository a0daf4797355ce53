package upstream

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

// The backend is loose about scalar types: ids and counts arrive as numbers
// or numeric strings, flags as booleans, 0/1 or "0"/"1".

type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return err
		}
		n = int64(fl)
	}
	*f = flexInt(n)
	return nil
}

type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	switch strings.ToLower(strings.Trim(string(bytes.TrimSpace(data)), `"`)) {
	case "1", "true", "yes", "y":
		*f = true
	default:
		*f = false
	}
	return nil
}

// flexString accepts any scalar and keeps its text form.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

// flexList accepts a JSON array or a comma separated string.
type flexList []string

func (f *flexList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*f = cleanList(list)
		return nil
	}
	var s flexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	*f = cleanList(strings.Split(string(s), ","))
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// backendTimeLayout is how the backend prints DATETIME columns, in its own zone.
const backendTimeLayout = "2006-01-02 15:04:05"

// flexTime parses RFC 3339 or the backend's local datetime format. The zone
// for the latter is applied by the gateway that owns the location.
type flexTime struct {
	raw string
}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	f.raw = strings.TrimSpace(string(s))
	return nil
}

func (f flexTime) In(loc *time.Location) time.Time {
	if f.raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, f.raw); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(backendTimeLayout, f.raw, loc); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(time.DateOnly, f.raw, loc); err == nil {
		return t
	}
	return time.Time{}
}

// copyWire copies same-named fields from a wire struct, unwrapping the flex
// scalar types on the way.
func copyWire(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{
		Converters: []copier.TypeConverter{
			{SrcType: flexInt(0), DstType: int(0), Fn: func(v any) (any, error) { return int(v.(flexInt)), nil }},
			{SrcType: flexInt(0), DstType: int64(0), Fn: func(v any) (any, error) { return int64(v.(flexInt)), nil }},
			{SrcType: flexBool(false), DstType: false, Fn: func(v any) (any, error) { return bool(v.(flexBool)), nil }},
			{SrcType: flexString(""), DstType: "", Fn: func(v any) (any, error) { return string(v.(flexString)), nil }},
			{SrcType: flexList(nil), DstType: []string(nil), Fn: func(v any) (any, error) { return []string(v.(flexList)), nil }},
		},
	})
}
