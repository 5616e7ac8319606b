package serdefmt

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// JSON returns a [Serializable] describing a gjson result. Objects become
// maps in document order, arrays become lists, and null or missing values
// become None. Integer literals keep their integer type; everything else
// numeric is a float64.
func JSON(r gjson.Result) Serializable {
	return jsonResult{r: r}
}

// JSONBytes parses data and describes it like [JSON]. Invalid JSON fails
// with [ErrFormat] when rendered.
func JSONBytes(data []byte) Serializable {
	if !gjson.ValidBytes(data) {
		return SerializableFunc(func(Serializer) error {
			return Custom("json: invalid document")
		})
	}
	return JSON(gjson.ParseBytes(data))
}

type jsonResult struct {
	r gjson.Result
}

func (j jsonResult) Serialize(s Serializer) error {
	r := j.r
	switch r.Type {
	case gjson.False, gjson.True:
		return s.SerializeBool(r.Bool())
	case gjson.Number:
		raw := strings.TrimSpace(r.Raw)
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return s.SerializeInt64(i)
		}
		if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return s.SerializeUint64(u)
		}
		return s.SerializeFloat64(r.Num)
	case gjson.String:
		return s.SerializeStr(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			return serializeJSONArray(s, r)
		}
		return serializeJSONObject(s, r)
	default:
		return s.SerializeNone()
	}
}

func serializeJSONArray(s Serializer, r gjson.Result) error {
	items := r.Array()
	seq, err := s.SerializeSeq(len(items))
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := seq.SerializeElement(JSON(item)); err != nil {
			return err
		}
	}
	return seq.End()
}

func serializeJSONObject(s Serializer, r gjson.Result) error {
	m, err := s.SerializeMap(-1)
	if err != nil {
		return err
	}
	var entryErr error
	r.ForEach(func(k, v gjson.Result) bool {
		entryErr = m.SerializeEntry(JSON(k), JSON(v))
		return entryErr == nil
	})
	if entryErr != nil {
		return entryErr
	}
	return m.End()
}
