package handler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/weiawesome/wes-io-live/ulid-udf/internal/resolver"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/udf"
)

// InvokeRequest is a raw call. Each element of Args is one argument: JSON
// null is a null argument, strings pass through, and other scalars are
// passed as their JSON text.
type InvokeRequest struct {
	Args []json.RawMessage `json:"args"`
	Rows int               `json:"rows"`
}

// CallArgs converts Args into resolver arguments. Arrays and objects are
// rejected.
func (r InvokeRequest) CallArgs() ([]resolver.Arg, error) {
	args := make([]resolver.Arg, 0, len(r.Args))
	for i, raw := range r.Args {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			args = append(args, resolver.NullArg())
			continue
		}
		switch raw[0] {
		case '"':
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("args[%d]: %w", i, err)
			}
			args = append(args, resolver.ValueArg(s))
		case '[', '{':
			return nil, fmt.Errorf("args[%d]: expected a scalar or null", i)
		default:
			args = append(args, resolver.ValueArg(string(raw)))
		}
	}
	return args, nil
}

// InvokeResponse carries one value per processed row.
type InvokeResponse struct {
	Returns udf.Returns `json:"returns"`
	Rows    []string    `json:"rows"`
}

// ULIDResponse describes a single identifier.
type ULIDResponse struct {
	ULID          string `json:"ulid"`
	TimestampMs   int64  `json:"timestamp_ms"`
	Time          string `json:"time"`
	RandomPayload string `json:"random_payload"`
}
