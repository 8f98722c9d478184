package types

import (
	"bytes"
	"fmt"
	"strconv"
)

// ID 请求体里的 post_id / comment_id，前端可能传数字也可能传字符串 "7"
type ID uint64

func (id *ID) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*id = 0
		return nil
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = bytes.TrimSpace(raw[1 : len(raw)-1])
	}

	v, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(v)
	return nil
}

func (id ID) Uint64() uint64 {
	return uint64(id)
}
