package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ReactionType 用户对内容的态度，零值表示没有记录
type ReactionType uint8

const (
	NoReaction ReactionType = iota
	Like
	Dislike
)

var ErrInvalidReaction = errors.New("invalid reaction type")

var reactionNames = map[ReactionType]string{
	NoReaction: "None",
	Like:       "Like",
	Dislike:    "Dislike",
}

func (r ReactionType) String() string {
	if name, ok := reactionNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ReactionType(%d)", uint8(r))
}

// ParseReaction 只接受用户可以点击的 Like / Dislike
func ParseReaction(s string) (ReactionType, error) {
	switch s {
	case "Like":
		return Like, nil
	case "Dislike":
		return Dislike, nil
	}
	return NoReaction, fmt.Errorf("%w: %q", ErrInvalidReaction, s)
}

// NextReaction 根据当前状态和本次点击计算新状态
//
//	None + X      -> X     (新增)
//	X + X         -> None  (取消)
//	Like+Dislike  -> Dislike (切换)，反之亦然
func NextReaction(stored, clicked ReactionType) ReactionType {
	if stored == clicked {
		return NoReaction
	}
	return clicked
}

// MarshalJSON 对外仍然输出 "Like" / "Dislike" / "None"
func (r ReactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r ReactionType) Value() (driver.Value, error) {
	switch r {
	case Like, Dislike:
		return r.String(), nil
	case NoReaction:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidReaction, uint8(r))
}

func (r *ReactionType) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*r = NoReaction
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("scan reaction type from %T", src)
	}

	parsed, err := ParseReaction(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
