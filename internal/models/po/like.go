package po

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LikeTargetKind 表示点赞目标类型。
type LikeTargetKind string

// 点赞目标类型常量定义。
const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// ParseLikeTargetKind 将外部输入解析为目标类型。
func ParseLikeTargetKind(raw string) (LikeTargetKind, error) {
	switch LikeTargetKind(raw) {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return LikeTargetKind(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidLikeTarget, raw)
	}
}

// LikeTarget 是点赞目标的带标签变体：Kind 决定 ID 落在哪一列。
type LikeTarget struct {
	Kind LikeTargetKind
	ID   uuid.UUID
}

// Like 表示 media.likes 表的一行。三个目标列中有且仅有一个非空。
type Like struct {
	ID        uuid.UUID
	LikedBy   uuid.UUID
	VideoID   *uuid.UUID
	CommentID *uuid.UUID
	TweetID   *uuid.UUID
	CreatedAt time.Time
}

// ErrInvalidLikeTarget 表示点赞记录的目标列不是恰好一个。
var ErrInvalidLikeTarget = errors.New("like must reference exactly one target")

// NewLike 根据目标变体构造只设置单一目标列的点赞记录。
func NewLike(likedBy uuid.UUID, target LikeTarget) (*Like, error) {
	like := &Like{LikedBy: likedBy}
	id := target.ID
	switch target.Kind {
	case LikeTargetVideo:
		like.VideoID = &id
	case LikeTargetComment:
		like.CommentID = &id
	case LikeTargetTweet:
		like.TweetID = &id
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidLikeTarget, target.Kind)
	}
	if err := like.Validate(); err != nil {
		return nil, err
	}
	return like, nil
}

// Validate 在持久化前校验目标列数量。
func (l *Like) Validate() error {
	if l == nil {
		return ErrInvalidLikeTarget
	}
	if l.LikedBy == uuid.Nil {
		return fmt.Errorf("%w: liked_by is required", ErrInvalidLikeTarget)
	}
	set := 0
	for _, id := range []*uuid.UUID{l.VideoID, l.CommentID, l.TweetID} {
		if id != nil {
			if *id == uuid.Nil {
				return fmt.Errorf("%w: nil target id", ErrInvalidLikeTarget)
			}
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: got %d targets", ErrInvalidLikeTarget, set)
	}
	return nil
}

// Target 返回记录对应的目标变体。
func (l *Like) Target() (LikeTarget, error) {
	if err := l.Validate(); err != nil {
		return LikeTarget{}, err
	}
	switch {
	case l.VideoID != nil:
		return LikeTarget{Kind: LikeTargetVideo, ID: *l.VideoID}, nil
	case l.CommentID != nil:
		return LikeTarget{Kind: LikeTargetComment, ID: *l.CommentID}, nil
	default:
		return LikeTarget{Kind: LikeTargetTweet, ID: *l.TweetID}, nil
	}
}
