package po

import (
	"time"

	"github.com/google/uuid"
)

// Comment 表示 media.comments 表的实体。
type Comment struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentWithOwner 表示联表读取的评论及作者摘要。
type CommentWithOwner struct {
	Comment
	Owner OwnerSummary
}
