package po

import (
	"time"

	"github.com/google/uuid"
)

// Tweet 表示 media.tweets 表的实体。
type Tweet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TweetWithOwner 附带作者用户名与头像。
type TweetWithOwner struct {
	Tweet
	OwnerUsername  string
	OwnerAvatarURL string
}
