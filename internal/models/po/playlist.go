package po

import (
	"time"

	"github.com/google/uuid"
)

// Playlist 表示 media.playlists 表的实体，Videos 按加入顺序保存且不重复。
type Playlist struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Videos      []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
