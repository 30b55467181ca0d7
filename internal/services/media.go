package services

import (
	"context"
	"io"
)

// MediaKind 区分媒体对象类型，决定存放的 bucket。
type MediaKind string

// 媒体类型常量。
const (
	MediaKindVideo     MediaKind = "video"
	MediaKindThumbnail MediaKind = "thumbnail"
)

// MediaUpload 描述一次待上传的媒体文件。
type MediaUpload struct {
	Name        string
	Reader      io.Reader
	Size        int64
	ContentType string
}

// StoredMedia 表示上传成功后的访问地址与存储标识。
type StoredMedia struct {
	URL       string
	StorageID string
}

// MediaStore 抽象外部对象存储。进程启动时构造一次并注入。
type MediaStore interface {
	Upload(ctx context.Context, kind MediaKind, file MediaUpload) (*StoredMedia, error)
	Delete(ctx context.Context, kind MediaKind, storageID string) error
}
