package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/services"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultRegion = "us-east-1"

// MinioConfig 描述 MinIO 连接与桶布局。
type MinioConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Region          string
	VideoBucket     string
	ThumbnailBucket string
	PublicBaseURL   string
	UploadTimeout   time.Duration
	AutoCreate      bool
}

// ObjectStorage 是 MediaStore 依赖的 MinIO 能力子集，便于测试替换。
type ObjectStorage interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// NewMinioClient 在启动时构造 MinIO 客户端；未配置 endpoint 时返回 nil。
func NewMinioClient(cfg MinioConfig) (ObjectStorage, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, nil
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("clients: init minio client: %w", err)
	}
	return client, nil
}

// MediaStore 将视频与缩略图写入各自的桶，对外返回公开 URL 与对象 key。
type MediaStore struct {
	storage ObjectStorage
	cfg     MinioConfig
	log     *log.Helper
	ready   atomic.Bool
}

// ErrMediaStoreDisabled 表示未配置媒体存储。
var ErrMediaStoreDisabled = errors.New("clients: media store not configured")

// NewMediaStore 构造 MediaStore。storage 为 nil 时上传返回 ErrMediaStoreDisabled，删除为空操作。
func NewMediaStore(storage ObjectStorage, cfg MinioConfig, logger log.Logger) *MediaStore {
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	return &MediaStore{
		storage: storage,
		cfg:     cfg,
		log:     log.NewHelper(logger),
	}
}

// EnsureBuckets 在 AutoCreate 开启时创建缺失的桶，成功一次后不再检查。
func (s *MediaStore) EnsureBuckets(ctx context.Context) error {
	if s.storage == nil || !s.cfg.AutoCreate || s.ready.Load() {
		return nil
	}
	for _, bucket := range []string{s.cfg.VideoBucket, s.cfg.ThumbnailBucket} {
		exists, err := s.storage.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("check bucket %s: %w", bucket, err)
		}
		if exists {
			continue
		}
		if err := s.storage.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		s.log.Infof("created media bucket %s", bucket)
	}
	s.ready.Store(true)
	return nil
}

// Upload 写入对象并返回 {URL, StorageID}。StorageID 为桶内 object key。
func (s *MediaStore) Upload(ctx context.Context, kind services.MediaKind, upload services.MediaUpload) (*services.StoredMedia, error) {
	if s.storage == nil {
		return nil, ErrMediaStoreDisabled
	}
	if upload.Reader == nil {
		return nil, fmt.Errorf("clients: upload %s: nil reader", kind)
	}
	bucket, err := s.bucketFor(kind)
	if err != nil {
		return nil, err
	}
	if err := s.EnsureBuckets(ctx); err != nil {
		return nil, err
	}

	if s.cfg.UploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.UploadTimeout)
		defer cancel()
	}

	key := objectKey(kind, upload.Name)
	size := upload.Size
	if size <= 0 {
		size = -1
	}
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	info, err := s.storage.PutObject(ctx, bucket, key, upload.Reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		s.log.WithContext(ctx).Errorf("upload media failed: kind=%s bucket=%s key=%s err=%v", kind, bucket, key, err)
		return nil, fmt.Errorf("upload %s: %w", kind, err)
	}
	if info.Key != "" {
		key = info.Key
	}
	return &services.StoredMedia{
		URL:       s.publicURL(bucket, key),
		StorageID: key,
	}, nil
}

// Delete 删除对象；对象不存在时 MinIO 返回成功。
// 未配置存储时本服务不会写入任何对象，删除直接返回成功。
func (s *MediaStore) Delete(ctx context.Context, kind services.MediaKind, storageID string) error {
	if s.storage == nil {
		s.log.WithContext(ctx).Debugf("media store disabled, skip delete: kind=%s key=%s", kind, storageID)
		return nil
	}
	storageID = strings.TrimSpace(storageID)
	if storageID == "" {
		return nil
	}
	bucket, err := s.bucketFor(kind)
	if err != nil {
		return err
	}
	if err := s.storage.RemoveObject(ctx, bucket, storageID, minio.RemoveObjectOptions{}); err != nil {
		s.log.WithContext(ctx).Warnf("delete media failed: kind=%s bucket=%s key=%s err=%v", kind, bucket, storageID, err)
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}

func (s *MediaStore) bucketFor(kind services.MediaKind) (string, error) {
	switch kind {
	case services.MediaKindVideo:
		return s.cfg.VideoBucket, nil
	case services.MediaKindThumbnail:
		return s.cfg.ThumbnailBucket, nil
	default:
		return "", fmt.Errorf("clients: unknown media kind %q", kind)
	}
}

func (s *MediaStore) publicURL(bucket, key string) string {
	base := s.cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if s.cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + s.cfg.Endpoint
	}
	escaped := (&url.URL{Path: path.Join(bucket, key)}).EscapedPath()
	return base + "/" + strings.TrimPrefix(escaped, "/")
}

// objectKey 生成 <kind>/<yyyy/mm/dd>/<uuid><ext>，避免用户文件名冲突。
func objectKey(kind services.MediaKind, name string) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(name)))
	if len(ext) > 10 {
		ext = ""
	}
	return fmt.Sprintf("%s/%s/%s%s", kind, time.Now().UTC().Format("2006/01/02"), uuid.NewString(), ext)
}
