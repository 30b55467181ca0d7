package clients_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/clients"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startMinio(ctx context.Context, t *testing.T) string {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:RELEASE.2024-06-13T22-53-53Z",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     "minio",
			"MINIO_ROOT_PASSWORD": "minio-secret",
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("skip minio integration: cannot start container: %v", err)
	}
	t.Cleanup(func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	})
	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestMediaStore_AgainstMinio(t *testing.T) {
	ctx := context.Background()
	endpoint := startMinio(ctx, t)

	cfg := clients.MinioConfig{
		Endpoint:        endpoint,
		AccessKeyID:     "minio",
		SecretAccessKey: "minio-secret",
		VideoBucket:     "videos",
		ThumbnailBucket: "thumbnails",
		AutoCreate:      true,
	}
	storage, err := clients.NewMinioClient(cfg)
	require.NoError(t, err)
	store := clients.NewMediaStore(storage, cfg, log.NewStdLogger(io.Discard))

	stored, err := store.Upload(ctx, services.MediaKindVideo, services.MediaUpload{
		Name:        "clip.mp4",
		Reader:      strings.NewReader("fake-video"),
		Size:        int64(len("fake-video")),
		ContentType: "video/mp4",
	})
	require.NoError(t, err)
	require.Equal(t, "http://"+endpoint+"/videos/"+stored.StorageID, stored.URL)

	obj, err := storage.(*minio.Client).StatObject(ctx, "videos", stored.StorageID, minio.StatObjectOptions{})
	require.NoError(t, err)
	require.Equal(t, "video/mp4", obj.ContentType)

	require.NoError(t, store.Delete(ctx, services.MediaKindVideo, stored.StorageID))
	require.NoError(t, store.Delete(ctx, services.MediaKindVideo, stored.StorageID))
}
