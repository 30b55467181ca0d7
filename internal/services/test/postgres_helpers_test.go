package services_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newTxManager(t *testing.T, pool *pgxpool.Pool) txmanager.Manager {
	t.Helper()
	mgr, err := txmanager.NewManager(pool, txmanager.Config{}, txmanager.Dependencies{Logger: log.NewStdLogger(io.Discard)})
	require.NoError(t, err)
	return mgr
}

// setupPool 启动 Postgres 容器并应用迁移；Docker 不可用时跳过测试。
func setupPool(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	dsn, terminate := startPostgres(ctx, t)
	t.Cleanup(terminate)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	applyMigrations(ctx, t, pool)
	return ctx, pool
}

func startPostgres(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "media",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://postgres:postgres@%s:%s/media?sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("skip service integration test: cannot start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/media?sslmode=disable", host, port.Port())
	cleanup := func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	}
	return dsn, cleanup
}

func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	migrationsDir := filepath.Join("..", "..", "..", "migrations")
	files, err := os.ReadDir(migrationsDir)
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".sql" {
			continue
		}
		paths = append(paths, filepath.Join(migrationsDir, f.Name()))
	}
	sort.Strings(paths)

	for _, path := range paths {
		sqlBytes, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		_, execErr := pool.Exec(ctx, string(sqlBytes))
		require.NoErrorf(t, execErr, "apply migration %s", filepath.Base(path))
	}
}

func insertUser(ctx context.Context, t *testing.T, pool *pgxpool.Pool, username string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(ctx, `INSERT INTO media.users (id, username, full_name, avatar_url) VALUES ($1, $2, $3, $4)`,
		id, username, username+" full", "http://avatar/"+username+".png")
	require.NoError(t, err)
	return id
}

type videoSeed struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Duration    float64
	Views       int64
	IsPublished bool
	CreatedAt   time.Time
}

func insertVideo(ctx context.Context, t *testing.T, pool *pgxpool.Pool, seed videoSeed) uuid.UUID {
	t.Helper()
	if seed.CreatedAt.IsZero() {
		seed.CreatedAt = time.Now().UTC()
	}
	var id uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO media.videos (owner_id, title, description, video_url, video_storage_id,
			thumbnail_url, thumbnail_storage_id, duration_seconds, views, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, 'http://media/v.mp4', 'videos/v.mp4', 'http://media/t.png', 'thumbnails/t.png', $4, $5, $6, $7, $7)
		RETURNING id`,
		seed.OwnerID, seed.Title, seed.Description, seed.Duration, seed.Views, seed.IsPublished, seed.CreatedAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertComment(ctx context.Context, t *testing.T, pool *pgxpool.Pool, videoID, ownerID uuid.UUID, content string, createdAt time.Time) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO media.comments (video_id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4) RETURNING id`,
		videoID, ownerID, content, createdAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func countRows(ctx context.Context, t *testing.T, pool *pgxpool.Pool, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, pool.QueryRow(ctx, query, args...).Scan(&n))
	return n
}
