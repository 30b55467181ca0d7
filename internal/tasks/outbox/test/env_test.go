package outbox_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/pstest"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	outboxtasks "github.com/bionicotaku/lingo-services-engagement/internal/tasks/outbox"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testProjectID = "test-project"
	testTopicID   = "media.video.events"
)

// fastPublisher 缩短轮询与退避间隔，让发布结果在秒级内可观察。
var fastPublisher = outboxcfg.PublisherConfig{
	BatchSize:      4,
	TickInterval:   50 * time.Millisecond,
	InitialBackoff: 20 * time.Millisecond,
	MaxBackoff:     150 * time.Millisecond,
	MaxAttempts:    5,
	PublishTimeout: 150 * time.Millisecond,
	Workers:        1,
	LockTTL:        time.Second,
}

// videoEventsEnv 是一套隔离的 Postgres + Pub/Sub 模拟器，承载视频事件的入队与发布。
type videoEventsEnv struct {
	pool      *pgxpool.Pool
	repo      *repositories.OutboxRepository
	txMgr     txmanager.Manager
	server    *pstest.Server
	publisher gcpubsub.Publisher
	logger    log.Logger
}

func newVideoEventsEnv(ctx context.Context, t *testing.T) *videoEventsEnv {
	t.Helper()

	dsn, terminate := startPostgres(ctx, t)
	t.Cleanup(terminate)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	applyMigrations(ctx, t, pool)

	logger := log.NewStdLogger(io.Discard)
	repo := repositories.NewOutboxRepository(pool, logger, outboxcfg.Config{Schema: "media"})
	txMgr, err := txmanager.NewManager(pool, txmanager.Config{}, txmanager.Dependencies{Logger: logger})
	require.NoError(t, err)

	server := pstest.NewServer()
	t.Cleanup(func() { _ = server.Close() })

	disabled := false
	component, cleanup, err := gcpubsub.NewComponent(ctx, gcpubsub.Config{
		ProjectID:        testProjectID,
		TopicID:          testTopicID,
		EnableLogging:    &disabled,
		EnableMetrics:    &disabled,
		EmulatorEndpoint: server.Addr,
	}, gcpubsub.Dependencies{Logger: logger})
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return &videoEventsEnv{
		pool:      pool,
		repo:      repo,
		txMgr:     txMgr,
		server:    server,
		publisher: gcpubsub.ProvidePublisher(component),
		logger:    logger,
	}
}

func (e *videoEventsEnv) createTopic(ctx context.Context, t *testing.T) {
	t.Helper()
	_, err := e.server.GServer.CreateTopic(ctx, &pubsubpb.Topic{
		Name: fmt.Sprintf("projects/%s/topics/%s", testProjectID, testTopicID),
	})
	require.NoError(t, err)
}

// startRunner 通过生产装配入口构造发布任务并在后台运行，返回的函数停止任务并等待退出。
func (e *videoEventsEnv) startRunner(ctx context.Context, t *testing.T, pub outboxcfg.PublisherConfig) func() {
	t.Helper()

	quiet := false
	pub.LoggingEnabled = &quiet
	runner := outboxtasks.ProvideRunner(e.repo, e.publisher,
		gcpubsub.Config{ProjectID: testProjectID, TopicID: testTopicID},
		outboxcfg.Config{Schema: "media", Publisher: pub},
		e.logger)
	require.NotNil(t, runner)

	runCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(runCtx) }()

	return func() {
		cancel()
		select {
		case err := <-errCh:
			require.True(t, err == nil || errors.Is(err, context.Canceled), "runner exit: %v", err)
		case <-time.After(2 * time.Second):
			t.Fatal("runner did not stop in time")
		}
	}
}

func startPostgres(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()

	dsnFor := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://postgres:postgres@%s:%s/media?sslmode=disable", host, port.Port())
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_USER":     "postgres",
				"POSTGRES_DB":       "media",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "postgres", dsnFor).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("skip video event tests: cannot start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return dsnFor(host, port), func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	}
}

func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	dir := filepath.Join("..", "..", "..", "..", "migrations")
	matches, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "no migrations under %s", dir)
	sort.Strings(matches)

	for _, path := range matches {
		sqlBytes, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		_, execErr := pool.Exec(ctx, string(sqlBytes))
		require.NoErrorf(t, execErr, "apply migration %s", filepath.Base(path))
	}
}
