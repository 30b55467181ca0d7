package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-engagement/internal/infrastructure/configloader"
	httpserver "github.com/bionicotaku/lingo-services-engagement/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 所有用例都在进入服务层之前被拒绝，因此服务依赖可以为 nil。
func newHandlers() *controllers.Handlers {
	base := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	return controllers.NewHandlers(
		controllers.NewVideoHandler(nil, nil, base),
		controllers.NewCommentHandler(nil, base),
		controllers.NewLikeHandler(nil, base),
		controllers.NewTweetHandler(nil, base),
		controllers.NewPlaylistHandler(nil, base),
	)
}

func defaultServerConfig() configloader.ServerConfig {
	return configloader.ServerConfig{
		Address:      "127.0.0.1:0",
		MetadataKeys: []string{"x-apigateway-api-userinfo", "x-md-"},
	}
}

type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestNewHTTPServer_HealthAndRoutes(t *testing.T) {
	logger := log.NewStdLogger(io.Discard)
	srv := httpserver.NewHTTPServer(defaultServerConfig(), configloader.MetricsConfig{HTTPEnabled: true}, nil, newHandlers(), logger)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, httpserver.HealthPath, nil))
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodDelete, "/v1/videos/"+uuid.NewString(), nil))
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, services.ReasonUnauthenticated, env.Reason)
	assert.Equal(t, stdhttp.StatusUnauthorized, env.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/v1/playlists/not-a-uuid", nil))
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Equal(t, services.ReasonInvalidID, decode(t, rec).Reason)
}

func TestNewHTTPServer_JWTSkipValidate(t *testing.T) {
	logger := log.NewStdLogger(io.Discard)
	component, cleanup, err := gcjwt.NewComponent(gcjwt.Config{
		Server: &gcjwt.ServerConfig{
			ExpectedAudience: "https://example.run.app/",
			SkipValidate:     true,
			Required:         false,
		},
	}, logger)
	require.NoError(t, err)
	defer cleanup()
	serverMW, err := gcjwt.ProvideServerMiddleware(component)
	require.NoError(t, err)

	srv := httpserver.NewHTTPServer(defaultServerConfig(), configloader.MetricsConfig{}, serverMW, newHandlers(), logger)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodPost, "/v1/likes/video/not-a-uuid", nil))
	// 匿名请求通过 JWT 中间件后，由 Handler 判定未认证。
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
}

func TestNewHTTPServer_StartStop(t *testing.T) {
	logger := log.NewStdLogger(io.Discard)
	cfg := defaultServerConfig()
	cfg.Network = "tcp"
	cfg.Timeout = 2 * time.Second
	srv := httpserver.NewHTTPServer(cfg, configloader.MetricsConfig{HTTPEnabled: true}, nil, newHandlers(), logger)

	endpoint, err := srv.Endpoint()
	require.NoError(t, err)
	require.NotNil(t, endpoint)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := srv.Start(ctx); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			t.Logf("server start returned: %v", err)
		}
	}()

	url := "http://" + endpoint.Host + httpserver.HealthPath
	deadline := time.Now().Add(2 * time.Second)
	var resp *stdhttp.Response
	for time.Now().Before(deadline) {
		resp, err = stdhttp.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	require.NoError(t, srv.Stop(context.Background()))
}
