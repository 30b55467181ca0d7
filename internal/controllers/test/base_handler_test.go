package controllers_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/controllers"
	"github.com/bionicotaku/lingo-services-engagement/internal/metadata"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"

	"github.com/go-kratos/kratos/v2/transport"
)

type headerCarrier stdhttp.Header

func (h headerCarrier) Get(key string) string      { return stdhttp.Header(h).Get(key) }
func (h headerCarrier) Set(key, value string)      { stdhttp.Header(h).Set(key, value) }
func (h headerCarrier) Add(key, value string)      { stdhttp.Header(h).Add(key, value) }
func (h headerCarrier) Values(key string) []string { return stdhttp.Header(h).Values(key) }
func (h headerCarrier) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	return keys
}

type fakeTransport struct {
	header headerCarrier
}

func (f *fakeTransport) Kind() transport.Kind            { return transport.KindHTTP }
func (f *fakeTransport) Endpoint() string                { return "http://127.0.0.1" }
func (f *fakeTransport) Operation() string               { return "/test" }
func (f *fakeTransport) RequestHeader() transport.Header { return f.header }
func (f *fakeTransport) ReplyHeader() transport.Header   { return headerCarrier{} }

func serverContext(pairs ...string) context.Context {
	h := headerCarrier{}
	for i := 0; i+1 < len(pairs); i += 2 {
		h.Set(pairs[i], pairs[i+1])
	}
	return transport.NewServerContext(context.Background(), &fakeTransport{header: h})
}

func encodeUserInfo(t *testing.T, claims map[string]any) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(payload)
}

func TestBaseHandlerExtractMetadata(t *testing.T) {
	claims := map[string]any{
		"sub":   "7b61d0ed-5ba1-4f21-a636-7f9f1a9f9a01",
		"email": "user@example.com",
	}
	headerValue := encodeUserInfo(t, claims)
	ctx := serverContext(
		"x-apigateway-api-userinfo", headerValue,
		"x-md-idempotency-key", "req-456",
		"x-md-if-match", "etag-1",
		"x-md-if-none-match", "etag-0",
	)

	handler := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	meta := handler.ExtractMetadata(ctx)

	if meta.UserID != claims["sub"] {
		t.Fatalf("expected user id to be %q, got %q", claims["sub"], meta.UserID)
	}
	if meta.RawUserInfo != headerValue {
		t.Fatalf("expected raw userinfo to match header")
	}
	if meta.InvalidUserInfo {
		t.Fatalf("expected user info to be valid")
	}
	if meta.IdempotencyKey != "req-456" {
		t.Fatalf("expected idempotency key req-456, got %q", meta.IdempotencyKey)
	}
	if meta.IfMatch != "etag-1" || meta.IfNoneMatch != "etag-0" {
		t.Fatalf("unexpected conditional headers: %+v", meta)
	}

	newCtx := controllers.InjectHandlerMetadata(ctx, meta)
	stored, ok := controllers.HandlerMetadataFromContext(newCtx)
	if !ok {
		t.Fatalf("expected metadata in context")
	}
	if stored != meta {
		t.Fatalf("stored metadata mismatch: %+v vs %+v", stored, meta)
	}
}

func TestBaseHandlerExtractMetadataWithoutTransport(t *testing.T) {
	handler := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	if meta := handler.ExtractMetadata(context.Background()); !meta.IsZero() {
		t.Fatalf("expected zero metadata, got %+v", meta)
	}
}

func TestBaseHandlerWithTimeout(t *testing.T) {
	handler := controllers.NewBaseHandler(controllers.HandlerTimeouts{Command: 200 * time.Millisecond})
	ctx, cancel := handler.WithTimeout(context.Background(), controllers.HandlerTypeCommand)
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected deadline to be set")
	}
	remaining := time.Until(deadline)
	if remaining < 150*time.Millisecond || remaining > 250*time.Millisecond {
		t.Fatalf("expected timeout near 200ms, got %v", remaining)
	}
}

func TestBaseHandlerInvalidUserInfo(t *testing.T) {
	ctx := serverContext("x-apigateway-api-userinfo", "!!!invalid!!!")
	handler := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	meta := handler.ExtractMetadata(ctx)
	if !meta.InvalidUserInfo {
		t.Fatalf("expected invalid user info flag")
	}
	if meta.UserID != "" {
		t.Fatalf("expected empty user id, got %q", meta.UserID)
	}
}

func TestOptionalAndRequireActor(t *testing.T) {
	anonymous := metadata.HandlerMetadata{}
	actor, err := controllers.OptionalActor(anonymous)
	if err != nil || actor != nil {
		t.Fatalf("anonymous caller should resolve to nil actor, got %v %v", actor, err)
	}
	if _, err := controllers.RequireActor(anonymous); err != services.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	broken := metadata.HandlerMetadata{RawUserInfo: "x", InvalidUserInfo: true}
	if _, err := controllers.OptionalActor(broken); err != services.ErrUnauthenticated {
		t.Fatalf("malformed header must be unauthenticated, got %v", err)
	}

	notUUID := metadata.HandlerMetadata{RawUserInfo: "x", UserID: "alice"}
	if _, err := controllers.OptionalActor(notUUID); err != services.ErrUnauthenticated {
		t.Fatalf("non-uuid subject must be unauthenticated, got %v", err)
	}

	valid := metadata.HandlerMetadata{RawUserInfo: "x", UserID: "7b61d0ed-5ba1-4f21-a636-7f9f1a9f9a01"}
	id, err := controllers.RequireActor(valid)
	if err != nil {
		t.Fatalf("RequireActor: %v", err)
	}
	if id.String() != valid.UserID {
		t.Fatalf("unexpected actor %s", id)
	}
}
