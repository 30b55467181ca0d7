package configloader

import (
	"strings"
	"time"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	defaultQueryTimeout   = 3 * time.Second
	defaultCommandTimeout = 30 * time.Second
	defaultUploadTimeout  = 2 * time.Minute
	defaultVideoBucket    = "videos"
	defaultThumbBucket    = "thumbnails"
	defaultSchema         = "media"
)

func fromBootstrap(b *Bootstrap) RuntimeConfig {
	if b == nil {
		return RuntimeConfig{}
	}
	return RuntimeConfig{
		Server:        serverFromBootstrap(b.Server),
		Database:      databaseFromBootstrap(b.Data.Postgres),
		Media:         mediaFromBootstrap(b.Media),
		Observability: observabilityFromBootstrap(b.Observability),
		Messaging:     messagingFromBootstrap(b.Messaging, b.Data.Postgres),
	}
}

func serverFromBootstrap(s ServerSection) ServerConfig {
	server := ServerConfig{
		Network: s.HTTP.Network,
		Address: s.HTTP.Addr,
		Timeout: s.HTTP.Timeout.Std(),
	}
	if jwt := s.JWT; jwt != nil {
		server.JWT = ServerJWTConfig{
			ExpectedAudience: jwt.ExpectedAudience,
			SkipValidate:     jwt.SkipValidate,
			Required:         jwt.Required,
			HeaderKey:        firstNonEmpty(jwt.HeaderKey, "authorization"),
		}
	}
	server.Handlers = handlerTimeoutFromBootstrap(s.Handlers)
	server.MetadataKeys = append([]string(nil), s.MetadataKeys...)
	return server
}

// 发布视频包含媒体上传，命令超时默认比查询宽松。
func handlerTimeoutFromBootstrap(h *HandlerSection) HandlerTimeoutConfig {
	cfg := HandlerTimeoutConfig{
		Default: defaultHandlerTimeout,
		Command: defaultCommandTimeout,
		Query:   defaultQueryTimeout,
	}
	if h == nil {
		return cfg
	}
	if d := h.DefaultTimeout.Std(); d > 0 {
		cfg.Default = d
	}
	if d := h.CommandTimeout.Std(); d > 0 {
		cfg.Command = d
	}
	if d := h.QueryTimeout.Std(); d > 0 {
		cfg.Query = d
	} else {
		cfg.Query = firstNonZero(cfg.Query, cfg.Default)
	}
	return cfg
}

func databaseFromBootstrap(pg PostgresSection) DatabaseConfig {
	cfg := DatabaseConfig{
		DSN:               pg.DSN,
		MaxOpenConns:      pg.MaxOpenConns,
		MinOpenConns:      pg.MinOpenConns,
		MaxConnLifetime:   pg.MaxConnLifetime.Std(),
		MaxConnIdleTime:   pg.MaxConnIdleTime.Std(),
		HealthCheckPeriod: pg.HealthCheckPeriod.Std(),
		Schema:            firstNonEmpty(pg.Schema, defaultSchema),
		PreparedStmts:     pg.PreparedStatementsEnabled,
		PoolMetrics:       pg.PoolMetricsEnabled,
	}
	if tx := pg.Transaction; tx != nil {
		cfg.Transaction = TransactionConfig{
			DefaultIsolation: tx.DefaultIsolation,
			DefaultTimeout:   tx.DefaultTimeout.Std(),
			LockTimeout:      tx.LockTimeout.Std(),
			MaxRetries:       tx.MaxRetries,
			MetricsEnabled:   tx.MetricsEnabled,
		}
	}
	return cfg
}

func mediaFromBootstrap(m MediaSection) MediaConfig {
	return MediaConfig{
		Endpoint:        strings.TrimSpace(m.Endpoint),
		AccessKeyID:     m.AccessKeyID,
		SecretAccessKey: m.SecretAccessKey,
		UseSSL:          m.UseSSL,
		Region:          m.Region,
		VideoBucket:     firstNonEmpty(m.VideoBucket, defaultVideoBucket),
		ThumbnailBucket: firstNonEmpty(m.ThumbnailBucket, defaultThumbBucket),
		PublicBaseURL:   strings.TrimRight(m.PublicBaseURL, "/"),
		UploadTimeout:   firstNonZero(m.UploadTimeout.Std(), defaultUploadTimeout),
		AutoCreate:      m.AutoCreate,
	}
}

func observabilityFromBootstrap(obs ObservabilitySection) ObservabilityConfig {
	return ObservabilityConfig{
		GlobalAttributes: mapCopy(obs.GlobalAttributes),
		Tracing:          tracingFromBootstrap(obs.Tracing),
		Metrics:          metricsFromBootstrap(obs.Metrics),
	}
}

func tracingFromBootstrap(t *TracingSection) TracingConfig {
	if t == nil {
		return TracingConfig{}
	}
	return TracingConfig{
		Enabled:            t.Enabled,
		Exporter:           t.Exporter,
		Endpoint:           t.Endpoint,
		Headers:            mapCopy(t.Headers),
		Insecure:           t.Insecure,
		SamplingRatio:      t.SamplingRatio,
		BatchTimeout:       t.BatchTimeout.Std(),
		ExportTimeout:      t.ExportTimeout.Std(),
		MaxQueueSize:       t.MaxQueueSize,
		MaxExportBatchSize: t.MaxExportBatchSize,
		Required:           t.Required,
		Attributes:         mapCopy(t.Attributes),
	}
}

func metricsFromBootstrap(m *MetricsSection) MetricsConfig {
	if m == nil {
		return MetricsConfig{HTTPEnabled: true}
	}
	return MetricsConfig{
		Enabled:             m.Enabled,
		Exporter:            m.Exporter,
		Endpoint:            m.Endpoint,
		Headers:             mapCopy(m.Headers),
		Insecure:            m.Insecure,
		Interval:            m.Interval.Std(),
		DisableRuntimeStats: m.DisableRuntimeStats,
		Required:            m.Required,
		ResourceAttributes:  mapCopy(m.ResourceAttributes),
		HTTPEnabled:         m.HTTPEnabled,
	}
}

func messagingFromBootstrap(msg MessagingSection, pg PostgresSection) MessagingConfig {
	return MessagingConfig{
		Schema:  firstNonEmpty(pg.Schema, defaultSchema),
		Events:  pubsubFromBootstrap(msg.Events),
		Cascade: pubsubFromBootstrap(msg.Cascade),
		Outbox:  outboxFromBootstrap(msg.Outbox),
		Inbox:   inboxFromBootstrap(msg.Inbox),
	}
}

func pubsubFromBootstrap(pb *PubSubSection) PubSubConfig {
	if pb == nil {
		return PubSubConfig{}
	}
	cfg := PubSubConfig{
		ProjectID:           pb.ProjectID,
		TopicID:             pb.TopicID,
		SubscriptionID:      pb.SubscriptionID,
		OrderingKeyEnabled:  pb.OrderingKeyEnabled,
		LoggingEnabled:      pb.LoggingEnabled,
		MetricsEnabled:      pb.MetricsEnabled,
		EmulatorEndpoint:    pb.EmulatorEndpoint,
		PublishTimeout:      pb.PublishTimeout.Std(),
		ExactlyOnceDelivery: pb.ExactlyOnceDelivery,
		DeadLetterTopicID:   pb.DeadLetterTopicID,
	}
	if r := pb.Receive; r != nil {
		cfg.Receive = PubSubReceiveConfig{
			NumGoroutines:          r.NumGoroutines,
			MaxOutstandingMessages: r.MaxOutstandingMessages,
			MaxOutstandingBytes:    r.MaxOutstandingBytes,
			MaxExtension:           r.MaxExtension.Std(),
			MaxExtensionPeriod:     r.MaxExtensionPeriod.Std(),
		}
	}
	return cfg
}

func outboxFromBootstrap(ob *OutboxSection) OutboxPublisherConfig {
	if ob == nil {
		return OutboxPublisherConfig{}
	}
	return OutboxPublisherConfig{
		BatchSize:      ob.BatchSize,
		TickInterval:   ob.TickInterval.Std(),
		InitialBackoff: ob.InitialBackoff.Std(),
		MaxBackoff:     ob.MaxBackoff.Std(),
		MaxAttempts:    ob.MaxAttempts,
		PublishTimeout: ob.PublishTimeout.Std(),
		Workers:        ob.Workers,
		LockTTL:        ob.LockTTL.Std(),
		LoggingEnabled: ob.LoggingEnabled,
		MetricsEnabled: ob.MetricsEnabled,
	}
}

func inboxFromBootstrap(in *InboxSection) InboxConfig {
	if in == nil {
		return InboxConfig{}
	}
	return InboxConfig{
		SourceService:  in.SourceService,
		MaxConcurrency: in.MaxConcurrency,
		LoggingEnabled: in.LoggingEnabled,
		MetricsEnabled: in.MetricsEnabled,
	}
}

func mapCopy(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func firstNonZero(durations ...time.Duration) time.Duration {
	for _, d := range durations {
		if d > 0 {
			return d
		}
	}
	return 0
}

func fillDefaults(cfg *RuntimeConfig) {
	if cfg.Server.JWT.HeaderKey == "" {
		cfg.Server.JWT.HeaderKey = "authorization"
	}
	defaultKeys := []string{
		"x-apigateway-api-userinfo",
		"x-md-",
		"x-md-idempotency-key",
		"x-md-if-match",
		"x-md-if-none-match",
	}
	if len(cfg.Server.MetadataKeys) == 0 {
		cfg.Server.MetadataKeys = append([]string(nil), defaultKeys...)
	}
	if cfg.Messaging.Inbox.SourceService == "" {
		cfg.Messaging.Inbox.SourceService = cfg.Service.Name
	}
}
