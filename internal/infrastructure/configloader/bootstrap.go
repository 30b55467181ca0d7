package configloader

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Bootstrap 对应 configs/config.yaml 的顶层结构，由 kratos config Scan 填充。
type Bootstrap struct {
	Server        ServerSection        `json:"server" validate:"required"`
	Data          DataSection          `json:"data" validate:"required"`
	Media         MediaSection         `json:"media"`
	Observability ObservabilitySection `json:"observability"`
	Messaging     MessagingSection     `json:"messaging"`
}

// ServerSection 描述入站 HTTP Server。
type ServerSection struct {
	HTTP         HTTPSection     `json:"http" validate:"required"`
	JWT          *JWTSection     `json:"jwt"`
	Handlers     *HandlerSection `json:"handlers"`
	MetadataKeys []string        `json:"metadata_keys" validate:"dive,required"`
}

// HTTPSection 描述监听地址与超时。
type HTTPSection struct {
	Network string   `json:"network" validate:"omitempty,oneof=tcp tcp4 tcp6 unix"`
	Addr    string   `json:"addr" validate:"required"`
	Timeout Duration `json:"timeout" validate:"gte=0"`
}

// JWTSection 控制入站 JWT 校验。
type JWTSection struct {
	ExpectedAudience string `json:"expected_audience"`
	SkipValidate     bool   `json:"skip_validate"`
	Required         bool   `json:"required"`
	HeaderKey        string `json:"header_key"`
}

// HandlerSection 定义 Handler 级别超时。
type HandlerSection struct {
	DefaultTimeout Duration `json:"default_timeout" validate:"gte=0"`
	CommandTimeout Duration `json:"command_timeout" validate:"gte=0"`
	QueryTimeout   Duration `json:"query_timeout" validate:"gte=0"`
}

// DataSection 聚合数据源配置。
type DataSection struct {
	Postgres PostgresSection `json:"postgres" validate:"required"`
}

// PostgresSection 描述连接池与事务默认值。
type PostgresSection struct {
	DSN                       string              `json:"dsn" validate:"required"`
	MaxOpenConns              int                 `json:"max_open_conns" validate:"gte=0"`
	MinOpenConns              int                 `json:"min_open_conns" validate:"gte=0"`
	MaxConnLifetime           Duration            `json:"max_conn_lifetime"`
	MaxConnIdleTime           Duration            `json:"max_conn_idle_time"`
	HealthCheckPeriod         Duration            `json:"health_check_period"`
	Schema                    string              `json:"schema"`
	PreparedStatementsEnabled bool                `json:"prepared_statements_enabled"`
	PoolMetricsEnabled        bool                `json:"pool_metrics_enabled"`
	Transaction               *TransactionSection `json:"transaction"`
}

// TransactionSection 描述事务默认值。
type TransactionSection struct {
	DefaultIsolation string   `json:"default_isolation" validate:"omitempty,oneof=read_committed repeatable_read serializable"`
	DefaultTimeout   Duration `json:"default_timeout"`
	LockTimeout      Duration `json:"lock_timeout"`
	MaxRetries       int      `json:"max_retries" validate:"gte=0"`
	MetricsEnabled   bool     `json:"metrics_enabled"`
}

// MediaSection 描述 MinIO 媒体存储。
type MediaSection struct {
	Endpoint        string   `json:"endpoint" validate:"required_with=AccessKeyID"`
	AccessKeyID     string   `json:"access_key_id"`
	SecretAccessKey string   `json:"secret_access_key" validate:"required_with=AccessKeyID"`
	UseSSL          bool     `json:"use_ssl"`
	Region          string   `json:"region"`
	VideoBucket     string   `json:"video_bucket"`
	ThumbnailBucket string   `json:"thumbnail_bucket"`
	PublicBaseURL   string   `json:"public_base_url" validate:"omitempty,url"`
	UploadTimeout   Duration `json:"upload_timeout" validate:"gte=0"`
	AutoCreate      bool     `json:"auto_create_buckets"`
}

// ObservabilitySection 聚合追踪与指标配置。
type ObservabilitySection struct {
	GlobalAttributes map[string]string `json:"global_attributes"`
	Tracing          *TracingSection   `json:"tracing"`
	Metrics          *MetricsSection   `json:"metrics"`
}

// TracingSection 对应 OpenTelemetry tracing。
type TracingSection struct {
	Enabled            bool              `json:"enabled"`
	Exporter           string            `json:"exporter" validate:"omitempty,oneof=otlp_grpc otlp_http stdout"`
	Endpoint           string            `json:"endpoint"`
	Headers            map[string]string `json:"headers"`
	Insecure           bool              `json:"insecure"`
	SamplingRatio      float64           `json:"sampling_ratio" validate:"gte=0,lte=1"`
	BatchTimeout       Duration          `json:"batch_timeout"`
	ExportTimeout      Duration          `json:"export_timeout"`
	MaxQueueSize       int               `json:"max_queue_size" validate:"gte=0"`
	MaxExportBatchSize int               `json:"max_export_batch_size" validate:"gte=0"`
	Required           bool              `json:"required"`
	Attributes         map[string]string `json:"attributes"`
}

// MetricsSection 对应 OpenTelemetry metrics。
type MetricsSection struct {
	Enabled             bool              `json:"enabled"`
	Exporter            string            `json:"exporter" validate:"omitempty,oneof=otlp_grpc otlp_http stdout"`
	Endpoint            string            `json:"endpoint"`
	Headers             map[string]string `json:"headers"`
	Insecure            bool              `json:"insecure"`
	Interval            Duration          `json:"interval"`
	DisableRuntimeStats bool              `json:"disable_runtime_stats"`
	Required            bool              `json:"required"`
	ResourceAttributes  map[string]string `json:"resource_attributes"`
	HTTPEnabled         bool              `json:"http_enabled"`
}

// MessagingSection 聚合 Pub/Sub、Outbox 与 Inbox 配置。
type MessagingSection struct {
	Events  *PubSubSection `json:"events"`
	Cascade *PubSubSection `json:"cascade"`
	Outbox  *OutboxSection `json:"outbox"`
	Inbox   *InboxSection  `json:"inbox"`
}

// PubSubSection 描述单个 topic/subscription。
type PubSubSection struct {
	ProjectID           string          `json:"project_id"`
	TopicID             string          `json:"topic_id" validate:"required_with=ProjectID"`
	SubscriptionID      string          `json:"subscription_id"`
	OrderingKeyEnabled  bool            `json:"ordering_key_enabled"`
	LoggingEnabled      bool            `json:"logging_enabled"`
	MetricsEnabled      bool            `json:"metrics_enabled"`
	EmulatorEndpoint    string          `json:"emulator_endpoint"`
	PublishTimeout      Duration        `json:"publish_timeout"`
	ExactlyOnceDelivery bool            `json:"exactly_once_delivery"`
	DeadLetterTopicID   string          `json:"dead_letter_topic_id"`
	Receive             *ReceiveSection `json:"receive"`
}

// ReceiveSection 控制订阅拉取。
type ReceiveSection struct {
	NumGoroutines          int      `json:"num_goroutines" validate:"gte=0"`
	MaxOutstandingMessages int      `json:"max_outstanding_messages" validate:"gte=0"`
	MaxOutstandingBytes    int      `json:"max_outstanding_bytes" validate:"gte=0"`
	MaxExtension           Duration `json:"max_extension"`
	MaxExtensionPeriod     Duration `json:"max_extension_period"`
}

// OutboxSection 配置 Outbox 发布器。
type OutboxSection struct {
	BatchSize      int      `json:"batch_size" validate:"gte=0"`
	TickInterval   Duration `json:"tick_interval"`
	InitialBackoff Duration `json:"initial_backoff"`
	MaxBackoff     Duration `json:"max_backoff"`
	MaxAttempts    int      `json:"max_attempts" validate:"gte=0"`
	PublishTimeout Duration `json:"publish_timeout"`
	Workers        int      `json:"workers" validate:"gte=0"`
	LockTTL        Duration `json:"lock_ttl"`
	LoggingEnabled *bool    `json:"logging_enabled"`
	MetricsEnabled *bool    `json:"metrics_enabled"`
}

// InboxSection 配置 Inbox 消费者。
type InboxSection struct {
	SourceService  string `json:"source_service"`
	MaxConcurrency int    `json:"max_concurrency" validate:"gte=0"`
	LoggingEnabled *bool  `json:"logging_enabled"`
	MetricsEnabled *bool  `json:"metrics_enabled"`
}

// Duration 支持 "5s" 形式的字符串与纳秒整数两种写法。
type Duration time.Duration

// Std 返回标准库 time.Duration。
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalJSON 实现 json.Unmarshaler。
func (d *Duration) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*d = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*d = 0
			return nil
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parse duration %s: %w", raw, err)
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON 以字符串形式输出。
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
