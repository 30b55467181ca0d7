package configloader

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Params 控制配置加载的输入参数。
type Params struct {
	ConfPath string
}

const (
	defaultConfPath       = "configs/config.yaml"
	envConfPath           = "CONF_PATH"
	envDatabaseURL        = "DATABASE_URL"
	envPort               = "PORT"
	envServiceName        = "SERVICE_NAME"
	envServiceVersion     = "SERVICE_VERSION"
	envEnvironment        = "APP_ENV"
	envMinioEndpoint      = "MINIO_ENDPOINT"
	envMinioAccessKey     = "MINIO_ACCESS_KEY"
	envMinioSecretKey     = "MINIO_SECRET_KEY"
	envMinioUseSSL        = "MINIO_USE_SSL"
	envMinioPublicURL     = "MINIO_PUBLIC_BASE_URL"
	defaultServiceName    = "lingo-services-engagement"
	defaultServiceVersion = "dev"
	defaultEnvironment    = "development"
)

// Load 解析配置文件并返回归一化的 RuntimeConfig。
func Load(params Params) (RuntimeConfig, error) {
	confPath := resolveConfPath(params.ConfPath)
	if err := loadEnvFiles(confPath); err != nil {
		return RuntimeConfig{}, fmt.Errorf("load env files: %w", err)
	}

	bootstrap, err := loadBootstrap(confPath)
	if err != nil {
		return RuntimeConfig{}, err
	}

	service := buildServiceInfo()
	runtime := fromBootstrap(bootstrap)
	runtime.Service = service
	fillDefaults(&runtime)

	return runtime, nil
}

func resolveConfPath(explicit string) string {
	switch {
	case explicit != "":
		return explicit
	case os.Getenv(envConfPath) != "":
		return os.Getenv(envConfPath)
	default:
		return defaultConfPath
	}
}

func loadEnvFiles(confPath string) error {
	dirs := candidateDirs(confPath)
	var files []string
	seen := map[string]struct{}{}
	for _, dir := range dirs {
		for _, name := range []string{".env.local", ".env"} {
			fp := filepath.Join(dir, name)
			if _, err := os.Stat(fp); err != nil {
				continue
			}
			if _, ok := seen[fp]; ok {
				continue
			}
			files = append(files, fp)
			seen[fp] = struct{}{}
		}
	}
	if len(files) == 0 {
		return nil
	}
	return godotenv.Overload(files...)
}

func candidateDirs(confPath string) []string {
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		clean := filepath.Clean(path)
		for _, exist := range dirs {
			if exist == clean {
				return
			}
		}
		dirs = append(dirs, clean)
	}

	if info, err := os.Stat(confPath); err == nil {
		if info.IsDir() {
			add(confPath)
		} else {
			add(filepath.Dir(confPath))
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		add(cwd)
	}
	return dirs
}

func loadBootstrap(confPath string) (*Bootstrap, error) {
	c := config.New(config.WithSource(file.NewSource(confPath)))
	if err := c.Load(); err != nil {
		return nil, fmt.Errorf("load config %q: %w", confPath, err)
	}
	defer c.Close()

	var bootstrap Bootstrap
	if err := c.Scan(&bootstrap); err != nil {
		return nil, fmt.Errorf("scan config %q: %w", confPath, err)
	}

	applyEnvOverrides(&bootstrap)

	if err := validator.New().Struct(&bootstrap); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &bootstrap, nil
}

func buildServiceInfo() ServiceInfo {
	name := firstNonEmpty(os.Getenv(envServiceName), defaultServiceName)
	version := firstNonEmpty(os.Getenv(envServiceVersion), defaultServiceVersion)
	env := resolveEnvironment(os.Getenv(envEnvironment))
	instance := hostnameOrDefault()

	return ServiceInfo{
		Name:        name,
		Version:     version,
		Environment: env,
		InstanceID:  instance,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveEnvironment(raw string) string {
	if raw == "" {
		return defaultEnvironment
	}
	switch raw {
	case "dev", "development":
		return defaultEnvironment
	case "staging":
		return "staging"
	case "prod", "production":
		return "production"
	default:
		return raw
	}
}

func hostnameOrDefault() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "unknown-instance"
	}
	return host
}

func applyEnvOverrides(b *Bootstrap) {
	if b == nil {
		return
	}
	if dsn := os.Getenv(envDatabaseURL); dsn != "" {
		b.Data.Postgres.DSN = dsn
	}
	if port := os.Getenv(envPort); port != "" {
		b.Server.HTTP.Addr = replacePort(b.Server.HTTP.Addr, port)
	}
	if endpoint := os.Getenv(envMinioEndpoint); endpoint != "" {
		b.Media.Endpoint = endpoint
	}
	if key := os.Getenv(envMinioAccessKey); key != "" {
		b.Media.AccessKeyID = key
	}
	if secret := os.Getenv(envMinioSecretKey); secret != "" {
		b.Media.SecretAccessKey = secret
	}
	if raw := os.Getenv(envMinioUseSSL); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			b.Media.UseSSL = v
		}
	}
	if base := os.Getenv(envMinioPublicURL); base != "" {
		b.Media.PublicBaseURL = base
	}
}

func replacePort(addr, port string) string {
	if addr == "" {
		return ":" + port
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return ":" + port
	}
	return net.JoinHostPort(host, port)
}
