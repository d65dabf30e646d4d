package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pulsopublico/pulso-api/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	// Supabase credentials can legitimately be absent: the API still boots
	// and every data route answers with a configuration diagnostic.
	SupabaseURL                string
	SupabaseServiceKey         string
	SupabaseTimeout            time.Duration
	SupabaseMaxRetries         int
	SupabaseCircuitEnabled     bool
	SupabaseCircuitFailures    int
	SupabaseCircuitOpenTimeout time.Duration
	SupabaseCircuitHalfOpenReq int

	RankingResources []string

	CacheEnabled bool
	CacheTTL     time.Duration

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	DBURL string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	supabaseURL := strings.TrimSpace(getEnv("SUPABASE_URL", getEnv("NEXT_PUBLIC_SUPABASE_URL", "")))
	supabaseServiceKey := strings.TrimSpace(getEnv("SUPABASE_SERVICE_KEY",
		getEnv("SUPABASE_SERVICE_ROLE_KEY", getEnv("SUPABASE_KEY", ""))))

	supabaseTimeout, err := time.ParseDuration(getEnv("SUPABASE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_TIMEOUT: %w", err)
	}
	if supabaseTimeout <= 0 {
		return Config{}, fmt.Errorf("SUPABASE_TIMEOUT must be > 0")
	}
	supabaseMaxRetries, err := getEnvAsInt("SUPABASE_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_MAX_RETRIES: %w", err)
	}
	if supabaseMaxRetries < 0 {
		return Config{}, fmt.Errorf("SUPABASE_MAX_RETRIES must be >= 0")
	}
	supabaseCircuitEnabled, err := strconv.ParseBool(getEnv("SUPABASE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_CIRCUIT_ENABLED: %w", err)
	}
	supabaseCircuitFailures, err := getEnvAsInt("SUPABASE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if supabaseCircuitFailures < 1 {
		return Config{}, fmt.Errorf("SUPABASE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	supabaseCircuitOpenTimeout, err := time.ParseDuration(getEnv("SUPABASE_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if supabaseCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SUPABASE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	supabaseCircuitHalfOpenReq, err := getEnvAsInt("SUPABASE_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if supabaseCircuitHalfOpenReq < 1 {
		return Config{}, fmt.Errorf("SUPABASE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "pulso-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		SupabaseURL:                supabaseURL,
		SupabaseServiceKey:         supabaseServiceKey,
		SupabaseTimeout:            supabaseTimeout,
		SupabaseMaxRetries:         supabaseMaxRetries,
		SupabaseCircuitEnabled:     supabaseCircuitEnabled,
		SupabaseCircuitFailures:    supabaseCircuitFailures,
		SupabaseCircuitOpenTimeout: supabaseCircuitOpenTimeout,
		SupabaseCircuitHalfOpenReq: supabaseCircuitHalfOpenReq,

		RankingResources: splitCSV(getEnv("RANKING_RESOURCES", "daily_ranking_with_names,daily_ranking,daily_rankings")),

		CacheEnabled: cacheEnabled,
		CacheTTL:     cacheTTL,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,

		DBURL: getEnv("DB_URL", ""),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if len(cfg.RankingResources) == 0 {
		return Config{}, fmt.Errorf("RANKING_RESOURCES cannot be empty")
	}

	return cfg, nil
}

// BackendConfigured reports whether the Supabase gateway has credentials to
// work with.
func (c Config) BackendConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
