package config

import (
	"strings"
	"time"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Storage  StorageConfig  `yaml:"storage"`
	Quota    QuotaConfig    `yaml:"quota"`
	Workflow WorkflowConfig `yaml:"workflow"`
	Notify   NotifyConfig   `yaml:"notify"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RequestTimeout  time.Duration `yaml:"request_timeout"  env:"SERVER_REQUEST_TIMEOUT"  env-default:"30s"`
	// Per-caller requests per minute on the upload and generation routes.
	UploadRateLimit   int `yaml:"upload_rate_limit"   env:"SERVER_UPLOAD_RATE_LIMIT"   env-default:"30"`
	GenerateRateLimit int `yaml:"generate_rate_limit" env:"SERVER_GENERATE_RATE_LIMIT" env-default:"10"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// Reported in pg_stat_activity so dossier sessions can be told apart.
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"dossier-backend"`
	PingTimeout     time.Duration `yaml:"ping_timeout"       env:"DATABASE_PING_TIMEOUT"       env-default:"5s"`
}

// AuthConfig holds access-token validation settings. Tokens are issued elsewhere.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"dossier"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StorageConfig selects the evidence blob store.
// Driver "s3" talks to any S3-compatible endpoint; "memory" keeps blobs in process.
type StorageConfig struct {
	Driver          string `yaml:"driver"            env:"STORAGE_DRIVER"            env-default:"s3"`
	Bucket          string `yaml:"bucket"            env:"STORAGE_BUCKET"            env-default:"evidence"`
	Region          string `yaml:"region"            env:"STORAGE_REGION"            env-default:"us-east-1"`
	Endpoint        string `yaml:"endpoint"          env:"STORAGE_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id"     env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `yaml:"use_path_style"    env:"STORAGE_USE_PATH_STYLE"    env-default:"true"`
	KeyPrefix       string `yaml:"key_prefix"        env:"STORAGE_KEY_PREFIX"        env-default:"artifacts/"`
}

// QuotaConfig holds monthly plan limits. ENTERPRISE is always unlimited;
// a negative limit means unlimited as well.
type QuotaConfig struct {
	FreeDocs     int    `yaml:"free_docs"     env:"QUOTA_FREE_DOCS"     env-default:"3"`
	FreeTrust    int    `yaml:"free_trust"    env:"QUOTA_FREE_TRUST"    env-default:"1"`
	ProDocs      int    `yaml:"pro_docs"      env:"QUOTA_PRO_DOCS"      env-default:"50"`
	ProTrust     int    `yaml:"pro_trust"     env:"QUOTA_PRO_TRUST"     env-default:"20"`
	PersonalPlan string `yaml:"personal_plan" env:"QUOTA_PERSONAL_PLAN" env-default:"FREE"`
}

// WorkflowConfig holds review-cycle and upload policy.
type WorkflowConfig struct {
	CatalogPath             string `yaml:"catalog_path"              env:"WORKFLOW_CATALOG_PATH"`
	OwnerCanRequestChanges  bool   `yaml:"owner_can_request_changes" env:"WORKFLOW_OWNER_CAN_REQUEST_CHANGES" env-default:"false"`
	RequireApprovedEvidence bool   `yaml:"require_approved_evidence" env:"WORKFLOW_REQUIRE_APPROVED_EVIDENCE" env-default:"true"`
	MaxUploadBytes          int64  `yaml:"max_upload_bytes"          env:"WORKFLOW_MAX_UPLOAD_BYTES"          env-default:"52428800"`
	MaxContentBytes         int    `yaml:"max_content_bytes"         env:"WORKFLOW_MAX_CONTENT_BYTES"         env-default:"1048576"`
	// Autosave snapshots untouched for this many days are purged by cmd/cleanup.
	AutosaveRetentionDays int `yaml:"autosave_retention_days" env:"WORKFLOW_AUTOSAVE_RETENTION_DAYS" env-default:"30"`
}

// NotifyConfig holds settings of the asynchronous notification dispatcher.
type NotifyConfig struct {
	Concurrency int64         `yaml:"concurrency" env:"NOTIFY_CONCURRENCY" env-default:"8"`
	Timeout     time.Duration `yaml:"timeout"     env:"NOTIFY_TIMEOUT"     env-default:"10s"`
}

// Limits returns the monthly limits of plan. Negative configured values and
// the ENTERPRISE plan yield domain.Unlimited.
func (c QuotaConfig) Limits(plan domain.Plan) domain.PlanLimits {
	switch plan {
	case domain.PlanFree:
		return domain.PlanLimits{Docs: limit(c.FreeDocs), Trust: limit(c.FreeTrust)}
	case domain.PlanPro:
		return domain.PlanLimits{Docs: limit(c.ProDocs), Trust: limit(c.ProTrust)}
	default:
		return domain.PlanLimits{Docs: domain.Unlimited, Trust: domain.Unlimited}
	}
}

// Personal returns the plan applied to actors without a company.
func (c QuotaConfig) Personal() domain.Plan {
	return domain.Plan(strings.ToUpper(strings.TrimSpace(c.PersonalPlan)))
}

func limit(v int) int {
	if v < 0 {
		return domain.Unlimited
	}
	return v
}
