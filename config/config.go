package config

import (
	"time"

	"notebin/utils"
)

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
	RetryWrites     bool
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", "notebin"),
		RetryWrites:     utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
	}
}

// RetentionConfig governs the bin purge sweep and the recovery rate limiter.
type RetentionConfig struct {
	// Retention is how long a soft-deleted note survives in the bin.
	Retention time.Duration
	// PurgeWindow is the process-wide throttle between sweeps.
	PurgeWindow time.Duration
	// PurgeInterval is how often the scheduler wakes up to try a sweep.
	PurgeInterval time.Duration

	// ResetLimit / ResetWindow bound password reset requests per email.
	ResetLimit  int
	ResetWindow time.Duration
	// ResetTokenMaxAge bounds how long a reset token stays redeemable.
	ResetTokenMaxAge time.Duration
}

func LoadRetentionConfig() RetentionConfig {
	return RetentionConfig{
		Retention:        utils.GetEnvAsDuration("BIN_RETENTION", 30*24*time.Hour),
		PurgeWindow:      utils.GetEnvAsDuration("PURGE_WINDOW", 6*time.Hour),
		PurgeInterval:    utils.GetEnvAsDuration("PURGE_INTERVAL", 10*time.Minute),
		ResetLimit:       utils.GetEnvAsInt("RESET_LIMIT", 5),
		ResetWindow:      utils.GetEnvAsDuration("RESET_WINDOW", time.Hour),
		ResetTokenMaxAge: utils.GetEnvAsDuration("RESET_TOKEN_MAX_AGE", 30*time.Minute),
	}
}

type StorageConfig struct {
	// Backend selects "local" or "minio".
	Backend string

	// Local disk settings
	UploadDir string
	PublicURL string

	// MinIO settings
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	MaxUploadSize int64
}

func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		Backend:       utils.GetEnvAsString("STORAGE_BACKEND", "local"),
		UploadDir:     utils.GetEnvAsString("UPLOAD_DIR", "static/uploads"),
		PublicURL:     utils.GetEnvAsString("UPLOAD_PUBLIC_URL", "/static/uploads"),
		Endpoint:      utils.GetEnvAsString("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:     utils.GetEnvAsString("MINIO_ACCESS_KEY", ""),
		SecretKey:     utils.GetEnvAsString("MINIO_SECRET_KEY", ""),
		Bucket:        utils.GetEnvAsString("MINIO_BUCKET", "notebin-media"),
		UseSSL:        utils.GetEnvAsBool("MINIO_USE_SSL", false),
		MaxUploadSize: int64(utils.GetEnvAsInt("MAX_UPLOAD_SIZE", 5*1024*1024)),
	}
}
