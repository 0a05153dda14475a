package main

import "time"

// Config holds CLI defaults and integrations read from the environment.
// Flags override the generation defaults.
type Config struct {
	Out     string `env:"QRGEN_OUT" envDefault:"qr_output.png"`
	BoxSize int    `env:"QRGEN_BOX_SIZE" envDefault:"10"`
	Border  int    `env:"QRGEN_BORDER" envDefault:"4"`
	Fill    string `env:"QRGEN_FILL" envDefault:"#000000"`
	Back    string `env:"QRGEN_BACK" envDefault:"#FFFFFF"`

	LogLevel  string `env:"QRGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"QRGEN_LOG_FORMAT" envDefault:"text"`

	S3 S3Config
}

// S3Config enables publishing when Bucket is set.
type S3Config struct {
	Bucket         string        `env:"QRGEN_S3_BUCKET"`
	Region         string        `env:"QRGEN_S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string        `env:"QRGEN_S3_ACCESS_KEY_ID"`
	SecretKey      string        `env:"QRGEN_S3_SECRET_KEY"`
	Endpoint       string        `env:"QRGEN_S3_ENDPOINT"`
	BaseURL        string        `env:"QRGEN_S3_BASE_URL"`
	ForcePathStyle bool          `env:"QRGEN_S3_FORCE_PATH_STYLE" envDefault:"false"`
	Prefix         string        `env:"QRGEN_S3_PREFIX"`
	CacheControl   string        `env:"QRGEN_S3_CACHE_CONTROL"`
	UploadTimeout  time.Duration `env:"QRGEN_S3_UPLOAD_TIMEOUT" envDefault:"30s"`
}

// Enabled reports whether generated files should be published.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}
