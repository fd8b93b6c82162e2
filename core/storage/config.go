package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds dataset documents, converted module files and published reports.
	Bucket string `mapstructure:"bucket" default:"requirements"`
	// Region is the location of the bucket (e.g., eu-central-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// DatasetPrefix is the folder holding dataset documents.
	DatasetPrefix string `mapstructure:"dataset_prefix" default:"datasets/"`
	// ReportPrefix is the folder check reports are published to.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports/"`
}
