package types

// DefaultBaseURL é o endpoint local onde a API de analytics costuma rodar.
const DefaultBaseURL = "http://localhost:4000"

// Config represents the application configuration that can be loaded from a file,
// overridden by DASHBOARD_* environment variables and finally by command-line flags.
type Config struct {
	BaseURL    string   `json:"base_url" yaml:"base_url" toml:"base_url" envconfig:"BASE_URL" validate:"required,url"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name" envconfig:"REPORT_NAME"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type" envconfig:"REPORT_TYPE" validate:"dive,oneof=csv json pdf"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir" envconfig:"DIR"`
	S3Bucket   string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket" envconfig:"S3_BUCKET"`
	S3Prefix   string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix" envconfig:"S3_PREFIX"`
	AWSProfile string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile" envconfig:"AWS_PROFILE"`
	AWSRegion  string   `json:"aws_region" yaml:"aws_region" toml:"aws_region" envconfig:"AWS_REGION"`
}
