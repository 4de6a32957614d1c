package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all deploy-trigger configuration
type Config struct {
	AWS           AWSConfig
	DeployConfig  DeployConfigLocation
	CodeBuild     CodeBuildConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	AppEnv        string
}

type AWSConfig struct {
	Region          string
	Endpoint        string // Optional: override for localstack runs
	AccessKeyID     string
	SecretAccessKey string
}

// DeployConfigLocation points at the YAML deploy config object in S3.
type DeployConfigLocation struct {
	Bucket string
	Key    string
}

type CodeBuildConfig struct {
	Project string
}

type LoggingConfig struct {
	Level string
}

type ObservabilityConfig struct {
	ExporterEndpoint string
	ServiceName      string
	ServiceVersion   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("AWS_REGION", "eu-west-1")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("O11Y_SERVICE_NAME", "deploy-trigger")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		AWS: AWSConfig{
			Region:          v.GetString("AWS_REGION"),
			Endpoint:        v.GetString("AWS_ENDPOINT_URL"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		DeployConfig: DeployConfigLocation{
			Bucket: v.GetString("S3_BUCKET_NAME"),
			Key:    v.GetString("S3_OBJECT_KEY"),
		},
		CodeBuild: CodeBuildConfig{
			Project: v.GetString("CODEBUILD_PROJECT"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint: v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:      v.GetString("O11Y_SERVICE_NAME"),
			ServiceVersion:   v.GetString("O11Y_SERVICE_VERSION"),
		},
		AppEnv: v.GetString("APP_ENV"),
	}

	return cfg, nil
}

// ValidateConfigTrigger checks the fields the config-driven trigger needs
func (c *Config) ValidateConfigTrigger() error {
	if c.DeployConfig.Bucket == "" {
		return fmt.Errorf("S3_BUCKET_NAME is required")
	}
	if c.DeployConfig.Key == "" {
		return fmt.Errorf("S3_OBJECT_KEY is required")
	}
	return nil
}

// ValidateNameTrigger checks the fields the name trigger needs
func (c *Config) ValidateNameTrigger() error {
	if c.CodeBuild.Project == "" {
		return fmt.Errorf("CODEBUILD_PROJECT is required")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
