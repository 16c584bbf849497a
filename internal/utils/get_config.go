package utils

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	BackendFirebase = "firebase"
	BackendPostgres = "postgres"

	ProviderVertex = "vertex"
	ProviderOpenAI = "openai"

	defaultConfigFile    = "config.yaml"
	defaultAccessLogPath = "./logs/app.log"
)

type Config struct {
	// Google Cloud / Firebase
	FirebaseCredentialsPath string `yaml:"FIREBASE_CREDENTIALS_PATH" mapstructure:"firebase_credentials_path" validate:"required"`
	GoogleCloudProject      string `yaml:"GOOGLE_CLOUD_PROJECT" mapstructure:"google_cloud_project" validate:"required"`

	// Vertex AI
	VertexAILocation string `yaml:"VERTEX_AI_LOCATION" mapstructure:"vertex_ai_location" validate:"required"`
	VertexAIModel    string `yaml:"VERTEX_AI_MODEL" mapstructure:"vertex_ai_model" validate:"required"`

	// HTTP
	FrontendURL   string `yaml:"FRONTEND_URL" mapstructure:"frontend_url" validate:"required,http_url,excludes=*"`
	BackendPort   string `yaml:"BACKEND_PORT" mapstructure:"backend_port" validate:"required,numeric"`
	AccessLogPath string `yaml:"ACCESS_LOG_PATH" mapstructure:"access_log_path"`
	LogLevel      string `yaml:"LOG_LEVEL" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// Backends
	DataBackend   string `yaml:"DATA_BACKEND" mapstructure:"data_backend" validate:"oneof=firebase postgres"`
	ModelProvider string `yaml:"MODEL_PROVIDER" mapstructure:"model_provider" validate:"oneof=vertex openai"`

	// OpenAI, only when MODEL_PROVIDER=openai
	OpenAIAPIKey string `yaml:"OPENAI_API_KEY" mapstructure:"openai_api_key" validate:"required_if=ModelProvider openai"`
	OpenAIModel  string `yaml:"OPENAI_MODEL" mapstructure:"openai_model"`

	// Database configuration, only when DATA_BACKEND=postgres
	DBUser     string `yaml:"DB_USER" mapstructure:"db_user" validate:"required_if=DataBackend postgres"`
	DBName     string `yaml:"DB_NAME" mapstructure:"db_name" validate:"required_if=DataBackend postgres"`
	DBPassword string `yaml:"DB_PASSWORD" mapstructure:"db_password" validate:"required_if=DataBackend postgres"`
	DBPort     string `yaml:"DB_PORT" mapstructure:"db_port" validate:"required_if=DataBackend postgres"`
	DBHost     string `yaml:"DB_HOST" mapstructure:"db_host" validate:"required_if=DataBackend postgres"`
}

// LoadConfig reads the deployment settings once at startup. Values come from
// an optional config file (CONFIG_FILE, default config.yaml), overridden by the
// process environment, which may itself be seeded from a .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigFile
	}
	if err := mergeFile(v, path); err != nil {
		return nil, err
	}

	// Empty variables are treated as unset.
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key, so the environment can supply keys the
// config file does not mention.
func setDefaults(v *viper.Viper) {
	v.SetDefault("firebase_credentials_path", "")
	v.SetDefault("google_cloud_project", "")
	v.SetDefault("vertex_ai_location", "")
	v.SetDefault("vertex_ai_model", "")
	v.SetDefault("frontend_url", "")
	v.SetDefault("backend_port", "")
	v.SetDefault("access_log_path", defaultAccessLogPath)
	v.SetDefault("log_level", "info")
	v.SetDefault("data_backend", BackendFirebase)
	v.SetDefault("model_provider", ProviderVertex)
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("db_user", "")
	v.SetDefault("db_name", "")
	v.SetDefault("db_password", "")
	v.SetDefault("db_port", "")
	v.SetDefault("db_host", "")
}

// mergeFile overlays the YAML file on the defaults. A missing file is not an error.
func mergeFile(v *viper.Viper, path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}

	values := map[string]interface{}{}
	if err := yaml.Unmarshal(file, &values); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return v.MergeConfigMap(values)
}

// Validate reports every missing or malformed setting at once, using the
// environment variable names.
func (c *Config) Validate() error {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("yaml")
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_if":
			problems = append(problems, fe.Field()+" is required")
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
}

func (c *Config) Addr() string {
	return ":" + c.BackendPort
}

func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
