package config

import (
	"errors"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerHost            string   `mapstructure:"SERVER_HOST"`
	ServerPort            int      `mapstructure:"SERVER_PORT" validate:"required,gte=1023,lte=65535"`
	GeminiModel           string   `mapstructure:"GEMINI_MODEL" validate:"required"`
	GeminiAPI             string   `mapstructure:"GEMINI_API" validate:"required"`
	GeminiBaseURL         string   `mapstructure:"GEMINI_BASE_URL" validate:"omitempty,url"`
	LogFile               string   `mapstructure:"LOGGING_FILE"`
	ServerShutdownTimeout int      `mapstructure:"SERVER_SHUTDOWN_TIMEOUT" validate:"required,gte=1"`
	MaxRequestBodyBytes   int64    `mapstructure:"MAX_REQUEST_BODY_BYTES" validate:"required,gte=10485760"`
	MultipartMemoryBytes  int64    `mapstructure:"MULTIPART_MEMORY_BYTES" validate:"required,gt=0"`
	GinMode               string   `mapstructure:"GIN_MODE" validate:"oneof=debug release test"`
	CorsAllowedOrigins    []string `mapstructure:"CORS_ALLOWED_ORIGINS" validate:"required,min=1,dive,required"`
}

var defaults = map[string]any{
	"SERVER_HOST":             "",
	"SERVER_PORT":             5000,
	"GEMINI_MODEL":            "gemini-1.5-flash",
	"GEMINI_BASE_URL":         "",
	"LOGGING_FILE":            "",
	"SERVER_SHUTDOWN_TIMEOUT": 10,
	"MAX_REQUEST_BODY_BYTES":  16 << 20,
	"MULTIPART_MEMORY_BYTES":  8 << 20,
	"GIN_MODE":                "release",
	"CORS_ALLOWED_ORIGINS":    []string{"*"},
}

// LoadConfigs reads an optional .env file at path, then the process environment.
// Variables already present in the environment win over the file.
func LoadConfigs(path string) (*Config, error) {

	if path != "" {
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// no default on purpose: the key must come from the environment
	if err := v.BindEnv("GEMINI_API"); err != nil {
		return nil, err
	}
	v.AutomaticEnv()

	var Cfg Config

	err := v.Unmarshal(&Cfg)
	if err != nil {
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(Cfg)
	if err != nil {
		return nil, err
	}

	return &Cfg, nil

}
