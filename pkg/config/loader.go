package config

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvInfo 服務資訊 from .env
type EnvInfo struct {
	ChatLogService         string
	ChatLogServiceYAMLPath string
	ChatLogServiceLogPath  string
}

// EnvConfig 服務資訊
var (
	EnvConfig = initEnv()
	envConfig EnvInfo
	once      sync.Once
	env       string
)

func initEnv() EnvInfo {
	once.Do(func() {
		path, err := GetPath(".env", 5)
		if err != nil {
			log.Printf("Warning: Could not get .env path: %v", err)
		} else if err := godotenv.Load(path); err != nil {
			log.Printf("Warning: Could not load .env file: %v", err)
		}

		env = os.Getenv("ENV")

		envConfig = EnvInfo{
			ChatLogService:         getEnv("CHATLOG_SERVICE", "chatlog_service"),
			ChatLogServiceYAMLPath: getEnv("CHATLOG_SERVICE_YAML", "./config"),
			ChatLogServiceLogPath:  getEnv("CHATLOG_SERVICE_LOG", "./log"),
		}
	})

	return envConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// IsProduction check run env
func IsProduction() bool {
	return env == "production"
}

// IsLocal check run env
func IsLocal() bool {
	return env == "local"
}

// LoadConfig 加載配置. A missing config file leaves the defaults in place.
func LoadConfig[T any](serviceName string, configPath string, defaults map[string]interface{}) (T, error) {
	var cfg T

	v := viper.New()
	v.SetConfigName(serviceName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 自動讀取環境變數
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
		log.Printf("Warning: config %s not found in %s, using defaults", serviceName, configPath)
	} else {
		rawConfig, err := os.ReadFile(v.ConfigFileUsed())
		if err != nil {
			return cfg, err
		}

		// 替換 ${} 占位符為環境變數的值
		expandedConfig := os.ExpandEnv(string(rawConfig))
		if err := v.ReadConfig(bytes.NewBufferString(expandedConfig)); err != nil {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// GetPath use fileName loop maxCount find file path
func GetPath(fileName string, maxCount int) (string, error) {
	path := "./" + fileName

	for i := 0; i < maxCount; i++ {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		path = "../" + path
	}
	return "", errors.New(fileName + " can't find path")
}
