package config

// ChatLog definition chatlog_service YAML structure
type ChatLog struct {
	Port         string      `mapstructure:"port"`
	DefaultLimit int         `mapstructure:"default_limit"`
	Store        string      `mapstructure:"store"`
	PprofPort    string      `mapstructure:"pprof_port"`
	Redis        RedisConfig `mapstructure:"redis"`
}

const (
	// StoreMemory keep chat logs in process memory
	StoreMemory = "memory"
	// StoreRedis keep chat logs in redis
	StoreRedis = "redis"
)

// RedisConfig definition redis setting
type RedisConfig struct {
	Addr       string   `mapstructure:"addr"`
	MasterName string   `mapstructure:"master_name"`
	Sentinels  []string `mapstructure:"sentinels"`
	Password   string   `mapstructure:"password"`
	RedisDB    int      `mapstructure:"redis_db"`
	KeyPrefix  string   `mapstructure:"key_prefix"`
}

// ChatLogDefaults default values of ChatLog keys
func ChatLogDefaults() map[string]interface{} {
	return map[string]interface{}{
		"port":             "8080",
		"default_limit":    10,
		"store":            StoreMemory,
		"pprof_port":       "6060",
		"redis.addr":       "localhost:6379",
		"redis.redis_db":   0,
		"redis.key_prefix": "chatlog",
	}
}
