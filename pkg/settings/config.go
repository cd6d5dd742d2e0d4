package settings

type Config struct {
	Server     Server     `mapstructure:"server" yaml:"server"`
	Logger     Logger     `mapstructure:"logger" yaml:"logger"`
	TimedCache TimedCache `mapstructure:"timed_cache" yaml:"timed_cache"`
}

// Server is the configuration for the metrics/health HTTP server.
// A zero Port disables it.
type Server struct {
	Mode string `mapstructure:"mode" yaml:"mode" validate:"omitempty,oneof=debug release test"`
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port" validate:"gte=0,lte=65535"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`   // Days
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// TimedCache is the configuration for a sliding-expiration cache.
// Zero values select the cache defaults; out-of-range values are clamped
// by the cache rather than rejected here.
type TimedCache struct {
	Live          int `mapstructure:"live" yaml:"live"`                     // Milliseconds
	CheckInterval int `mapstructure:"check_interval" yaml:"check_interval"` // Milliseconds
	ItemsPerCheck int `mapstructure:"items_per_check" yaml:"items_per_check"`
}
