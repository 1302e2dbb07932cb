package settings

type Config struct {
	Desk   Desk   `mapstructure:"desk"`
	Logger Logger `mapstructure:"logger"`
	Bench  Bench  `mapstructure:"bench"`
}

// Desk is the configuration for the admission session
type Desk struct {
	Engine         string `mapstructure:"engine" validate:"oneof=ring list"`
	Capacity       int    `mapstructure:"capacity" validate:"gte=0"` // 0 = unbounded
	PromptCapacity bool   `mapstructure:"prompt_capacity"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}

// Bench is the configuration for the scripted benchmark harness
type Bench struct {
	Timeout int    `mapstructure:"timeout" validate:"gt=0"` // Seconds
	Binary  string `mapstructure:"binary"`
}
