package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Upstream struct {
	BaseURL            string        `yaml:"baseUrl" validate:"required"`
	AttendancePath     string        `yaml:"attendancePath" validate:"required"`
	LeavesPath         string        `yaml:"leavesPath"`
	ReimbursementsPath string        `yaml:"reimbursementsPath"`
	SettingsPath       string        `yaml:"settingsPath"`
	AuthType           string        `yaml:"authType" validate:"in:none,bearer,api-key"`
	AuthKey            string        `yaml:"authKey"`
	Timeout            time.Duration `yaml:"timeout" validate:"required|min:1"`
}

type SyncConfig struct {
	Interval time.Duration `yaml:"interval" validate:"required|min:1"`
	Users    []string      `yaml:"users"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Upstream    Upstream      `yaml:"upstream"`
	Sync        SyncConfig    `yaml:"sync"`
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}
