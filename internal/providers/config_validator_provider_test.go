package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"camsd/internal/structures"
)

func validConfig() *structures.Config {
	return &structures.Config{
		Upstream: structures.Upstream{
			BaseURL:        "https://ctoadmin.itiltd.in/cams/api",
			AttendancePath: "/attendance_daily3.php/attendance-daily",
			AuthType:       "none",
			Timeout:        15 * time.Second,
		},
		Sync: structures.SyncConfig{
			Interval: 5 * time.Minute,
			Users:    []string{"61008"},
		},
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Persistence: structures.Persistence{
			FilePath:     "/tmp/camsd.dat",
			SaveInterval: 30 * time.Second,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyBaseURL(t *testing.T) {
	c := validConfig()
	c.Upstream.BaseURL = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_BadAuthType(t *testing.T) {
	c := validConfig()
	c.Upstream.AuthType = "kerberos"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
