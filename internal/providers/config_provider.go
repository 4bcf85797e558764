package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"camsd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "CAMSD_LOG_LEVEL")
	viper.BindEnv("sync.interval", "CAMSD_SYNC_INTERVAL")
	viper.BindEnv("persistence.saveInterval", "CAMSD_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "CAMSD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "CAMSD_CACHE_SIZE")
	viper.BindEnv("upstream.baseUrl", "CAMSD_UPSTREAM_BASEURL")
	viper.BindEnv("upstream.authKey", "CAMSD_UPSTREAM_AUTHKEY")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "CAMSAttendanceDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
