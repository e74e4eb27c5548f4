// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/payflowhq/payflow/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for payflow.
type Configuration struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Storage StorageConfig `yaml:"storage,omitempty"`
	Scan    ScanConfig    `yaml:"scan,omitempty"`
	Account AccountConfig `yaml:"account,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Address        string   `yaml:"address,omitempty"`
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty"`
}

// StorageConfig holds persistent record store options.
type StorageConfig struct {
	// DataDirectory is where record collections are kept as JSON documents.
	DataDirectory string `yaml:"dataDirectory,omitempty"`

	// Memory switches to the in-memory store; records do not survive restarts.
	Memory bool `yaml:"memory,omitempty"`
}

// ScanConfig holds simulated QR-scan latencies in milliseconds.
type ScanConfig struct {
	CameraDelayMillis int `yaml:"cameraDelayMillis,omitempty"`
	UploadDelayMillis int `yaml:"uploadDelayMillis,omitempty"`
}

// AccountConfig holds the demo account parameters shown on the dashboard.
type AccountConfig struct {
	OpeningBalance float64 `yaml:"openingBalance,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// Default returns a configuration with every setting at its default, for
// running without a config file.
func Default() *Configuration {
	conf := &Configuration{}
	conf.applyDefaults()
	return conf
}

func (conf *Configuration) applyDefaults() {
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Storage.DataDirectory == "" {
		conf.Storage.DataDirectory = constants.DefaultDataDirectory
	}
	if conf.Scan.CameraDelayMillis == 0 {
		conf.Scan.CameraDelayMillis = constants.DefaultScanDelayMillis
	}
	if conf.Scan.UploadDelayMillis == 0 {
		conf.Scan.UploadDelayMillis = constants.DefaultUploadScanDelayMillis
	}
	if conf.Account.OpeningBalance == 0 {
		conf.Account.OpeningBalance = constants.DefaultOpeningBalance
	}
}

// ValidateConfiguration checks for questionable settings and returns
// human-readable warnings; it never fails the load.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Scan.CameraDelayMillis < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"scan.cameraDelayMillis %d is negative and will be treated as zero delay",
			conf.Scan.CameraDelayMillis))
	}
	if conf.Scan.UploadDelayMillis < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"scan.uploadDelayMillis %d is negative and will be treated as zero delay",
			conf.Scan.UploadDelayMillis))
	}
	if conf.Account.OpeningBalance < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"account.openingBalance %.2f is negative; the dashboard will show an overdrawn demo account",
			conf.Account.OpeningBalance))
	}
	if conf.Storage.Memory && conf.Storage.DataDirectory != constants.DefaultDataDirectory {
		warnings = append(warnings,
			"storage.dataDirectory is set but storage.memory is enabled; the directory will be ignored")
	}

	return warnings
}
