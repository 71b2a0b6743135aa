package config

import (
	"github.com/alexisbeaulieu97/buildify/internal/document"
)

// Config is the editor configuration read from buildify.yaml.
type Config struct {
	LogLevel      string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Device        string `yaml:"device" validate:"omitempty,device_type"`
	TemplatesDir  string `yaml:"templates_dir,omitempty"`
	OutputDir     string `yaml:"output_dir" validate:"required"`
	PackagePrefix string `yaml:"package_prefix" validate:"required,package_name"`
	AccentColor   string `yaml:"accent_color,omitempty" validate:"omitempty,hexcolor6"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		LogLevel:      "info",
		Device:        string(document.DeviceAndroid),
		OutputDir:     "dist",
		PackagePrefix: "com.buildify",
		AccentColor:   "#3b82f6",
	}
}

// DeviceType returns the configured starting device, android when unset.
func (c Config) DeviceType() document.DeviceType {
	device, err := document.ParseDeviceType(c.Device)
	if err != nil {
		return document.DeviceAndroid
	}
	return device
}
