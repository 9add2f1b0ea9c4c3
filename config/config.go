package config

import (
	"fmt"

	"github.com/go-ini/ini"
)

const (
	KindSingly   = "singly"
	KindCircular = "circular"
	KindBoth     = "both"
)

type Config struct {
	WorkloadConfig *WorkloadConfig
}

func NewConfig(iniPath string) (*Config, error) {
	ini, err := readConfig(iniPath)
	if err != nil {
		return nil, err
	}
	return newConfig(ini)
}

// Parse 从内存中的 ini 内容构造配置
func Parse(data []byte) (*Config, error) {
	ini, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return newConfig(ini)
}

func newConfig(ini *ini.File) (*Config, error) {
	wc := NewWorkloadConfig(ini)
	if err := wc.Validate(); err != nil {
		return nil, err
	}
	return &Config{
		WorkloadConfig: wc,
	}, nil
}

type WorkloadConfig struct {
	Kind        string
	InitialSize int
	OpCount     int
	ValueRange  int
	Seed        int64
	Verbose     bool
}

func NewWorkloadConfig(ini *ini.File) *WorkloadConfig {
	section := ini.Section("Workload")
	return &WorkloadConfig{
		Kind:        section.Key("Kind").MustString(KindCircular),
		InitialSize: section.Key("InitialSize").MustInt(8),
		OpCount:     section.Key("OpCount").MustInt(1000),
		ValueRange:  section.Key("ValueRange").MustInt(32),
		Seed:        section.Key("Seed").MustInt64(0),
		Verbose:     section.Key("Verbose").MustBool(false),
	}
}

func (wc *WorkloadConfig) Validate() error {
	switch wc.Kind {
	case KindSingly, KindCircular, KindBoth:
	default:
		return fmt.Errorf("invalid Kind %q", wc.Kind)
	}
	if wc.InitialSize < 0 {
		return fmt.Errorf("invalid InitialSize %d", wc.InitialSize)
	}
	if wc.OpCount < 0 {
		return fmt.Errorf("invalid OpCount %d", wc.OpCount)
	}
	if wc.ValueRange <= 0 {
		return fmt.Errorf("invalid ValueRange %d", wc.ValueRange)
	}
	return nil
}

// 读取配置文件
func readConfig(filePath string) (*ini.File, error) {
	ini, err := ini.Load(filePath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return ini, nil
}
