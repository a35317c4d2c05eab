// Package logger 基于zap的结构化日志
package logger

import (
	"go.uber.org/zap"
)

// New 根据配置创建zap日志器
// level: debug | info | warn | error（空值使用zap默认）
// format: console | json
func New(level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if level != "" {
		if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
			return nil, err
		}
	}
	return cfg.Build()
}
