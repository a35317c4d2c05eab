// Package tracing 基于OpenTelemetry的分布式追踪初始化
//
// 默认关闭，通过配置otel.enable开启；导出器使用OTLP gRPC，
// gorm侧通过官方tracing插件接入（见cmd/api/main.go）。
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// Config 追踪配置
type Config struct {
	Endpoint       string  // OTLP gRPC端点，如 localhost:4317
	Insecure       bool    // 是否不使用TLS
	SamplerRatio   float64 // 采样率（0-1）
	ServiceName    string
	ServiceVersion string
}

// Init 初始化TracerProvider并设置为全局
// 调用方负责在进程退出时调用返回值的Shutdown
func Init(ctx context.Context, cfg Config) (*trace.TracerProvider, error) {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exp, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(cfg.ServiceName),
		semconv.ServiceVersionKey.String(cfg.ServiceVersion),
	))
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SamplerRatio))),
	)
	otel.SetTracerProvider(tp)
	return tp, nil
}
