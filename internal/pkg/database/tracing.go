package database

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "internal/pkg/database/tracing"

// TracingPlugin 给所有 GORM 操作挂上 OpenTelemetry span
type TracingPlugin struct {
	tracer trace.Tracer
}

func NewTracingPlugin() *TracingPlugin {
	return &TracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *TracingPlugin) Name() string {
	return "TracingPlugin"
}

func (p *TracingPlugin) Initialize(db *gorm.DB) error {
	// gorm 的 callback processor 类型未导出，只能以接口承接 Before/After 的返回值
	type registerer interface {
		Register(name string, fn func(*gorm.DB)) error
	}
	type callback struct {
		before registerer
		after  registerer
		op     string
	}
	cbs := []callback{
		{db.Callback().Query().Before("gorm:query"), db.Callback().Query().After("gorm:query"), "SELECT"},
		{db.Callback().Create().Before("gorm:create"), db.Callback().Create().After("gorm:create"), "INSERT"},
		{db.Callback().Update().Before("gorm:update"), db.Callback().Update().After("gorm:update"), "UPDATE"},
		{db.Callback().Delete().Before("gorm:delete"), db.Callback().Delete().After("gorm:delete"), "DELETE"},
		{db.Callback().Raw().Before("gorm:raw"), db.Callback().Raw().After("gorm:raw"), "RAW"},
	}
	for _, cb := range cbs {
		op := cb.op
		err := cb.before.Register("tracing:before_"+op, p.before(op))
		if err != nil {
			return err
		}
		err = cb.after.Register("tracing:after_"+op, p.after(op))
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *TracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		spanName := fmt.Sprintf("%s %s", db.Statement.Table, op)
		ctx, span := p.tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.Set("tracing:span", span)
	}
}

func (p *TracingPlugin) after(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.Get("tracing:span")
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", "mysql"),
			attribute.String("db.operation", op),
		}
		if db.Statement.Table != "" {
			attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
		}
		if sql := db.Statement.SQL.String(); sql != "" {
			attrs = append(attrs, attribute.String("db.statement", sql))
		}
		if db.Statement.RowsAffected > 0 {
			attrs = append(attrs, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
		}
		span.SetAttributes(attrs...)
		// 没查到不算错误
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
