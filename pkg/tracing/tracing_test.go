package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupInMemoryTracer 使用内存exporter初始化Tracer
func setupInMemoryTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	shutdown, err := InitTracerWithExporter("test-service", exporter)
	require.NoError(t, err, "初始化Tracer失败")
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return exporter
}

// flush 把批处理中的Span刷到exporter
func flush(t *testing.T) {
	t.Helper()
	tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	require.True(t, ok)
	require.NoError(t, tp.ForceFlush(context.Background()))
}

func TestInitTracer(t *testing.T) {
	t.Run("OTLP exporter创建不依赖collector在线", func(t *testing.T) {
		shutdown, err := InitTracer("test-service", "localhost:4317")
		require.NoError(t, err)
		require.NotNil(t, shutdown)
		_ = shutdown(context.Background())
	})
}

func TestStartSpan(t *testing.T) {
	exporter := setupInMemoryTracer(t)

	t.Run("子Span继承TraceID", func(t *testing.T) {
		ctx, root := StartSpan(context.Background(), "test-service", "Root")
		_, child := StartSpan(ctx, "test-service", "Child")

		assert.True(t, root.SpanContext().IsValid())
		assert.Equal(t, root.SpanContext().TraceID(), child.SpanContext().TraceID())
		assert.NotEqual(t, root.SpanContext().SpanID(), child.SpanContext().SpanID())

		child.End()
		root.End()
	})

	t.Run("EndSpan记录错误状态", func(t *testing.T) {
		exporter.Reset()

		_, span := StartSpan(context.Background(), "test-service", "Failing")
		EndSpan(span, errors.New("boom"))
		_, ok := StartSpan(context.Background(), "test-service", "Succeeding")
		EndSpan(ok, nil)

		flush(t)
		spans := exporter.GetSpans()
		require.Len(t, spans, 2)

		byName := map[string]tracetest.SpanStub{}
		for _, s := range spans {
			byName[s.Name] = s
		}
		assert.Equal(t, codes.Error, byName["Failing"].Status.Code)
		assert.Equal(t, "boom", byName["Failing"].Status.Description)
		assert.Len(t, byName["Failing"].Events, 1, "RecordError会添加exception事件")
		assert.Equal(t, codes.Ok, byName["Succeeding"].Status.Code)
	})
}

func TestExtractTraceID(t *testing.T) {
	setupInMemoryTracer(t)

	t.Run("有效Context", func(t *testing.T) {
		ctx, span := StartSpan(context.Background(), "test-service", "Extract")
		defer span.End()

		assert.Len(t, ExtractTraceID(ctx), 32)
		assert.Len(t, ExtractSpanID(ctx), 16)
	})

	t.Run("无Span的Context返回空串", func(t *testing.T) {
		assert.Empty(t, ExtractTraceID(context.Background()))
		assert.Empty(t, ExtractSpanID(context.Background()))
	})
}
