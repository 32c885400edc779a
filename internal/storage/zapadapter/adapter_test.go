package zapadapter

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLog_ContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLogger(zap.New(core))

	ctx := NewContextWithUserID(NewContextWithID(context.Background(), "req"), "user")
	l.Log(ctx, pgx.LogLevelInfo, "Query", map[string]interface{}{"sql": "select 1"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.InfoLevel, entry.Level)
	fields := entry.ContextMap()
	require.Equal(t, "req", fields["request_id"])
	require.Equal(t, "user", fields["user_id"])
	require.Equal(t, "select 1", fields["sql"])
}

func TestLog_NoContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLogger(zap.New(core))

	l.Log(context.Background(), pgx.LogLevelError, "failed", nil)

	require.Equal(t, 1, logs.Len())
	require.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	require.Empty(t, logs.All()[0].ContextMap())
}
