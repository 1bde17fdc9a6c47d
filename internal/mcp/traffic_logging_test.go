package mcp

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestTrafficLoggingMiddleware_LogsRequestAndResponse(t *testing.T) {
	var buf bytes.Buffer

	handler := trafficLoggingMiddleware(debugLogger(&buf), "inbound")(
		func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			return &sdkmcp.CallToolResult{}, nil
		},
	)

	_, err := handler(context.Background(), "tools/call", nil)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "mcp traffic")
	require.Contains(t, out, "stage=request")
	require.Contains(t, out, "stage=response")
	require.Contains(t, out, "direction=inbound")
	require.Contains(t, out, "method=tools/call")
}

func TestTrafficLoggingMiddleware_LogsHandlerError(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")

	handler := trafficLoggingMiddleware(debugLogger(&buf), "inbound")(
		func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			return nil, boom
		},
	)

	_, err := handler(context.Background(), "tools/call", nil)
	require.ErrorIs(t, err, boom)
	require.Contains(t, buf.String(), "error=boom")
}

func TestTrafficLoggingMiddleware_SkipsNotificationResponses(t *testing.T) {
	var buf bytes.Buffer

	handler := trafficLoggingMiddleware(debugLogger(&buf), "outbound")(
		func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			return nil, nil
		},
	)

	_, err := handler(context.Background(), "notifications/initialized", nil)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "stage=request")
	require.NotContains(t, out, "stage=response")
}

func TestTrafficLoggingMiddleware_QuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := trafficLoggingMiddleware(logger, "inbound")(
		func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			return &sdkmcp.CallToolResult{}, nil
		},
	)

	_, err := handler(context.Background(), "tools/call", nil)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
