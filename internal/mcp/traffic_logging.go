package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// trafficLoggingMiddleware logs every request/response pair crossing the
// server, gated on debug level so production traffic stays quiet. Request
// accessors are panic-safe: the SDK may hand over partially-populated
// requests during session setup.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			sessionID, params := inspectRequest(req)
			log := logger.With("direction", direction, "method", method, "session_id", sessionID)
			log.Debug("mcp traffic", "stage", "request", "params", formatPayload(params))

			result, err := next(ctx, method, req)

			// Notifications are one-way; there is no response to log.
			if !strings.HasPrefix(method, "notifications/") {
				attrs := []any{"stage", "response", "result", formatPayload(result)}
				if err != nil {
					attrs = append(attrs, "error", err)
				}
				log.Debug("mcp traffic", attrs...)
			}

			return result, err
		}
	}
}

func inspectRequest(req sdkmcp.Request) (sessionID string, params any) {
	if req == nil {
		return "", nil
	}
	defer func() { recover() }()
	params = req.GetParams()
	if session := req.GetSession(); session != nil {
		sessionID = session.ID()
	}
	return sessionID, params
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
