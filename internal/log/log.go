// Package log emits structured, action-keyed log entries. Output goes through
// log/slog: a tinted console handler for local development, JSON otherwise,
// optionally teed into a log file.
package log

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lmittmann/tint"
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Setup replaces the package logger. pretty selects the tint console handler;
// file, when non-empty, receives a copy of every entry.
func Setup(pretty bool, file string) {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			logger.Warn("log file open failed", "file", file, "err", err)
		} else {
			w = io.MultiWriter(os.Stdout, f)
		}
	}
	if pretty {
		logger = slog.New(tint.NewHandler(w, &tint.Options{TimeFormat: time.Kitchen}))
	} else {
		logger = slog.New(slog.NewJSONHandler(w, nil))
	}
}

func attrs(c *fiber.Ctx, fields map[string]any) []any {
	out := []any{}
	if c != nil {
		out = append(out, "ip", c.IP(), "method", c.Method(), "path", c.Path())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			out = append(out, "req_id", rid)
		}
	}
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	logger.Info(action, attrs(c, fields)...)
}

// Audit marks state-changing admin actions.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	logger.Info(action, append(attrs(c, fields), "audit", true)...)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	logger.Warn(action, attrs(c, fields)...)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	logger.Error(action, append(attrs(c, fields), "err", err)...)
}
