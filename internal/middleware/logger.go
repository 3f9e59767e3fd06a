package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/memtodo/internal/pkg/logger"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// LoggerConfig controls the request logger
type LoggerConfig struct {
	EnableColors    bool
	LogRequestBody  bool
	LogResponseBody bool  // error responses are always logged
	MaxBodySize     int64 // bytes
	SkipPaths       []string
	Logger          *logger.Logger
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		EnableColors:    true,
		LogRequestBody:  true,
		LogResponseBody: false,
		MaxBodySize:     2048,
		SkipPaths:       []string{"/health", "/metrics"},
		Logger:          logger.Default(),
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	out := config.Logger
	if out == nil {
		out = logger.Default()
	}
	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		method := c.Request.Method

		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				requestBody = "[body too large to log]"
			} else {
				bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
				if err == nil {
					c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
					requestBody = sanitizeBody(string(bodyBytes), c.GetHeader("Content-Type"))
				}
			}
		}

		writer := &limitedResponseWriter{
			ResponseWriter: c.Writer,
			maxSize:        config.MaxBodySize,
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		line := fmt.Sprintf("%s %s %s %v %s",
			colorize(config.EnableColors, getMethodColor(method), method),
			path,
			colorize(config.EnableColors, getStatusColor(status), fmt.Sprint(status)),
			time.Since(start),
			formatSize(writer.size))

		if requestBody != "" {
			line += " req=" + requestBody
		}
		if writer.body.Len() > 0 && (config.LogResponseBody || status >= 400) {
			line += " resp=" + truncateString(writer.body.String(), 500)
		}
		if q := c.Request.URL.RawQuery; q != "" {
			line += " query=" + truncateString(q, 100)
		}

		switch {
		case status >= 500:
			out.Error("%s", line)
		case status >= 400:
			out.Warn("%s", line)
		default:
			out.Info("%s", line)
		}
	}
}

// limitedResponseWriter keeps at most maxSize bytes of the response for logging
type limitedResponseWriter struct {
	gin.ResponseWriter
	body    bytes.Buffer
	size    int64
	maxSize int64
}

func (w *limitedResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	if w.size+int64(n) <= w.maxSize {
		w.body.Write(b[:n])
	}
	w.size += int64(n)
	return n, err
}

func colorize(enabled bool, color, s string) string {
	if !enabled {
		return s
	}
	return color + s + ColorReset
}

func formatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	} else if bytes < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
}

func getMethodColor(method string) string {
	switch method {
	case "GET":
		return ColorGreen
	case "POST":
		return ColorBlue
	case "PUT":
		return ColorYellow
	case "DELETE":
		return ColorRed
	default:
		return ColorWhite
	}
}

func getStatusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ColorGreen
	case status >= 300 && status < 400:
		return ColorCyan
	case status >= 400 && status < 500:
		return ColorYellow
	case status >= 500:
		return ColorRed
	default:
		return ColorWhite
	}
}

func sanitizeBody(body, contentType string) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 1024 {
		return "[body too large to log]"
	}

	if strings.Contains(contentType, "application/json") {
		var jsonData interface{}
		if json.Unmarshal([]byte(body), &jsonData) == nil {
			if formatted, err := json.Marshal(hideSensitiveFields(jsonData)); err == nil {
				return string(formatted)
			}
		}
	}

	return truncateString(body, 200)
}

func hideSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitiveField(strings.ToLower(key)) {
				result[key] = "********"
			} else {
				result[key] = hideSensitiveFields(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item)
		}
		return result
	default:
		return v
	}
}

func isSensitiveField(field string) bool {
	for _, s := range []string{"password", "token", "secret", "key", "auth", "credential"} {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
