package utils

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm/logger"
)

// QuietGormLogger wraps a GORM logger and drops trace lines for queries
// matching any of the given substrings. The reminder sweep repeats the
// same handful of SELECTs every minute, which would otherwise dominate
// the SQL log. Slow queries are still traced even when they match, so a
// degraded sweep query stays visible.
type QuietGormLogger struct {
	logger.Interface
	quietPatterns []string
	slowThreshold time.Duration
}

// NewQuietGormLogger creates a logger that suppresses traces for queries
// containing any of the given patterns.
func NewQuietGormLogger(l logger.Interface, patterns ...string) *QuietGormLogger {
	return &QuietGormLogger{
		Interface:     l,
		quietPatterns: patterns,
		slowThreshold: time.Second,
	}
}

// LogMode implements logger.Interface
func (l *QuietGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &QuietGormLogger{
		Interface:     l.Interface.LogMode(level),
		quietPatterns: l.quietPatterns,
		slowThreshold: l.slowThreshold,
	}
}

// Trace implements logger.Interface
func (l *QuietGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if err == nil && time.Since(begin) < l.slowThreshold {
		sql, _ := fc()
		for _, pattern := range l.quietPatterns {
			if strings.Contains(sql, pattern) {
				return
			}
		}
	}
	l.Interface.Trace(ctx, begin, fc, err)
}
