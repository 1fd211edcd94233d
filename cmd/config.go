package cmd

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	DatabaseURL              string
	EvaluationReportSchedule string
}

// DSN returns the connection string handed to gorm. DatabaseURL wins over the
// discrete DB_* settings and is converted to key/value form with pq.ParseURL.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}

	parts := []string{
		"host=" + c.DBHost,
		"port=" + c.DBPort,
		"user=" + c.DBUser,
		"password=" + c.DBPassword,
		"dbname=" + c.DBName,
		"sslmode=" + sslMode,
	}
	return strings.Join(parts, " "), nil
}
