// internal/config/database.go
package config

import (
	"fmt"
	"strings"
)

// DSN returns the connection string for the configured driver. For sqlite the
// database name is used as the file path.
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	if d.Driver == "sqlite" {
		separator := "?"
		if strings.Contains(d.Database, "?") {
			separator = "&"
		}
		return d.Database + separator + "_foreign_keys=on"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}
