package app

import (
	"net/url"
	"strings"

	"github.com/riskibarqy/draft-prospects/internal/config"
)

// storeLabel names the store for logs without leaking postgres credentials.
func storeLabel(db config.DBConfig) string {
	if db.Driver == config.DriverPostgres {
		return dbNameFromURL(db.URL)
	}
	return db.Path
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
