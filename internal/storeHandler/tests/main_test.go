package tests

import (
	"os"
	"testing"

	config "storelink/config/database"
)

func TestMain(m *testing.M) {
	if os.Getenv("DATABASE_URL") != "" {
		config.InitDB()
		config.MigrateData()
		defer config.CloseDB()
	}
	m.Run()
}

// requireDB skips DB-backed tests when no database is configured.
func requireDB(t *testing.T) {
	t.Helper()
	if config.Pool == nil {
		t.Skip("DATABASE_URL not set")
	}
}
