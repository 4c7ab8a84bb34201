package repository

import (
	"testing"

	"streamalerts/repository/testutil"
)

func TestSQLiteAlertRepository(t *testing.T) {
	db := testutil.SetupSQLiteDatabase(t)

	runAlertRepositoryTests(t, NewSQLiteAlertRepository(db))
}
