package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		approval_status TEXT NOT NULL,
		account_status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createFarmerProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE farmer_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		business_name TEXT NOT NULL,
		tax_number TEXT UNIQUE NOT NULL,
		city TEXT NOT NULL,
		district TEXT NOT NULL,
		address TEXT,
		phone TEXT,
		approval_status TEXT NOT NULL,
		reviewed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCompanyProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE company_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		business_name TEXT NOT NULL,
		tax_number TEXT UNIQUE NOT NULL,
		city TEXT NOT NULL,
		district TEXT NOT NULL,
		address TEXT,
		phone TEXT,
		approval_status TEXT NOT NULL,
		reviewed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		farmer_profile_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		price REAL NOT NULL,
		unit TEXT NOT NULL,
		image_ref TEXT,
		approval_status TEXT NOT NULL,
		approval_date DATETIME,
		rejection_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createDecisionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE decisions (
		id TEXT PRIMARY KEY,
		target_type TEXT NOT NULL,
		target_id TEXT NOT NULL,
		outcome TEXT NOT NULL,
		reason TEXT,
		actor_id TEXT NOT NULL,
		created_at DATETIME
	);`)
}
