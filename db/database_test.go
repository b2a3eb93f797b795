package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *GormDatabase) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return mock, &GormDatabase{DB: gdb}
}

func TestGormDatabase_Ping(t *testing.T) {
	mock, database := setupMockDB(t)

	mock.ExpectPing()
	require.NoError(t, database.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	require.Error(t, database.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDatabase_Transaction_Commit(t *testing.T) {
	mock, database := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := database.Transaction(context.Background(), func(tx *gorm.DB) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDatabase_Transaction_RollbackOnError(t *testing.T) {
	mock, database := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := database.Transaction(context.Background(), func(tx *gorm.DB) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDSN(t *testing.T) {
	t.Run("url without sslmode", func(t *testing.T) {
		t.Setenv("DB_URL", "postgres://u:p@db.example.com:5432/health")
		dsn, err := DSN()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@db.example.com:5432/health?sslmode=require", dsn)
	})

	t.Run("url with query", func(t *testing.T) {
		t.Setenv("DB_URL", "postgres://u:p@db.example.com/health?connect_timeout=5")
		dsn, err := DSN()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@db.example.com/health?connect_timeout=5&sslmode=require", dsn)
	})

	t.Run("local parameters", func(t *testing.T) {
		t.Setenv("DB_URL", "")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("DB_USER", "health")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "health")
		dsn, err := DSN()
		require.NoError(t, err)
		assert.Contains(t, dsn, "sslmode=disable")
		assert.Contains(t, dsn, "dbname=health")
	})

	t.Run("missing parameters", func(t *testing.T) {
		t.Setenv("DB_URL", "")
		t.Setenv("DB_HOST", "")
		_, err := DSN()
		require.Error(t, err)
	})
}
