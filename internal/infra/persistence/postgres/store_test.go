package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"carehome/internal/infra/persistence/bucket"
	"carehome/internal/infra/persistence/persistencetest"
	"carehome/pkg/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS state`).WillReturnResult(sqlmock.NewResult(0, 0))
	store, err := NewWithDB(context.Background(), db)
	require.NoError(t, err)
	return store, mock
}

func TestSaveSnapshotUpsertsEveryBucket(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectBegin()
	for _, name := range bucket.Names {
		mock.ExpectExec(`INSERT INTO state`).
			WithArgs(name, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, store.SaveSnapshot(context.Background(), persistencetest.Fixture()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshotRollsBackOnFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO state`).
		WithArgs(bucket.Meta, sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := store.SaveSnapshot(context.Background(), persistencetest.Fixture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert meta")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSnapshotDecodesBuckets(t *testing.T) {
	store, mock := setupMockStore(t)
	want := persistencetest.Fixture()
	payloads, err := bucket.Encode(want)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"bucket", "payload"})
	for _, p := range payloads {
		rows.AddRow(p.Name, p.Data)
	}
	mock.ExpectQuery(`SELECT bucket, payload FROM state`).WillReturnRows(rows)

	got, err := store.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want.Clone(), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSnapshotEmptyTable(t *testing.T) {
	store, mock := setupMockStore(t)
	mock.ExpectQuery(`SELECT bucket, payload FROM state`).
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "payload"}))

	_, err := store.LoadSnapshot(context.Background())
	assert.True(t, errors.Is(err, domain.ErrNoSnapshot))
}

func TestNewStoreUsesOverriddenOpen(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	mock.ExpectPing()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS state`).WillReturnResult(sqlmock.NewResult(0, 0))

	var gotDriver, gotDSN string
	restore := OverrideSQLOpen(func(driver, dsn string) (*sql.DB, error) {
		gotDriver, gotDSN = driver, dsn
		return db, nil
	})
	defer restore()

	store, err := NewStore(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "pgx", gotDriver)
	assert.Equal(t, defaultDSN, gotDSN)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStorePropagatesOpenError(t *testing.T) {
	restore := OverrideSQLOpen(func(string, string) (*sql.DB, error) {
		return nil, errors.New("boom")
	})
	defer restore()

	_, err := NewStore(context.Background(), "postgres://example")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open postgres")
}
