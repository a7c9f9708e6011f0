package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_WriteCommit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := New(db)
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)DELETE FROM budgets`).
		WithArgs(userID, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	writer, err := s.Write(context.Background())
	require.NoError(t, err)
	require.NoError(t, writer.Budgets.Delete(context.Background(), userID, id))
	require.NoError(t, writer.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_WriteRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	writer, err := New(db).Write(context.Background())
	require.NoError(t, err)
	require.NoError(t, writer.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	assert.NoError(t, New(db).Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
