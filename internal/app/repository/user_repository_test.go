package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
)

const initUserDB = `
CREATE TABLE IF NOT EXISTS users
(
    uuid VARCHAR PRIMARY KEY,
    email VARCHAR NOT NULL UNIQUE,
    password_hash VARCHAR NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func setupInMemoryUserDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", "file:userdb?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	_, err = db.Exec(`DROP TABLE IF EXISTS users;`)
	if err != nil {
		t.Fatalf("could not reset user table: %v", err)
	}
	_, err = db.Exec(initUserDB)
	if err != nil {
		t.Fatalf("could not create user table: %v", err)
	}
	return db
}

func TestUserRepositoryImpl_Create(t *testing.T) {
	db := setupInMemoryUserDB(t)
	defer db.Close()
	repo := NewUserRepository(db)

	user := &models.User{
		UUID:         uuid.New(),
		Email:        "student@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}

	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tx, user))
	require.NoError(t, tx.Commit())

	var count int
	err = db.Get(&count, "SELECT COUNT(*) FROM users WHERE email = $1", user.Email)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "User should be inserted")

	// A second user with the same email violates the unique constraint.
	tx, err = db.Beginx()
	require.NoError(t, err)
	duplicate := &models.User{
		UUID:         uuid.New(),
		Email:        user.Email,
		PasswordHash: "other",
		CreatedAt:    time.Now(),
	}
	err = repo.Create(context.Background(), tx, duplicate)
	assert.Error(t, err, "Duplicate email should be rejected")
	require.NoError(t, tx.Rollback())
}

func TestUserRepositoryImpl_FindByEmail(t *testing.T) {
	db := setupInMemoryUserDB(t)
	defer db.Close()
	repo := NewUserRepository(db)

	user := &models.User{
		UUID:         uuid.New(),
		Email:        "student@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tx, user))
	require.NoError(t, tx.Commit())

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "Existing User",
			email:   "student@example.com",
			wantErr: false,
		},
		{
			name:    "Unknown User",
			email:   "nobody@example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.wantErr {
				assert.Error(t, err, "FindByEmail should fail")
			} else {
				assert.NoError(t, err, "FindByEmail should not fail")
				assert.Equal(t, user.UUID, got.UUID, "Unexpected user")
				assert.Equal(t, user.PasswordHash, got.PasswordHash, "Unexpected password hash")
			}
		})
	}
}
