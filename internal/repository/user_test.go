package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		email        string
		mockBehavior func(mock sqlmock.Sqlmock)
		wantUser     bool
		wantErr      bool
	}{
		{
			name:  "Success",
			email: "alice@example.com",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "username", "email"}).
					AddRow("2c4b6e58-0000-4000-8000-000000000001", "alice", "alice@example.com")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs("alice@example.com", 1).
					WillReturnRows(rows)
			},
			wantUser: true,
		},
		{
			name:  "Absent returns nil, nil",
			email: "nobody@example.com",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs("nobody@example.com", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
		},
		{
			name:  "Storage failure",
			email: "alice@example.com",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs("alice@example.com", 1).
					WillReturnError(errors.New("connection timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewUserRepository(db)
			tt.mockBehavior(mock)

			user, err := repo.GetByEmail(ctx, tt.email)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantUser {
				if assert.NotNil(t, user) {
					assert.Equal(t, "alice", user.Username)
				}
			} else {
				assert.Nil(t, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	id := "2c4b6e58-0000-4000-8000-000000000001"
	rows := sqlmock.NewRows([]string{"id", "username", "email"}).
		AddRow(id, "alice", "alice@example.com")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1 ORDER BY "users"."id" LIMIT $2`)).
		WithArgs(id, 1).
		WillReturnRows(rows)

	user, err := repo.GetByID(ctx, id)
	assert.NoError(t, err)
	if assert.NotNil(t, user) {
		assert.Equal(t, id, user.ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername_Absent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1 ORDER BY "users"."id" LIMIT $2`)).
		WithArgs("ghost", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	user, err := repo.GetByUsername(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
