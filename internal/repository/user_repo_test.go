package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUpdatePasswordUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "password"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("hashed", sqlmock.AnyArg(), 9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := NewUserRepo(db).UpdatePassword(9, "hashed")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByEmailMissing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	_, err := NewUserRepo(db).FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
