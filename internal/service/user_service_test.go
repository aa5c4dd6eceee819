package service

import (
	"testing"

	"go-sales-dashboard/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateThenGetByID(t *testing.T) {
	repo := newFakeUserRepo()
	pub := &recordingPublisher{}
	svc := NewUserService(repo, pub)

	created, err := svc.CreateUser(&CreateUserRequest{Name: "Siti", Email: "Siti@Example.com "})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Siti", got.Name)
	assert.Equal(t, "siti@example.com", got.Email)
	assert.Empty(t, got.Password)

	evs := pub.all()
	require.Len(t, evs, 1)
	assert.Equal(t, events.EventUserCreated, evs[0].eventType)
	assert.Equal(t, "1", evs[0].key)
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, nil)

	created, err := svc.CreateUser(&CreateUserRequest{Name: "Budi", Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)

	stored := repo.users[created.ID]
	assert.NotEqual(t, "rahasia123", stored.Password)
	assert.True(t, stored.CheckPassword("rahasia123"))
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)

	cases := []CreateUserRequest{
		{Name: "", Email: "a@b.co"},
		{Name: "A", Email: ""},
		{Name: "A", Email: "not-an-email"},
		{Name: "A", Email: "a@b.co", Password: "123"},
	}
	for _, req := range cases {
		req := req
		_, err := svc.CreateUser(&req)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, "request %+v", req)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, nil)

	_, err := svc.CreateUser(&CreateUserRequest{Name: "A", Email: "a@b.co"})
	require.NoError(t, err)

	_, err = svc.CreateUser(&CreateUserRequest{Name: "B", Email: "A@B.CO"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCreateUserDuplicateKeyFromStore(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = gorm.ErrDuplicatedKey
	svc := NewUserService(repo, nil)

	_, err := svc.CreateUser(&CreateUserRequest{Name: "A", Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCreateUserStoreFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failWith = errStore
	svc := NewUserService(repo, nil)

	_, err := svc.CreateUser(&CreateUserRequest{Name: "A", Email: "a@b.co"})
	assert.ErrorIs(t, err, errStore)
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)

	_, err := svc.GetUserByID(99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetAllUsers(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, nil)

	users, err := svc.GetAllUsers()
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	_, _ = svc.CreateUser(&CreateUserRequest{Name: "A", Email: "a@b.co"})
	_, _ = svc.CreateUser(&CreateUserRequest{Name: "B", Email: "b@b.co"})

	users, err = svc.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "A", users[0].Name)
	assert.Equal(t, "B", users[1].Name)
}
