package service

import (
	"os"
	"strings"
	"testing"

	"userdash/database"

	"github.com/stretchr/testify/assert"
)

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestRegisterAndAuthenticate(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	user, err := service.Register("alice", "Passw0rd!", "Alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "Passw0rd!")

	loggedIn, err := service.Authenticate("alice", "Passw0rd!")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, loggedIn.Id)
}

func TestRegisterMissingField(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	cases := [][3]string{
		{"", "Passw0rd!", "Alice"},
		{"alice", "", "Alice"},
		{"alice", "Passw0rd!", ""},
	}
	for _, c := range cases {
		_, err := service.Register(c[0], c[1], c[2])
		assert.ErrorIs(t, err, ErrMissingField)
	}

	count, err := service.CountUsers()
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	_, err := service.Register("alice", "Passw0rd!", "Alice")
	assert.NoError(t, err)

	_, err = service.Register("alice", "0therPass!", "Alice Again")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	count, err := service.CountUsers()
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRegisterWeakPassword(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	_, err := service.Register("alice", "abc12345", "Alice")
	assert.ErrorIs(t, err, ErrWeakPassword)

	user, err := service.GetUser("alice")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthenticateEnumerationResistance(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	_, err := service.Register("alice", "Passw0rd!", "Alice")
	assert.NoError(t, err)

	_, wrongPass := service.Authenticate("alice", "WrongPass1!")
	_, unknownUser := service.Authenticate("nobody", "Passw0rd!")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	// Same message for both failure modes
	assert.Equal(t, wrongPass.Error(), unknownUser.Error())
}

func TestAuthenticateCorruptHash(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	user, err := service.Register("alice", "Passw0rd!", "Alice")
	assert.NoError(t, err)

	// Corrupt the stored hash; verification errors must still surface as
	// invalid credentials.
	err = database.GetDB().Model(user).Update("password_hash", "not-a-phc-string").Error
	assert.NoError(t, err)

	_, err = service.Authenticate("alice", "Passw0rd!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterHashesAreSalted(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	first, err := service.Register("alice", "Passw0rd!", "Alice")
	assert.NoError(t, err)
	second, err := service.Register("bob", "Passw0rd!", "Bob")
	assert.NoError(t, err)

	assert.NotEqual(t, first.PasswordHash, second.PasswordHash)
	assert.True(t, strings.HasPrefix(first.PasswordHash, "$argon2id$"))
}
