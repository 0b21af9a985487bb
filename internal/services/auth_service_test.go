package services_test

import (
	"encoding/hex"
	"log"
	"os"
	"testing"

	"diario/internal/models"
	"diario/internal/repositories"
	"diario/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockSessionRepository is a mock implementation of repositories.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *models.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindUserByToken(token string) (*models.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockSessionRepository) DeleteByToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockUsers, mockSessions)

	// Successful registration stores a bcrypt digest, never the plaintext
	mockUsers.On("GetByUsername", "ana").Return(nil, repositories.ErrNotFound).Once()
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created := args.Get(0).(*models.User)
		assert.Equal(t, "ana", created.Username)
		assert.NotEqual(t, "1234", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("1234")))
	}).Return(nil).Once()

	err := authService.RegisterUser("ana", "1234")
	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)

	// Username already taken
	mockUsers.On("GetByUsername", "ana").Return(&models.User{ID: 1, Username: "ana"}, nil).Once()
	err = authService.RegisterUser("ana", "1234")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	mockUsers.AssertExpectations(t)

	// Validation failures never touch the store
	err = authService.RegisterUser("", "1234")
	assert.ErrorIs(t, err, services.ErrValidation)

	err = authService.RegisterUser("ab", "1234")
	assert.ErrorIs(t, err, services.ErrValidation)

	err = authService.RegisterUser("ana", "123")
	assert.ErrorIs(t, err, services.ErrValidation)

	// Whitespace-only credentials are empty after trimming
	err = authService.RegisterUser("   ", "    ")
	assert.ErrorIs(t, err, services.ErrValidation)

	// Only the one successful registration reached the store
	mockUsers.AssertNumberOfCalls(t, "Create", 1)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockUsers, mockSessions)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       7,
		Username: "ana",
		Password: string(hashedPassword),
	}

	// Successful login mints a 64-char hex token and persists the session
	var persisted *models.Session
	mockUsers.On("GetByUsername", "ana").Return(user, nil).Once()
	mockSessions.On("Create", mock.AnythingOfType("*models.Session")).Run(func(args mock.Arguments) {
		persisted = args.Get(0).(*models.Session)
	}).Return(nil).Once()

	token, loggedIn, err := authService.LoginUser("ana", "1234")
	assert.NoError(t, err)
	assert.Len(t, token, 64)
	_, err = hex.DecodeString(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotNil(t, persisted)
	assert.Equal(t, token, persisted.Token)
	assert.Equal(t, user.ID, persisted.UserID)
	mockUsers.AssertExpectations(t)
	mockSessions.AssertExpectations(t)

	// Wrong password: generic invalid-credentials error
	mockUsers.On("GetByUsername", "ana").Return(user, nil).Once()
	_, _, err = authService.LoginUser("ana", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown user: same generic error, not a not-found
	mockUsers.On("GetByUsername", "nobody").Return(nil, repositories.ErrNotFound).Once()
	_, _, err = authService.LoginUser("nobody", "1234")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockUsers.AssertExpectations(t)

	// No session is persisted on a failed login
	mockSessions.AssertNumberOfCalls(t, "Create", 1)
}

func TestAuthService_Logout(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockUsers, mockSessions)

	// Logout deletes the session row; deleting an unknown token is not an
	// error at the repository, so logging out twice succeeds twice.
	mockSessions.On("DeleteByToken", "sometoken").Return(nil).Twice()
	assert.NoError(t, authService.Logout("sometoken"))
	assert.NoError(t, authService.Logout("sometoken"))
	mockSessions.AssertExpectations(t)

	// An absent token is a no-op
	assert.NoError(t, authService.Logout(""))
	mockSessions.AssertNumberOfCalls(t, "DeleteByToken", 2)
}

func TestAuthService_UserFromToken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	authService := services.NewAuthService(mockUsers, mockSessions)

	user := &models.User{ID: 7, Username: "ana"}

	mockSessions.On("FindUserByToken", "goodtoken").Return(user, nil).Once()
	resolved, err := authService.UserFromToken("goodtoken")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	// Unknown token resolves to no identity, not an error
	mockSessions.On("FindUserByToken", "badtoken").Return(nil, repositories.ErrNotFound).Once()
	resolved, err = authService.UserFromToken("badtoken")
	assert.NoError(t, err)
	assert.Nil(t, resolved)

	// Empty token never hits the store
	resolved, err = authService.UserFromToken("")
	assert.NoError(t, err)
	assert.Nil(t, resolved)
	mockSessions.AssertExpectations(t)
}
