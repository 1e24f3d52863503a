package users_services

import (
	"fmt"
	"testing"

	users_dto "planboard-backend/internal/features/users/dto"
	"planboard-backend/internal/util/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniqueEmail() string {
	return fmt.Sprintf("auth-%s@example.com", uuid.New().String()[:8])
}

func Test_SignUp_DuplicateEmailReturnsConflict(t *testing.T) {
	service := GetUserService()
	email := uniqueEmail()

	require.NoError(t, service.SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Name:     "First",
		Password: "password-123",
	}))

	err := service.SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Name:     "Second",
		Password: "password-456",
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func Test_SignIn_ReturnsTokenForValidCredentials(t *testing.T) {
	service := GetUserService()
	email := uniqueEmail()

	require.NoError(t, service.SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Name:     "Valid User",
		Password: "password-123",
	}))

	response, err := service.SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "password-123",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, response.UserID)
	assert.NotEmpty(t, response.Token)

	user, err := service.GetUserFromToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, response.UserID, user.ID)
	assert.Equal(t, email, user.Email)
}

func Test_SignIn_WrongPasswordReturnsUnauthorized(t *testing.T) {
	service := GetUserService()
	email := uniqueEmail()

	require.NoError(t, service.SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Name:     "Victim",
		Password: "password-123",
	}))

	_, err := service.SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func Test_SignIn_UnknownEmailReturnsUnauthorized(t *testing.T) {
	service := GetUserService()

	_, err := service.SignIn(&users_dto.SignInRequestDTO{
		Email:    uniqueEmail(),
		Password: "whatever-123",
	})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func Test_GetUserFromToken_GarbageTokenRejected(t *testing.T) {
	service := GetUserService()

	_, err := service.GetUserFromToken("not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
