package users_testing

import (
	"fmt"

	users_dto "planboard-backend/internal/features/users/dto"
	users_enums "planboard-backend/internal/features/users/enums"
	users_models "planboard-backend/internal/features/users/models"
	users_repositories "planboard-backend/internal/features/users/repositories"
	users_services "planboard-backend/internal/features/users/services"

	"github.com/google/uuid"
)

type TestUser struct {
	User  *users_models.User
	Email string
	Token string
}

// CreateTestUser registers a fresh user through the service layer and
// returns it together with a valid access token.
func CreateTestUser(role users_enums.UserRole) *TestUser {
	userService := users_services.GetUserService()
	userRepository := users_repositories.GetUserRepository()

	email := fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])

	err := userService.SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Name:     "Test User",
		Password: "test-password-123",
	})
	if err != nil {
		panic(err)
	}

	user, err := userRepository.GetUserByEmail(email)
	if err != nil {
		panic(err)
	}

	if role != users_enums.UserRoleMember {
		user.Role = role
		if err := userRepository.UpdateUser(user); err != nil {
			panic(err)
		}
	}

	signIn, err := userService.SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "test-password-123",
	})
	if err != nil {
		panic(err)
	}

	return &TestUser{
		User:  user,
		Email: email,
		Token: signIn.Token,
	}
}
