// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/artstone/artstone-backend/internal/models"
	"github.com/artstone/artstone-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	utils.SetJWTSecret("test-secret")
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewAuthService(suite.db, testConfig())
}

func (suite *AuthServiceTestSuite) register(email string) *models.User {
	resp, err := suite.service.Register(&RegisterRequest{
		Name:     "Test Editor",
		Email:    email,
		Password: "password123",
	})
	suite.Require().NoError(err)
	return resp.User
}

func (suite *AuthServiceTestSuite) TestRegisterDefaultsToEditor() {
	user := suite.register("editor@example.com")
	suite.Equal(models.UserRoleEditor, user.Role)
	suite.True(user.IsActive)
	suite.NotEmpty(user.PasswordHash)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsDuplicateEmail() {
	suite.register("editor@example.com")

	_, err := suite.service.Register(&RegisterRequest{
		Name:     "Second",
		Email:    "editor@example.com",
		Password: "password123",
	})
	suite.ErrorIs(err, ErrEmailTaken)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsShortPassword() {
	_, err := suite.service.Register(&RegisterRequest{
		Name:     "Test",
		Email:    "short@example.com",
		Password: "short",
	})
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestLoginReturnsToken() {
	suite.register("editor@example.com")

	resp, err := suite.service.Login(&LoginRequest{
		Email:    "editor@example.com",
		Password: "password123",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal("Bearer", resp.TokenType)
	suite.NotNil(resp.User.LastLoginAt)
}

func (suite *AuthServiceTestSuite) TestLoginFailuresAreIndistinguishable() {
	suite.register("editor@example.com")

	_, unknownErr := suite.service.Login(&LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	_, wrongErr := suite.service.Login(&LoginRequest{
		Email:    "editor@example.com",
		Password: "wrong-password",
	})

	suite.ErrorIs(unknownErr, ErrInvalidCredentials)
	suite.ErrorIs(wrongErr, ErrInvalidCredentials)
	suite.Equal(unknownErr.Error(), wrongErr.Error())
}

func (suite *AuthServiceTestSuite) TestLoginRejectsDeactivatedUser() {
	user := suite.register("editor@example.com")
	suite.Require().NoError(suite.db.Model(&models.User{}).
		Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err := suite.service.Login(&LoginRequest{
		Email:    "editor@example.com",
		Password: "password123",
	})
	suite.ErrorIs(err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestChangePassword() {
	user := suite.register("editor@example.com")

	err := suite.service.ChangePassword(user.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "newpassword123",
	})
	suite.ErrorIs(err, ErrWrongPassword)

	err = suite.service.ChangePassword(user.ID, &ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword123",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Login(&LoginRequest{
		Email:    "editor@example.com",
		Password: "newpassword123",
	})
	suite.NoError(err)
}

func (suite *AuthServiceTestSuite) TestUpdateProfileEmailConflict() {
	suite.register("editor@example.com")
	second := suite.register("other@example.com")

	_, err := suite.service.UpdateProfile(second.ID, &UpdateProfileRequest{
		Email: "editor@example.com",
	})
	suite.ErrorIs(err, ErrEmailTaken)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
