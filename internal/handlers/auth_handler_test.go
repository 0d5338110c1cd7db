package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/services"
	"lifehub/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = newTestEcho()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) TestRegister_Success() {
	user := &models.User{
		ID:        uuid.New(),
		Username:  "hanako",
		Email:     "hanako@example.com",
		Role:      models.RoleMember,
		CreatedAt: time.Now(),
	}
	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(req *dto.RegisterRequest, ip, ua string) (*models.User, error) {
			s.Equal("hanako", req.Username)
			return user, nil
		})

	c, rec := authedContext(s.e, newRequest(http.MethodPost, "/auth/register", map[string]string{
		"username": "hanako",
		"email":    "hanako@example.com",
		"password": "password123",
	}), uuid.Nil)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)

	var data dto.UserResponse
	s.Require().NoError(decodeData(rec, &data))
	s.Equal("hanako", data.Username)
	s.Equal(user.ID.String(), data.ID)
}

func (s *AuthHandlerSuite) TestRegister_Errors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate user", services.ErrUserAlreadyExists, http.StatusConflict, "AUTH_007"},
		{"weak password", fmt.Errorf("password validation failed: %w", services.ErrPasswordNoNumber), http.StatusBadRequest, "VALIDATION_001"},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.authService.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := authedContext(s.e, newRequest(http.MethodPost, "/auth/register", map[string]string{
				"username": "taro",
				"email":    "taro@example.com",
				"password": "password",
			}), uuid.Nil)

			s.NoError(s.handler.Register(c))
			s.Equal(tt.wantStatus, rec.Code)
			s.Equal(tt.wantCode, decodeError(rec).Error.Code)
		})
	}
}

func (s *AuthHandlerSuite) TestRegister_InvalidBody() {
	c, rec := authedContext(s.e, newRequest(http.MethodPost, "/auth/register", "invalid json"), uuid.Nil)

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", decodeError(rec).Error.Code)
}

func (s *AuthHandlerSuite) TestRegister_ValidationErrorIsReturned() {
	c, _ := authedContext(s.e, newRequest(http.MethodPost, "/auth/register", map[string]string{
		"username": "no spaces allowed",
		"email":    "taro@example.com",
		"password": "password123",
	}), uuid.Nil)

	s.Error(s.handler.Register(c))
}

func (s *AuthHandlerSuite) TestLogin() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		{"account locked", services.ErrAccountLocked, http.StatusForbidden, "AUTH_006"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.authService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := authedContext(s.e, newRequest(http.MethodPost, "/auth/login", map[string]string{
				"email":    "taro@example.com",
				"password": "wrong",
			}), uuid.Nil)

			s.NoError(s.handler.Login(c))
			s.Equal(tt.wantStatus, rec.Code)
			s.Equal(tt.wantCode, decodeError(rec).Error.Code)
		})
	}

	s.Run("success", func() {
		s.authService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&dto.TokenResponse{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"}, nil)

		c, rec := authedContext(s.e, newRequest(http.MethodPost, "/auth/login", map[string]string{
			"email":    "taro@example.com",
			"password": "password123",
		}), uuid.Nil)

		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusOK, rec.Code)

		var tokens map[string]interface{}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &tokens))
		s.Equal("Bearer", tokens["tokenType"])
		s.Equal("a", tokens["accessToken"])
	})
}

func (s *AuthHandlerSuite) TestRefreshToken() {
	s.Run("rotates tokens", func() {
		s.authService.EXPECT().
			RefreshTokens("valid.refresh", gomock.Any(), gomock.Any()).
			Return(&dto.TokenResponse{AccessToken: "new", RefreshToken: "newer"}, nil)

		c, rec := authedContext(s.e, newRequest(http.MethodPost, "/auth/refresh", map[string]string{
			"refreshToken": "valid.refresh",
		}), uuid.Nil)

		s.NoError(s.handler.RefreshToken(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("rejected token", func() {
		s.authService.EXPECT().
			RefreshTokens(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidRefreshToken)

		c, rec := authedContext(s.e, newRequest(http.MethodPost, "/auth/refresh", map[string]string{
			"refreshToken": "stale",
		}), uuid.Nil)

		s.NoError(s.handler.RefreshToken(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_004", decodeError(rec).Error.Code)
	})
}

func (s *AuthHandlerSuite) TestLogout() {
	s.Run("missing header", func() {
		c, rec := authedContext(s.e, newRequest(http.MethodPost, "/auth/logout", nil), uuid.Nil)

		s.NoError(s.handler.Logout(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_002", decodeError(rec).Error.Code)
	})

	s.Run("malformed header", func() {
		req := newRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("Authorization", "Token abc")
		c, rec := authedContext(s.e, req, uuid.Nil)

		s.NoError(s.handler.Logout(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_004", decodeError(rec).Error.Code)
	})

	s.Run("succeeds even when the service fails", func() {
		s.authService.EXPECT().Logout("abc", gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		req := newRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer abc")
		c, rec := authedContext(s.e, req, uuid.Nil)

		s.NoError(s.handler.Logout(c))
		s.Equal(http.StatusOK, rec.Code)
	})
}
