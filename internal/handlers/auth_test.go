package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adaskevich/tasktracker/internal/constants"
	"github.com/adaskevich/tasktracker/internal/database"
	"github.com/adaskevich/tasktracker/internal/dto"
	"github.com/adaskevich/tasktracker/internal/middleware"
	"github.com/adaskevich/tasktracker/internal/models"
	"github.com/adaskevich/tasktracker/internal/repository"
	"github.com/adaskevich/tasktracker/internal/services"
)

// AuthHandlerTestSuite exercises the login and user routes.
type AuthHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *AuthHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.TaskStatus{},
		&models.TaskPriority{},
		&models.Task{},
		&models.TaskPerformer{},
	)
	suite.Require().NoError(err)

	suite.Require().NoError(database.Seed(suite.db))
	database.SetDB(suite.db)

	authService := services.NewAuthService(
		repository.NewUserRepository(suite.db),
		repository.NewRoleRepository(suite.db),
		constants.RoleNames,
		testJWTSecret,
		15*time.Minute,
	)
	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(authService)

	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	suite.router.POST("/auth/jwt/login", authHandler.Login)
	suite.router.POST("/user/register", userHandler.Register)
	suite.router.GET("/user/details", middleware.RequireAuth(testJWTSecret), userHandler.Details)
}

// TearDownTest runs after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthHandlerTestSuite) post(url string, payload interface{}) *httptest.ResponseRecorder {
	raw, err := json.Marshal(payload)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) register(login, email, role string) *httptest.ResponseRecorder {
	return suite.post("/user/register", gin.H{
		"login":    login,
		"email":    email,
		"password": "correct horse",
		"role":     role,
	})
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	w := suite.register("alice", "alice@example.com", "Developer")

	suite.Equal(http.StatusCreated, w.Code)

	var user dto.UserDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))
	suite.Equal("alice", user.Login)
	suite.Require().NotNil(user.Role)
	suite.Equal(constants.RoleDeveloper, user.Role.Position)

	// Password never leaks into the response
	suite.NotContains(w.Body.String(), "password")
	suite.NotContains(w.Body.String(), "correct horse")
}

func (suite *AuthHandlerTestSuite) TestRegister_ShortPassword() {
	w := suite.post("/user/register", gin.H{
		"login":    "alice",
		"email":    "alice@example.com",
		"password": "short",
		"role":     "Developer",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestRegister_UnknownRole() {
	w := suite.register("alice", "alice@example.com", "Intern")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(),
		"Role permission must be one of: «Owner», «Admin», «Project Manager», «Developer»")
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateConflict() {
	suite.register("alice", "alice@example.com", "Developer")

	w := suite.register("alice", "other@example.com", "Developer")

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(),
		"User with the same login or email already exists. Please, choose another one")
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	suite.register("alice", "alice@example.com", "Developer")

	w := suite.post("/auth/jwt/login", gin.H{
		"username": "alice",
		"password": "correct horse",
	})

	suite.Equal(http.StatusOK, w.Code)

	var token dto.TokenDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &token))
	suite.NotEmpty(token.AccessToken)
	suite.Equal("Bearer", token.TokenType)
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	suite.register("alice", "alice@example.com", "Developer")

	w := suite.post("/auth/jwt/login", gin.H{
		"username": "alice",
		"password": "wrong password",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid login or password")
}

func (suite *AuthHandlerTestSuite) TestDetails_ReturnsAuthenticatedUser() {
	suite.register("alice", "alice@example.com", "Project Manager")

	w := suite.post("/auth/jwt/login", gin.H{
		"username": "alice",
		"password": "correct horse",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var token dto.TokenDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &token))

	req := httptest.NewRequest(http.MethodGet, "/user/details", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var user dto.UserDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))
	suite.Equal("alice", user.Login)
	suite.Equal("alice@example.com", user.Email)
	suite.Require().NotNil(user.Role)
	suite.Equal(constants.RoleProjectManager, user.Role.Position)
}

func (suite *AuthHandlerTestSuite) TestDetails_RequiresToken() {
	req := httptest.NewRequest(http.MethodGet, "/user/details", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
