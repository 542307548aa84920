package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"ideagen/internal/config"
	"ideagen/internal/handler"
	"ideagen/internal/models"
	"ideagen/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:             "test-secret-key",
		ServerPort:               5000,
		TokenDuration:            time.Hour,
		OwnershipForbiddenStatus: http.StatusUnauthorized,
	}
}

func createTestHandler(authService *MockAuthService, ideaService *MockIdeaService) *handlers.Handlers {
	return &handlers.Handlers{
		AuthService: authService,
		IdeaService: ideaService,
		Generator:   &service.TemplateGenerator{},
		StatusRepo:  &MockStatusRepo{},
		Cfg:         testConfig(),
		Validate:    validator.New(),
		Logger:      zap.NewNop(),
	}
}

func testUser() *models.User {
	return &models.User{
		UserID:    "user-1",
		Name:      "Ana",
		Email:     "ana@x.com",
		CreatedAt: time.Now(),
	}
}

// authedRequest attaches a resolved user the way the auth middleware
// does.
func authedRequest(req *http.Request, user *models.User) *http.Request {
	return req.WithContext(handlers.WithUser(req.Context(), user))
}

// assertJSONMsg checks a {"msg": ...} response
func assertJSONMsg(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, expectedMsg, response["msg"])
}
