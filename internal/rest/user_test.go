package rest_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/domain/mocks"
	"github.com/Guyuepp/blog-discussion/internal/rest"
)

func userRouter(svc domain.UserUsecase) *gin.Engine {
	h := rest.NewUserHandler(svc)
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r
}

func TestRegister(t *testing.T) {
	svc := mocks.NewUserUsecase(t)
	svc.On("Register", mock.Anything, "Ana", "ana@example.com", "secret1").
		Return(domain.User{ID: "u-1", Name: "Ana", Email: "ana@example.com", Role: domain.RoleUser}, nil).Once()
	svc.On("Register", mock.Anything, "Ana", "dup@example.com", "secret1").
		Return(domain.User{}, domain.ErrConflict).Once()
	r := userRouter(svc)

	rec := do(r, http.MethodPost, "/register", map[string]any{"name": "Ana", "email": "ana@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	user := decode(t, rec)["user"].(map[string]any)
	assert.Equal(t, "u-1", user["id"])
	assert.NotContains(t, user, "password")

	rec = do(r, http.MethodPost, "/register", map[string]any{"name": "Ana", "email": "dup@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(r, http.MethodPost, "/register", map[string]any{"name": "Ana", "email": "not-an-email", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPost, "/register", map[string]any{"name": "Ana", "email": "ana@example.com", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "at least 6")
}

func TestLogin(t *testing.T) {
	svc := mocks.NewUserUsecase(t)
	svc.On("Login", mock.Anything, "ana@example.com", "secret1").Return("token", nil).Once()
	svc.On("Login", mock.Anything, "ana@example.com", "wrong").Return("", domain.ErrUnauthorized).Once()
	r := userRouter(svc)

	rec := do(r, http.MethodPost, "/login", map[string]any{"email": "ana@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token", decode(t, rec)["token"])

	rec = do(r, http.MethodPost, "/login", map[string]any{"email": "ana@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
