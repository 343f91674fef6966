package identity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nmarchetti/shop-admin/internal/httpx"
)

const ctxUserKey = "userID"

// Middleware resolves the Authorization bearer token into the request context.
// It never rejects: handlers that need an identity check for an empty user id.
func Middleware(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token := strings.TrimPrefix(auth, "Bearer ")
			if id := svc.Resolve(c.Request.Context(), token); id != "" {
				c.Set(ctxUserKey, id)
			}
		}
		c.Next()
	}
}

// UserID returns the resolved caller id, or "" when unauthenticated.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserKey)
}

// SetUserID is a test hook for exercising handlers without the middleware.
func SetUserID(c *gin.Context, id string) {
	c.Set(ctxUserKey, id)
}

func Routes(rg *gin.RouterGroup, svc *Service) {
	rg.POST("/auth/register", registerHandler(svc))
	rg.POST("/auth/login", loginHandler(svc))
}

// registerHandler creates an account and opens a session.
// @Summary  Register a new account
// @Accept   json
// @Produce  json
// @Param    body body RegisterRequest true "credentials"
// @Success  200 {object} AuthResponse
// @Failure  400 {object} httpx.HTTPError
// @Router   /auth/register [post]
func registerHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, "invalid json body")
			return
		}
		if req.Email == "" || req.Password == "" {
			httpx.BadRequest(c, "email and password are required")
			return
		}
		u, token, err := svc.Register(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if err == ErrAlreadyExist {
				httpx.BadRequest(c, "email already registered")
				return
			}
			httpx.Internal(c, "auth_register", err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token, User: *u})
	}
}

// loginHandler opens a session for an existing account.
// @Summary  Log in
// @Accept   json
// @Produce  json
// @Param    body body LoginRequest true "credentials"
// @Success  200 {object} AuthResponse
// @Failure  401 {object} httpx.HTTPError
// @Router   /auth/login [post]
func loginHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, "invalid json body")
			return
		}
		if req.Email == "" || req.Password == "" {
			httpx.BadRequest(c, "email and password are required")
			return
		}
		u, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if err == ErrBadCredentials {
				httpx.Unauthenticated(c)
				return
			}
			httpx.Internal(c, "auth_login", err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token, User: *u})
	}
}
