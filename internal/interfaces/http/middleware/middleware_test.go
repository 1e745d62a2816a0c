package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/opsportal/internal/infrastructure/auth"
	"github.com/opsportal/opsportal/internal/shared/authorization"
	"github.com/opsportal/opsportal/internal/shared/constants"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeChecker struct {
	allowed map[string]bool
	err     error
	calls   []string
}

func (f *fakeChecker) Enforce(role, resource, action string) (bool, error) {
	key := role + ":" + resource + ":" + action
	f.calls = append(f.calls, key)
	return f.allowed[key], f.err
}

func newEngine(jwtSvc *auth.JWTService, checker *fakeChecker) *gin.Engine {
	log := logger.NewNopLogger()
	authMW := NewAuthMiddleware(jwtSvc, log)
	permMW := NewPermissionMiddleware(checker, log)

	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/me", authMW.RequireAuth(), func(c *gin.Context) {
		userID, role, ok := Identity(c)
		wing := WingID(c)
		body := gin.H{"user_id": userID, "role": role, "ok": ok}
		if wing != nil {
			body["wing_id"] = *wing
		}
		c.JSON(http.StatusOK, body)
	})
	r.POST("/approve", authMW.RequireAuth(), permMW.RequirePermission("meetings", "approve"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", "opsportal", 5)
	r := newEngine(jwtSvc, &fakeChecker{})

	wing := uint(3)
	token, err := jwtSvc.Issue(42, authorization.RoleApprover, &wing)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":42,"role":"approver","ok":true,"wing_id":3}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/me", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	other := auth.NewJWTService("other-secret", "opsportal", 5)
	forged, err := other.Issue(42, authorization.RoleAdmin, nil)
	require.NoError(t, err)
	w = doRequest(r, http.MethodGet, "/me", forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_BadHeaderFormat(t *testing.T) {
	r := newEngine(auth.NewJWTService("secret", "", 5), &fakeChecker{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(constants.HeaderAuthorization, "Basic abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermission(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", "opsportal", 5)
	checker := &fakeChecker{allowed: map[string]bool{"approver:meetings:approve": true}}
	r := newEngine(jwtSvc, checker)

	approver, _ := jwtSvc.Issue(1, authorization.RoleApprover, nil)
	staff, _ := jwtSvc.Issue(2, authorization.RoleStaff, nil)

	assert.Equal(t, http.StatusNoContent, doRequest(r, http.MethodPost, "/approve", approver).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodPost, "/approve", staff).Code)
	assert.Equal(t, []string{"approver:meetings:approve", "staff:meetings:approve"}, checker.calls)

	checker.err = stderrors.New("adapter down")
	assert.Equal(t, http.StatusInternalServerError, doRequest(r, http.MethodPost, "/approve", approver).Code)
}

func TestRequestID(t *testing.T) {
	r := newEngine(auth.NewJWTService("secret", "", 5), &fakeChecker{})

	w := doRequest(r, http.MethodGet, "/me", "")
	assert.NotEmpty(t, w.Header().Get(constants.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(constants.HeaderXRequestID, "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(constants.HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	r := newEngine(auth.NewJWTService("secret", "", 5), &fakeChecker{})

	w := doRequest(r, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://portal.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portal.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
