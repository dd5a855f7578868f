package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"modgoviya.io/modgoviya/internal/api/middleware"
	"modgoviya.io/modgoviya/internal/auth/password"
	"modgoviya.io/modgoviya/internal/auth/token"
	"modgoviya.io/modgoviya/internal/pkg/logger"
	"modgoviya.io/modgoviya/internal/pkg/worker"
	"modgoviya.io/modgoviya/internal/service"
	"modgoviya.io/modgoviya/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// recordingMailer captures issued tokens instead of delivering them.
// Sends may arrive from a worker goroutine, hence the mutex.
type recordingMailer struct {
	mu           sync.Mutex
	resetTokens  []string
	verifyTokens []string
}

func (m *recordingMailer) SendPasswordReset(ctx context.Context, email, token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetTokens = append(m.resetTokens, token)
}

func (m *recordingMailer) SendEmailVerification(ctx context.Context, email, token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verifyTokens = append(m.verifyTokens, token)
}

func (m *recordingMailer) resetCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.resetTokens)
}

type handlerFixture struct {
	server *Server
	auth   *service.AuthService
	mailer *recordingMailer
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	client := testutil.OpenEnt(t)
	auth := service.NewAuthService(client, service.Options{
		Hasher: password.NewHasher(bcrypt.MinCost),
		Issuer: token.NewIssuer(token.Config{
			SigningKey: []byte("handlers-test-signing-key-32-byte!!!"),
			Issuer:     "modgoviya-test",
			TTL:        time.Hour,
		}),
	})
	mailer := &recordingMailer{}
	return &handlerFixture{
		server: NewServer(ServerDeps{Auth: auth, Mailer: mailer}),
		auth:   auth,
		mailer: mailer,
	}
}

// asIdentity attaches a fixed identity, standing in for RequireAuth.
func asIdentity(id middleware.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

func post(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	f := newHandlerFixture(t)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/register", f.server.Register)

	t.Run("created", func(t *testing.T) {
		w := post(r, "/register", gin.H{
			"email":         "anura@modgoviya.lk",
			"fullName":      "Anura Bandara",
			"password":      "Paddy-Field-77!",
			"role":          "buyer",
			"acceptedTerms": true,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res service.AuthResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "buyer", res.User.Role)
	})

	t.Run("missing body fields", func(t *testing.T) {
		w := post(r, "/register", gin.H{"email": "x@y.lk"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("field errors surfaced", func(t *testing.T) {
		w := post(r, "/register", gin.H{
			"email":    "not-an-email",
			"fullName": "A",
			"password": "Paddy-Field-77!",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "field_errors")
		assert.Contains(t, w.Body.String(), "acceptedTerms")
	})
}

func TestPasswordResetHandlers(t *testing.T) {
	f := newHandlerFixture(t)
	res, err := f.auth.Register(context.Background(), service.RegisterInput{
		Email:         "reset@modgoviya.lk",
		FullName:      "Reset User",
		Password:      "Paddy-Field-77!",
		AcceptedTerms: true,
	})
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/request", f.server.RequestPasswordReset)
	r.POST("/confirm", f.server.ConfirmPasswordReset)

	w := post(r, "/request", gin.H{"email": "reset@modgoviya.lk"})
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, f.mailer.resetTokens, 1)

	t.Run("unknown email sends nothing but responds the same", func(t *testing.T) {
		w := post(r, "/request", gin.H{"email": "ghost@modgoviya.lk"})
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Len(t, f.mailer.resetTokens, 1)
	})

	t.Run("confirm with mailed token", func(t *testing.T) {
		w := post(r, "/confirm", gin.H{
			"token":       f.mailer.resetTokens[0],
			"newPassword": "Harvest-Moon-8!",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		_, err := f.auth.Login(context.Background(), res.User.Email, "Harvest-Moon-8!")
		assert.NoError(t, err)
	})
}

func TestEmailVerificationHandlers(t *testing.T) {
	f := newHandlerFixture(t)
	res, err := f.auth.Register(context.Background(), service.RegisterInput{
		Email:         "verify@modgoviya.lk",
		FullName:      "Verify User",
		Password:      "Paddy-Field-77!",
		AcceptedTerms: true,
	})
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/request", asIdentity(middleware.Identity{
		ID: res.User.ID, Email: res.User.Email, Role: res.User.Role,
	}), f.server.RequestEmailVerification)
	r.POST("/confirm", f.server.ConfirmEmailVerification)

	w := post(r, "/request", nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	require.Len(t, f.mailer.verifyTokens, 1)

	w = post(r, "/confirm", gin.H{"token": f.mailer.verifyTokens[0]})
	require.Equal(t, http.StatusOK, w.Code)

	u, err := f.auth.CurrentUser(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.True(t, u.IsVerified)
}

func TestAdminUpdateUserHandler_NothingToUpdate(t *testing.T) {
	f := newHandlerFixture(t)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.PATCH("/users/:id", f.server.AdminUpdateUser)

	b, _ := json.Marshal(gin.H{})
	req := httptest.NewRequest(http.MethodPatch, "/users/some-id", bytes.NewReader(b))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "nothing to update")
}

func TestPasswordResetMailRunsOnWorkerPool(t *testing.T) {
	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	client := testutil.OpenEnt(t)
	auth := service.NewAuthService(client, service.Options{
		Hasher: password.NewHasher(bcrypt.MinCost),
		Issuer: token.NewIssuer(token.Config{
			SigningKey: []byte("handlers-test-signing-key-32-byte!!!"),
			Issuer:     "modgoviya-test",
			TTL:        time.Hour,
		}),
	})
	mailer := &recordingMailer{}
	server := NewServer(ServerDeps{Auth: auth, Mailer: mailer, Pools: pools})

	_, err = auth.Register(context.Background(), service.RegisterInput{
		Email:         "pool@modgoviya.lk",
		FullName:      "Pool User",
		Password:      "Paddy-Field-77!",
		AcceptedTerms: true,
	})
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/request", server.RequestPasswordReset)

	w := post(r, "/request", gin.H{"email": "pool@modgoviya.lk"})
	require.Equal(t, http.StatusAccepted, w.Code)

	// Delivery is detached from the request, so the token may land after
	// the handler has already responded.
	assert.Eventually(t, func() bool { return mailer.resetCount() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestHealthHandlers(t *testing.T) {
	f := newHandlerFixture(t)
	r := gin.New()
	r.GET("/live", f.server.Liveness)
	r.GET("/ready", f.server.Readiness)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// No pool wired: readiness reports ok with no checks.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "worker_pools")
}

func TestReadinessReportsWorkerPoolMetrics(t *testing.T) {
	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	server := NewServer(ServerDeps{Pools: pools})
	r := gin.New()
	r.GET("/ready", server.Readiness)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		WorkerPools map[string]map[string]int `json:"worker_pools"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body.WorkerPools, "general")
	require.Contains(t, body.WorkerPools, "crypto")
	assert.Equal(t, worker.DefaultPoolConfig().GeneralPoolSize, body.WorkerPools["general"]["cap"])
	assert.Equal(t, worker.DefaultPoolConfig().CryptoPoolSize, body.WorkerPools["crypto"]["cap"])
}
