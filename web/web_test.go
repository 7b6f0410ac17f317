package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"bookshop/database"
	"bookshop/logger"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) *gin.Engine {
	logger.InitLogger(logging.DEBUG)
	dbPath := "test.db"
	os.Remove(dbPath)
	assert.NoError(t, database.InitDB(dbPath))

	server := NewServer()
	engine, err := server.initRouter()
	assert.NoError(t, err)
	return engine
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

type msgResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	Reviews map[string]string `json:"reviews"`
}

func do(engine *gin.Engine, method, target, body string, header http.Header, cookies []*http.Cookie) (*httptest.ResponseRecorder, msgResponse) {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var parsed msgResponse
	_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	return w, parsed
}

func TestRegisterEndpoint(t *testing.T) {
	engine := setup(t)
	defer teardown()

	w, _ := do(engine, http.MethodPost, "/register", `{"username":"alice","password":"wonderland"}`, nil, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(engine, http.MethodPost, "/register", `{"username":"alice","password":"other"}`, nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = do(engine, http.MethodPost, "/register", `{"username":"bob"}`, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(engine, http.MethodPost, "/register", `{"password":"secret"}`, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	engine := setup(t)
	defer teardown()

	do(engine, http.MethodPost, "/register", `{"username":"alice","password":"wonderland"}`, nil, nil)

	w, _ := do(engine, http.MethodPost, "/customer/login", `{"username":"alice"}`, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(engine, http.MethodPost, "/customer/login", `{"username":"alice","password":"wrong"}`, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := do(engine, http.MethodPost, "/customer/login", `{"username":"alice","password":"wonderland"}`, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body.Token)
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestCatalogEndpoints(t *testing.T) {
	engine := setup(t)
	defer teardown()

	w, _ := do(engine, http.MethodGet, "/", "", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Things Fall Apart")
	// Pretty-printed with 2-space indentation
	assert.Contains(t, w.Body.String(), "\n  ")

	w, _ = do(engine, http.MethodGet, "/isbn/8", "", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Austen")

	w, _ = do(engine, http.MethodGet, "/isbn/999", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(engine, http.MethodGet, "/author/jane%20austen", "", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pride and Prejudice")

	w, _ = do(engine, http.MethodGet, "/author/Austen", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(engine, http.MethodGet, "/title/the%20divine%20comedy", "", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(engine, http.MethodGet, "/review/1", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(engine, http.MethodGet, "/nosuchroute", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewFlow(t *testing.T) {
	engine := setup(t)
	defer teardown()

	do(engine, http.MethodPost, "/register", `{"username":"alice","password":"wonderland"}`, nil, nil)
	do(engine, http.MethodPost, "/register", `{"username":"bob","password":"builder"}`, nil, nil)

	w, aliceLogin := do(engine, http.MethodPost, "/customer/login", `{"username":"alice","password":"wonderland"}`, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	aliceCookies := w.Result().Cookies()
	aliceAuth := http.Header{"Authorization": []string{"Bearer " + aliceLogin.Token}}

	_, bobLogin := do(engine, http.MethodPost, "/customer/login", `{"username":"bob","password":"builder"}`, nil, nil)
	bobAuth := http.Header{"Authorization": []string{"Bearer " + bobLogin.Token}}

	// The gate rejects requests without a token before any handler runs
	w, _ = do(engine, http.MethodPut, "/customer/auth/review/1?review=great", "", nil, aliceCookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(engine, http.MethodPut, "/customer/auth/review/1?review=great", "", http.Header{"Authorization": []string{"garbage"}}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Session plus token: the full login flow
	w, body := do(engine, http.MethodPut, "/customer/auth/review/1?review=great", "", aliceAuth, aliceCookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"alice": "great"}, body.Reviews)

	// Missing review text
	w, _ = do(engine, http.MethodPut, "/customer/auth/review/1", "", aliceAuth, aliceCookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown book
	w, _ = do(engine, http.MethodPut, "/customer/auth/review/999?review=great", "", aliceAuth, aliceCookies)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Upsert replaces rather than appends
	w, body = do(engine, http.MethodPut, "/customer/auth/review/1?review=revised", "", aliceAuth, aliceCookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"alice": "revised"}, body.Reviews)

	w, _ = do(engine, http.MethodGet, "/review/1", "", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "revised")

	// Bob never reviewed book 1; his delete fails and alice's review stays
	w, _ = do(engine, http.MethodDelete, "/customer/auth/review/1", "", bobAuth, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(engine, http.MethodGet, "/review/1", "", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Token alone identifies the caller on delete
	w, body = do(engine, http.MethodDelete, "/customer/auth/review/1", "", aliceAuth, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body.Reviews)

	w, _ = do(engine, http.MethodDelete, "/customer/auth/review/999", "", aliceAuth, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogout(t *testing.T) {
	engine := setup(t)
	defer teardown()

	do(engine, http.MethodPost, "/register", `{"username":"alice","password":"wonderland"}`, nil, nil)
	w, _ := do(engine, http.MethodPost, "/customer/login", `{"username":"alice","password":"wonderland"}`, nil, nil)
	cookies := w.Result().Cookies()

	w, _ = do(engine, http.MethodGet, "/customer/logout", "", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}
