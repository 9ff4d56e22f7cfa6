package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agri_commerce/internal/middleware"
	"agri_commerce/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerDeps struct {
	cache   *utils.Cache
	limiter middleware.Limiter
}

func newTestRouter(t *testing.T, s Store, deps routerDeps) *gin.Engine {
	t.Helper()
	creds, err := utils.NewCredentials("ESPOIR", "chou", bcrypt.MinCost)
	require.NoError(t, err)
	r, err := NewRouter(Options{
		Store:       s,
		Cache:       deps.cache,
		Credentials: creds,
		Limiter:     deps.limiter,
		CORSOrigins: []string{"*"},
	})
	require.NoError(t, err)
	return r
}

// do sends a request with an optional JSON body
func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unmarshals a JSON response body
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
