package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	_ "taskboard-api/docs"
	"taskboard-api/internal/client"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/testutil"
)

type testServer struct {
	t        *testing.T
	engine   *gin.Engine
	registry *prometheus.Registry
}

func newTestServer(t *testing.T, basePath string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uploadDir := t.TempDir()
	storage, err := client.NewLocalStorage(uploadDir)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	logger := zap.NewNop()
	engine := Setup(Config{
		DB:             testutil.NewDB(t),
		Logger:         logger,
		BasePath:       basePath,
		Metrics:        metrics.NewWithRegistry(registry, logger),
		Gatherer:       registry,
		Storage:        storage,
		UploadDir:      uploadDir,
		MaxFileSize:    1024,
		AllowedOrigins: []string{"*"},
	})
	return &testServer{t: t, engine: engine, registry: registry}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// data decodes the envelope's data field into a generic map or slice
func data(t *testing.T, w *httptest.ResponseRecorder) interface{} {
	t.Helper()
	var envelope struct {
		Success bool        `json:"success"`
		Data    interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.True(t, envelope.Success, w.Body.String())
	return envelope.Data
}

func object(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	m, ok := data(t, w).(map[string]interface{})
	require.True(t, ok, w.Body.String())
	return m
}

func array(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	a, ok := data(t, w).([]interface{})
	require.True(t, ok, w.Body.String())
	return a
}

func (s *testServer) create(path string, body interface{}) map[string]interface{} {
	s.t.Helper()
	w := s.do(http.MethodPost, path, body)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return object(s.t, w)
}

func TestOperationalEndpoints(t *testing.T) {
	s := newTestServer(t, "/api")

	tests := []struct {
		path        string
		contentType string
	}{
		{"/health", "application/json"},
		{"/ready", "application/json"},
		{"/metrics", "text/plain"},
		{"/api/health", "application/json"},
		{"/api/metrics", "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := s.do(http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), tt.contentType)
		})
	}

	w := s.do(http.MethodGet, "/ready", nil)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
}

func TestMetricsEndpoint_ExposesRequestMetrics(t *testing.T) {
	s := newTestServer(t, "/api")
	s.create("/api/boards", map[string]string{"title": "Roadmap"})

	w := s.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "# HELP taskboard_http_requests_total")
	assert.Contains(t, body, `taskboard_http_requests_total{endpoint="/api/boards",method="POST",status="2xx"} 1`)
	assert.Contains(t, body, "taskboard_board_created_total 1")
	assert.NotContains(t, body, `endpoint="/metrics"`)
}

func TestBoardWorkflow(t *testing.T) {
	s := newTestServer(t, "/api")

	board := s.create("/api/boards", map[string]string{"title": "Roadmap"})
	boardID := board["id"].(string)
	assert.Equal(t, "#0079bf", board["background"])

	todo := s.create("/api/lists", map[string]interface{}{"boardId": boardID, "title": "Todo"})
	done := s.create("/api/lists", map[string]interface{}{"boardId": boardID, "title": "Done"})
	assert.Equal(t, float64(0), todo["position"])
	assert.Equal(t, float64(1), done["position"])

	first := s.create("/api/cards", map[string]interface{}{"listId": todo["id"], "title": "First"})
	second := s.create("/api/cards", map[string]interface{}{"listId": todo["id"], "title": "Second"})
	assert.Equal(t, float64(1), second["position"])
	assert.Equal(t, todo["id"], first["list"].(map[string]interface{})["id"])

	// move the second card to the top of Done
	w := s.do(http.MethodPut, "/api/cards/"+second["id"].(string)+"/move", map[string]interface{}{"listId": done["id"], "position": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	todoCards := array(t, s.do(http.MethodGet, "/api/cards/list/"+todo["id"].(string), nil))
	doneCards := array(t, s.do(http.MethodGet, "/api/cards/list/"+done["id"].(string), nil))
	require.Len(t, todoCards, 1)
	require.Len(t, doneCards, 1)
	assert.Equal(t, "Second", doneCards[0].(map[string]interface{})["title"])

	tree := object(t, s.do(http.MethodGet, "/api/boards/"+boardID, nil))
	lists := tree["lists"].([]interface{})
	require.Len(t, lists, 2)
	assert.Equal(t, "Todo", lists[0].(map[string]interface{})["title"])

	boards := array(t, s.do(http.MethodGet, "/api/boards", nil))
	assert.Len(t, boards, 1)

	w = s.do(http.MethodDelete, "/api/boards/"+boardID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Board deleted successfully", object(t, w)["message"])

	w = s.do(http.MethodGet, "/api/cards/"+first["id"].(string), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
}

func TestUpdateCard_NullClearsDescription(t *testing.T) {
	s := newTestServer(t, "/api")
	board := s.create("/api/boards", map[string]string{"title": "B"})
	list := s.create("/api/lists", map[string]interface{}{"boardId": board["id"], "title": "L"})
	card := s.create("/api/cards", map[string]interface{}{
		"listId": list["id"], "title": "T", "position": 2, "description": "details",
	})
	cardID := card["id"].(string)

	w := s.do(http.MethodPut, "/api/cards/"+cardID, map[string]interface{}{"title": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := object(t, w)
	assert.Equal(t, "Renamed", updated["title"])
	assert.Equal(t, float64(2), updated["position"])
	assert.Equal(t, "details", updated["description"])

	w = s.do(http.MethodPut, "/api/cards/"+cardID, map[string]interface{}{"description": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Nil(t, object(t, w)["description"])
}

func TestCardLabels_AttachConflict(t *testing.T) {
	s := newTestServer(t, "/api")
	board := s.create("/api/boards", map[string]string{"title": "B"})
	list := s.create("/api/lists", map[string]interface{}{"boardId": board["id"], "title": "L"})
	card := s.create("/api/cards", map[string]interface{}{"listId": list["id"], "title": "C"})
	label := s.create("/api/labels", map[string]interface{}{"boardId": board["id"], "name": "Bug", "color": "#eb5a46"})

	path := "/api/cards/" + card["id"].(string) + "/labels"
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, path, map[string]interface{}{"labelId": label["id"]}).Code)
	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, path, map[string]interface{}{"labelId": label["id"]}).Code)

	detach := path + "/" + label["id"].(string)
	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, detach, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, detach, nil).Code)
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, path, map[string]interface{}{"labelId": label["id"]}).Code)

	results := array(t, s.do(http.MethodGet, "/api/search/cards?label_id="+label["id"].(string)+"&due_date=not-a-date", nil))
	assert.Len(t, results, 1)
}

func TestAttachments_UploadServeDelete(t *testing.T) {
	s := newTestServer(t, "/api")
	board := s.create("/api/boards", map[string]string{"title": "B"})
	list := s.create("/api/lists", map[string]interface{}{"boardId": board["id"], "title": "L"})
	card := s.create("/api/cards", map[string]interface{}{"listId": list["id"], "title": "C"})

	upload := func(fileName, contentType string, content []byte) *httptest.ResponseRecorder {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, _ = part.Write(content)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/cards/"+card["id"].(string)+"/attachments", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)
		return w
	}

	w := upload("notes.txt", "text/plain", []byte("hello"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	attachment := object(t, w)
	url := attachment["url"].(string)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".txt"))

	served := s.do(http.MethodGet, url, nil)
	assert.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, "hello", served.Body.String())

	assert.Equal(t, http.StatusBadRequest, upload("a.exe", "application/x-msdownload", []byte("x")).Code)
	assert.Equal(t, http.StatusBadRequest, upload("big.txt", "text/plain", bytes.Repeat([]byte("x"), 2048)).Code)

	w = s.do(http.MethodDelete, "/api/cards/attachments/"+attachment["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, url, nil).Code)
}

func TestRoutes_NotFoundAndValidation(t *testing.T) {
	s := newTestServer(t, "/api")

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{"unknown board", http.MethodGet, "/api/boards/missing", nil, http.StatusNotFound},
		{"unknown list board", http.MethodGet, "/api/lists/board/missing", nil, http.StatusNotFound},
		{"list without board", http.MethodPost, "/api/lists", map[string]string{"title": "x"}, http.StatusBadRequest},
		{"card for unknown list", http.MethodPost, "/api/cards", map[string]string{"listId": "missing", "title": "x"}, http.StatusNotFound},
		{"unknown user", http.MethodGet, "/api/users/missing", nil, http.StatusNotFound},
		{"users listing", http.MethodGet, "/api/users", nil, http.StatusOK},
		{"reorder empty body", http.MethodPut, "/api/lists/reorder", map[string]interface{}{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestSwaggerDoc(t *testing.T) {
	s := newTestServer(t, "/api")

	w := s.do(http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Taskboard API", doc["info"].(map[string]interface{})["title"])
	assert.Contains(t, doc["paths"], "/boards/{id}")
}
