package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"PhotoGallery/internal/config"
	"PhotoGallery/internal/model"
	"PhotoGallery/internal/repo"
	"PhotoGallery/internal/service"
	"PhotoGallery/internal/storage"
)

var handlerDBSeq atomic.Int64

// testEnv поднимает полный HTTP-стек поверх in-memory SQLite и
// файлового хранилища во временном каталоге.
type testEnv struct {
	h   *Handler
	cfg *config.Config
	db  *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:handlertest%d?mode=memory&cache=shared", handlerDBSeq.Add(1))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Album{}, &model.Photo{}))

	cfg := &config.Config{
		AuthSecret:  "test-secret",
		BaseURL:     "localhost:8080",
		UploadDir:   t.TempDir(),
		UploadMaxMB: 5,
	}

	st, err := storage.NewDiskStorage(cfg.UploadDir)
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	users := repo.NewUserRepository(db)
	photos := repo.NewPhotoRepository(db)
	albums := repo.NewAlbumRepository(db)

	h := NewHandler(
		service.NewUserService(users),
		service.NewPhotoService(photos, albums, st, logger),
		service.NewAlbumService(albums, photos, logger),
		st,
		logger,
		cfg,
	)
	return &testEnv{h: h, cfg: cfg, db: db}
}

// doJSON выполняет запрос с JSON-телом (или без тела) через роутер.
func (e *testEnv) doJSON(t *testing.T, method, path string, payload any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rr := httptest.NewRecorder()
	e.h.Router.ServeHTTP(rr, req)
	return rr
}

// register регистрирует пользователя и возвращает auth-cookie и его id.
func (e *testEnv) register(t *testing.T, username string) (*http.Cookie, int64) {
	t.Helper()

	rr := e.doJSON(t, http.MethodPost, "/api/user/register", map[string]string{
		"username": username,
		"fullName": "User " + username,
		"password": "secret",
	}, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == "auth_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "auth cookie must be set after register")

	body := decodeBody(t, rr)
	user := body["user"].(map[string]any)
	return cookie, int64(user["id"].(float64))
}

// upload отправляет multipart-форму с файлом в поле "photo".
func (e *testEnv) upload(t *testing.T, cookie *http.Cookie, fields map[string]string, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("photo", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/photos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rr := httptest.NewRecorder()
	e.h.Router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestUserRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	cookie, id := env.register(t, "alice")
	assert.NotEmpty(t, cookie.Value)
	assert.NotZero(t, id)

	// повторная регистрация того же имени — конфликт
	rr := env.doJSON(t, http.MethodPost, "/api/user/register", map[string]string{
		"username": "alice", "password": "other",
	}, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// без обязательных полей — ошибка валидации со списком полей
	rr = env.doJSON(t, http.MethodPost, "/api/user/register", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody(t, rr)
	assert.Contains(t, body, "fields")

	// вход с верным паролем
	rr = env.doJSON(t, http.MethodPost, "/api/user/login", map[string]string{
		"username": "alice", "password": "secret",
	}, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	body = decodeBody(t, rr)
	user := body["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])

	// неверный пароль и несуществующий пользователь неразличимы: 401
	rr = env.doJSON(t, http.MethodPost, "/api/user/login", map[string]string{
		"username": "alice", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = env.doJSON(t, http.MethodPost, "/api/user/login", map[string]string{
		"username": "ghost", "password": "secret",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rr := env.doJSON(t, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "OK", body["status"])
}
