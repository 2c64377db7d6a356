package basehdl

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"touch_crm/internal/common"
	"touch_crm/internal/logger"
)

const testDocName = "basehdl_test"

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "panic", Format: "text", Output: "stdout"})
	swag.Register(testDocName, &swag.Spec{
		Title:            "touch_crm",
		Version:          "1.0",
		InfoInstanceName: testDocName,
		SwaggerTemplate:  `{"swagger":"2.0","info":{"title":"{{.Title}}","version":"{{.Version}}"}}`,
	})
	os.Exit(m.Run())
}

type envelope struct {
	Code    any             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Status  string          `json:"status"`
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(body) > 0 && body[0] == '{' {
		require.NoError(t, json.Unmarshal(body, &env))
	}
	return resp, env
}

func TestSafeHandlerWrapper_ErrorMapping(t *testing.T) {
	app := fiber.New()
	app.Get("/notfound", func(c fiber.Ctx) error {
		return SafeHandlerWrapper(c, func() error { return common.NewNotFoundError("고객을", "abc") })
	})
	app.Get("/invalid", func(c fiber.Ctx) error {
		return SafeHandlerWrapper(c, func() error { return common.NewInvalidIdentifierError("abc") })
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return SafeHandlerWrapper(c, func() error { return errors.New("driver exploded") })
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		return SafeHandlerWrapper(c, func() error { panic("boom") })
	})
	app.Get("/db", func(c fiber.Ctx) error {
		return SafeHandlerWrapper(c, func() error { return common.ConvertMongoError(errors.New("raw")) })
	})

	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/notfound", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "abc 고객을 찾을수 없습니다.", env.Message)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, common.ErrCodeNotFound.Code, env.Code)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/invalid", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = do(t, app, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, common.MsgInternalError, env.Message)

	resp, env = do(t, app, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, common.ErrCodeInternalServer.Code, env.Code)

	resp, env = do(t, app, httptest.NewRequest(http.MethodGet, "/db", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "null", string(env.Data))
}

func TestHandleSuccessResponse(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c fiber.Ctx) error {
		return HandleSuccessResponse(c, common.StatusCreated, common.MsgCreated, fiber.Map{"cust_name": "김철수"})
	})

	resp, env := do(t, app, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, float64(201), env.Code)
	assert.Equal(t, "success", env.Status)
	assert.JSONEq(t, `{"cust_name":"김철수"}`, string(env.Data))
}

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return SafeHandlerWrapper(c, func() error {
			page, perPage, err := ParsePagination(c)
			if err != nil {
				return err
			}
			return HandleSuccessResponse(c, common.StatusOK, common.MsgSuccess, []int64{page, perPage})
		})
	})

	cases := []struct {
		query  string
		status int
		data   string
	}{
		{"", http.StatusOK, "[1,10]"},
		{"?page=2&per_page=5", http.StatusOK, "[2,5]"},
		{"?page=0", http.StatusUnprocessableEntity, ""},
		{"?per_page=-1", http.StatusUnprocessableEntity, ""},
		{"?page=abc", http.StatusUnprocessableEntity, ""},
	}
	for _, tc := range cases {
		resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/"+tc.query, nil))
		assert.Equal(t, tc.status, resp.StatusCode, tc.query)
		if tc.data != "" {
			assert.JSONEq(t, tc.data, string(env.Data), tc.query)
		}
	}
}

func TestRequestContext_CarriesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/", func(c fiber.Ctx) error {
		id, _ := RequestContext(c).Value(logger.RequestIDKey).(string)
		return c.SendString(id)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "req-42", string(body))
}

func TestHealth_WithoutClient(t *testing.T) {
	app := fiber.New()
	app.Get("/system/health", NewSystemHandler(nil).HandleHealth)

	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/system/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, string(env.Data), "not_initialized")
}

func TestHealth_PingFailureHidesDriverError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ping error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    6,
			Name:    "HostUnreachable",
			Message: "connection to db-internal-7.example:27017 refused",
		}))

		app := fiber.New()
		app.Get("/system/health", NewSystemHandler(mt.Client).HandleHealth)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/system/health", nil))
		require.NoError(mt, err)
		assert.Equal(mt, http.StatusServiceUnavailable, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.NotContains(mt, string(body), "db-internal-7")
		assert.NotContains(mt, string(body), "database_error")

		var env envelope
		require.NoError(mt, json.Unmarshal(body, &env))
		var data map[string]any
		require.NoError(mt, json.Unmarshal(env.Data, &data))
		assert.Equal(mt, "error", data["services"].(map[string]any)["database"])
	})
}

func TestDocsHandler(t *testing.T) {
	h := NewDocsHandler(testDocName, "/openapi.json")
	app := fiber.New()
	app.Get("/openapi.json", h.HandleSpec)
	app.Get("/docs", h.HandleUI)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"swagger":"2.0","info":{"title":"touch_crm","version":"1.0"}}`, string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "url: '/openapi.json'")
}

func TestDocsHandler_UnknownInstance(t *testing.T) {
	app := fiber.New()
	app.Get("/openapi.json", NewDocsHandler("missing", "/openapi.json").HandleSpec)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
