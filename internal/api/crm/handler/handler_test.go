package crmhdl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	crmdto "touch_crm/internal/api/crm/dto"
	crmmodels "touch_crm/internal/api/crm/models"
	"touch_crm/internal/common"
	"touch_crm/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "panic", Format: "text", Output: "stdout"})
	os.Exit(m.Run())
}

type fakeCustomers struct {
	created  *crmdto.CustomerCreateInput
	page     int64
	perPage  int64
	searched string
	patch    *crmdto.CustomerPatch
	err      error
}

func (f *fakeCustomers) CreateCustomer(_ context.Context, input *crmdto.CustomerCreateInput) (*crmmodels.Customer, error) {
	f.created = input
	if f.err != nil {
		return nil, f.err
	}
	customer := input.ToModel()
	customer.ID = primitive.NewObjectID()
	return &customer, nil
}

func (f *fakeCustomers) ListCustomers(_ context.Context, page, perPage int64) ([]crmmodels.Customer, error) {
	f.page, f.perPage = page, perPage
	return []crmmodels.Customer{}, f.err
}

func (f *fakeCustomers) SearchCustomer(_ context.Context, text string) (*crmmodels.Customer, error) {
	f.searched = text
	if f.err != nil {
		return nil, f.err
	}
	return &crmmodels.Customer{Name: text}, nil
}

func (f *fakeCustomers) UpdateCustomer(_ context.Context, id string, patch *crmdto.CustomerPatch) (*crmmodels.Customer, error) {
	f.patch = patch
	if f.err != nil {
		return nil, f.err
	}
	return &crmmodels.Customer{Name: "updated"}, nil
}

func (f *fakeCustomers) DeleteCustomer(_ context.Context, id string) error {
	return f.err
}

type fakeTouches struct {
	custID string
	input  *crmdto.TouchCreateInput
	err    error
}

func (f *fakeTouches) ListTouches(_ context.Context, custID string, page, perPage int64) ([]crmmodels.Touch, error) {
	f.custID = custID
	if f.err != nil {
		return nil, f.err
	}
	return []crmmodels.Touch{{Desc: "첫 상담"}}, nil
}

func (f *fakeTouches) CreateTouch(_ context.Context, custID string, input *crmdto.TouchCreateInput) (*crmmodels.Touch, error) {
	f.custID, f.input = custID, input
	touch := input.ToModel()
	return &touch, f.err
}

func (f *fakeTouches) UpdateTouch(_ context.Context, id string, patch *crmdto.TouchPatch) (*crmmodels.Touch, error) {
	return nil, f.err
}

type fakeImport struct {
	body string
	err  error
}

func (f *fakeImport) ImportCustomers(_ context.Context, r io.Reader) (*crmdto.ImportResult, error) {
	b, _ := io.ReadAll(r)
	f.body = string(b)
	return &crmdto.ImportResult{Customers: 2, Touches: 1}, f.err
}

type envelope struct {
	Code    any             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Status  string          `json:"status"`
}

func newApp(customers *fakeCustomers, touches *fakeTouches, imports *fakeImport) *fiber.App {
	app := fiber.New(fiber.Config{UnescapePath: true})
	ch := &CrmCustomerHandler{CustomerService: customers}
	th := &CrmTouchHandler{TouchService: touches}
	ih := &CrmImportHandler{ImportService: imports}
	app.Post("/customer/", ch.HandleCreateCustomer)
	app.Post("/customer/file", ih.HandleImportCustomers)
	app.Get("/customer/", ch.HandleListCustomers)
	app.Get("/customer/:id", ch.HandleSearchCustomer)
	app.Put("/customer/:id", ch.HandleUpdateCustomer)
	app.Delete("/customer/:id", ch.HandleDeleteCustomer)
	app.Get("/touch/:cust_id", th.HandleListTouches)
	app.Post("/touch/:cust_id", th.HandleCreateTouch)
	app.Put("/touch/:id", th.HandleUpdateTouch)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(body) > 0 {
		require.NoError(t, json.Unmarshal(body, &env))
	}
	return resp, env
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateCustomer(t *testing.T) {
	customers := &fakeCustomers{}
	app := newApp(customers, &fakeTouches{}, &fakeImport{})

	resp, env := do(t, app, jsonRequest(http.MethodPost, "/customer/", `{"cust_name":"박천수","cust_mobile":"010-1234-5678"}`))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, common.MsgCreated, env.Message)
	assert.Equal(t, "박천수", customers.created.Name)

	var got crmmodels.Customer
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.False(t, got.ID.IsZero())
	assert.Equal(t, "010-1234-5678", got.Mobile)
}

func TestCreateCustomer_MalformedBody(t *testing.T) {
	customers := &fakeCustomers{}
	app := newApp(customers, &fakeTouches{}, &fakeImport{})

	resp, env := do(t, app, jsonRequest(http.MethodPost, "/customer/", `{"cust_name":`))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, common.ErrCodeValidationInput.Code, env.Code)
	assert.Nil(t, customers.created)
}

func TestCreateCustomer_ServiceValidation(t *testing.T) {
	customers := &fakeCustomers{err: common.NewValidationError(nil)}
	app := newApp(customers, &fakeTouches{}, &fakeImport{})

	resp, _ := do(t, app, jsonRequest(http.MethodPost, "/customer/", `{}`))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListCustomers_Pagination(t *testing.T) {
	customers := &fakeCustomers{}
	app := newApp(customers, &fakeTouches{}, &fakeImport{})

	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/customer/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Equal(t, int64(1), customers.page)
	assert.Equal(t, int64(10), customers.perPage)

	_, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/customer/?page=3&per_page=20", nil))
	assert.Equal(t, int64(3), customers.page)
	assert.Equal(t, int64(20), customers.perPage)

	customers.page = 0
	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/customer/?per_page=0", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, customers.page)
}

func TestSearchCustomer(t *testing.T) {
	customers := &fakeCustomers{}
	app := newApp(customers, &fakeTouches{}, &fakeImport{})

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/customer/"+url.PathEscape("김철"), nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "김철", customers.searched)

	customers.err = common.NewNotFoundError("고객을", "없음")
	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/customer/"+url.PathEscape("없음"), nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "없음 고객을 찾을수 없습니다.", env.Message)
}

func TestUpdateCustomer(t *testing.T) {
	customers := &fakeCustomers{}
	app := newApp(customers, &fakeTouches{}, &fakeImport{})
	id := primitive.NewObjectID().Hex()

	resp, _ := do(t, app, jsonRequest(http.MethodPut, "/customer/"+id, `{"cust_mobile":""}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, customers.patch.Mobile)
	assert.Equal(t, "", *customers.patch.Mobile)
	assert.Nil(t, customers.patch.Name)

	customers.err = common.NewInvalidIdentifierError("abc")
	resp, _ = do(t, app, jsonRequest(http.MethodPut, "/customer/abc", `{}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteCustomer(t *testing.T) {
	customers := &fakeCustomers{}
	app := newApp(customers, &fakeTouches{}, &fakeImport{})
	id := primitive.NewObjectID().Hex()

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/customer/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)

	customers.err = common.NewNotFoundError("고객을", id)
	resp, _ = do(t, app, httptest.NewRequest(http.MethodDelete, "/customer/"+id, nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTouchRoutes(t *testing.T) {
	touches := &fakeTouches{}
	app := newApp(&fakeCustomers{}, touches, &fakeImport{})
	custID := primitive.NewObjectID().Hex()

	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/touch/"+custID, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, custID, touches.custID)
	assert.Contains(t, string(env.Data), "첫 상담")

	resp, env = do(t, app, jsonRequest(http.MethodPost, "/touch/"+custID, `{"cust_id":"ignored","touch_desc":"방문","touch_chann":"visit"}`))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, custID, touches.custID)
	assert.Equal(t, crmmodels.TouchChannelVisit, touches.input.Channel)
	assert.Equal(t, common.MsgCreated, env.Message)

	touches.err = common.NewNotFoundError("터치를", custID)
	resp, _ = do(t, app, jsonRequest(http.MethodPut, "/touch/"+custID, `{"touch_desc":"x"}`))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestImportCustomers(t *testing.T) {
	imports := &fakeImport{}
	app := newApp(&fakeCustomers{}, &fakeTouches{}, imports)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "customers.csv")
	require.NoError(t, err)
	_, _ = part.Write([]byte("cust_name,cust_history1\n김철수,첫 상담\n"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/customer/file", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, env := do(t, app, req)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, MsgImported, env.Message)
	assert.JSONEq(t, `{"customers":2,"touches":1,"skipped":0}`, string(env.Data))
	assert.Contains(t, imports.body, "김철수")
}

func TestImportCustomers_MissingFile(t *testing.T) {
	imports := &fakeImport{}
	app := newApp(&fakeCustomers{}, &fakeTouches{}, imports)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("other", "x"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/customer/file", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, env := do(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, common.ErrCodeValidationFormat.Code, env.Code)
	assert.Empty(t, imports.body)
}
