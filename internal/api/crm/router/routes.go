// Package router đăng ký các route thuộc domain CRM: khách hàng, import CSV, touch.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "touch_crm/internal/api/crm/handler"
	apirouter "touch_crm/internal/api/router"
)

// Handlers gom các handler CRM
type Handlers struct {
	Customer *crmhdl.CrmCustomerHandler
	Touch    *crmhdl.CrmTouchHandler
	Import   *crmhdl.CrmImportHandler
}

// NewHandlers tạo các handler CRM từ collections đã đăng ký.
func NewHandlers() (*Handlers, error) {
	customerHandler, err := crmhdl.NewCrmCustomerHandler()
	if err != nil {
		return nil, fmt.Errorf("tạo CrmCustomerHandler: %w", err)
	}
	touchHandler, err := crmhdl.NewCrmTouchHandler()
	if err != nil {
		return nil, fmt.Errorf("tạo CrmTouchHandler: %w", err)
	}
	importHandler, err := crmhdl.NewCrmImportHandler()
	if err != nil {
		return nil, fmt.Errorf("tạo CrmImportHandler: %w", err)
	}
	return &Handlers{Customer: customerHandler, Touch: touchHandler, Import: importHandler}, nil
}

// Register đăng ký tất cả route CRM lên root.
func Register(root fiber.Router) error {
	h, err := NewHandlers()
	if err != nil {
		return err
	}
	h.Mount(root)
	return nil
}

// Mount gắn route CRM của h lên root.
func (h *Handlers) Mount(root fiber.Router) {
	var middlewares []fiber.Handler

	// POST /customer/: tạo khách
	apirouter.RegisterRouteWithMiddleware(root, "/customer", fiber.MethodPost, "/", middlewares, h.Customer.HandleCreateCustomer)
	// POST /customer/file: import CSV (multipart field "file")
	apirouter.RegisterRouteWithMiddleware(root, "/customer", fiber.MethodPost, "/file", middlewares, h.Import.HandleImportCustomers)
	// GET /customer/?page=&per_page=
	apirouter.RegisterRouteWithMiddleware(root, "/customer", fiber.MethodGet, "/", middlewares, h.Customer.HandleListCustomers)
	// GET /customer/:id: id, tiền tố tên hoặc hậu tố số điện thoại
	apirouter.RegisterRouteWithMiddleware(root, "/customer", fiber.MethodGet, "/:id", middlewares, h.Customer.HandleSearchCustomer)
	apirouter.RegisterRouteWithMiddleware(root, "/customer", fiber.MethodPut, "/:id", middlewares, h.Customer.HandleUpdateCustomer)
	apirouter.RegisterRouteWithMiddleware(root, "/customer", fiber.MethodDelete, "/:id", middlewares, h.Customer.HandleDeleteCustomer)

	// GET/POST /touch/:cust_id, PUT /touch/:id
	apirouter.RegisterRouteWithMiddleware(root, "/touch", fiber.MethodGet, "/:cust_id", middlewares, h.Touch.HandleListTouches)
	apirouter.RegisterRouteWithMiddleware(root, "/touch", fiber.MethodPost, "/:cust_id", middlewares, h.Touch.HandleCreateTouch)
	apirouter.RegisterRouteWithMiddleware(root, "/touch", fiber.MethodPut, "/:id", middlewares, h.Touch.HandleUpdateTouch)
}
