// Package crmhdl - Handler khách hàng CRM.
package crmhdl

import (
	"context"
	"fmt"

	basehdl "touch_crm/internal/api/base/handler"
	crmdto "touch_crm/internal/api/crm/dto"
	crmmodels "touch_crm/internal/api/crm/models"
	crmvc "touch_crm/internal/api/crm/service"
	"touch_crm/internal/common"

	"github.com/gofiber/fiber/v3"
)

// CustomerService là các thao tác handler cần từ service khách hàng
type CustomerService interface {
	CreateCustomer(ctx context.Context, input *crmdto.CustomerCreateInput) (*crmmodels.Customer, error)
	ListCustomers(ctx context.Context, page, perPage int64) ([]crmmodels.Customer, error)
	SearchCustomer(ctx context.Context, text string) (*crmmodels.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch *crmdto.CustomerPatch) (*crmmodels.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// CrmCustomerHandler xử lý API khách hàng.
type CrmCustomerHandler struct {
	CustomerService CustomerService
}

// NewCrmCustomerHandler tạo CrmCustomerHandler mới.
func NewCrmCustomerHandler() (*CrmCustomerHandler, error) {
	svc, err := crmvc.NewCrmCustomerService()
	if err != nil {
		return nil, fmt.Errorf("tạo CrmCustomerService: %w", err)
	}
	return &CrmCustomerHandler{CustomerService: svc}, nil
}

// HandleCreateCustomer xử lý POST /customer/
// @Summary 고객 생성
// @Tags 고객
// @Accept json
// @Produce json
// @Param customer body crmdto.CustomerCreateInput true "고객"
// @Success 201 {object} crmmodels.Customer
// @Failure 422 {object} map[string]interface{}
// @Router /customer/ [post]
func (h *CrmCustomerHandler) HandleCreateCustomer(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input crmdto.CustomerCreateInput
		if err := bindBody(c, &input); err != nil {
			return err
		}
		customer, err := h.CustomerService.CreateCustomer(basehdl.RequestContext(c), &input)
		if err != nil {
			return err
		}
		return basehdl.HandleSuccessResponse(c, common.StatusCreated, common.MsgCreated, customer)
	})
}

// HandleListCustomers xử lý GET /customer/?page=&per_page=
// @Summary 고객 목록
// @Tags 고객
// @Produce json
// @Param page query int false "page" default(1)
// @Param per_page query int false "per_page" default(10)
// @Success 200 {array} crmmodels.Customer
// @Failure 422 {object} map[string]interface{}
// @Router /customer/ [get]
func (h *CrmCustomerHandler) HandleListCustomers(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		page, perPage, err := basehdl.ParsePagination(c)
		if err != nil {
			return err
		}
		customers, err := h.CustomerService.ListCustomers(basehdl.RequestContext(c), page, perPage)
		if err != nil {
			return err
		}
		return basehdl.HandleSuccessResponse(c, common.StatusOK, common.MsgSuccess, customers)
	})
}

// HandleSearchCustomer xử lý GET /customer/:id; id là ObjectID, tiền tố cust_name hoặc hậu tố cust_mobile
// @Summary 고객 검색
// @Tags 고객
// @Produce json
// @Param id path string true "ID, 이름 또는 전화번호"
// @Success 200 {object} crmmodels.Customer
// @Failure 404 {object} map[string]interface{}
// @Router /customer/{id} [get]
func (h *CrmCustomerHandler) HandleSearchCustomer(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		customer, err := h.CustomerService.SearchCustomer(basehdl.RequestContext(c), c.Params("id"))
		if err != nil {
			return err
		}
		return basehdl.HandleSuccessResponse(c, common.StatusOK, common.MsgSuccess, customer)
	})
}

// HandleUpdateCustomer xử lý PUT /customer/:id
// @Summary 고객 수정
// @Description 보낸 필드만 수정합니다. 빈 문자열은 필드를 삭제합니다.
// @Tags 고객
// @Accept json
// @Produce json
// @Param id path string true "고객 ID"
// @Param customer body crmdto.CustomerPatch true "수정할 필드"
// @Success 200 {object} crmmodels.Customer
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /customer/{id} [put]
func (h *CrmCustomerHandler) HandleUpdateCustomer(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var patch crmdto.CustomerPatch
		if err := bindBody(c, &patch); err != nil {
			return err
		}
		customer, err := h.CustomerService.UpdateCustomer(basehdl.RequestContext(c), c.Params("id"), &patch)
		if err != nil {
			return err
		}
		return basehdl.HandleSuccessResponse(c, common.StatusOK, common.MsgSuccess, customer)
	})
}

// HandleDeleteCustomer xử lý DELETE /customer/:id, thành công trả về 204 không có body
// @Summary 고객 삭제
// @Tags 고객
// @Param id path string true "고객 ID"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /customer/{id} [delete]
func (h *CrmCustomerHandler) HandleDeleteCustomer(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := h.CustomerService.DeleteCustomer(basehdl.RequestContext(c), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(common.StatusNoContent)
	})
}

// bindBody parse JSON body; body sai định dạng là lỗi 422 như field không hợp lệ
func bindBody(c fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.Bind().JSON(out); err != nil {
		return common.NewValidationError(err.Error())
	}
	return nil
}
