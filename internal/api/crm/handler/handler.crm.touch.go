// Package crmhdl - Handler lịch sử tiếp xúc (touch) của khách.
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

// TouchService là các thao tác handler cần từ service touch
type TouchService interface {
	ListTouches(ctx context.Context, custID string, page, perPage int64) ([]crmmodels.Touch, error)
	CreateTouch(ctx context.Context, custID string, input *crmdto.TouchCreateInput) (*crmmodels.Touch, error)
	UpdateTouch(ctx context.Context, id string, patch *crmdto.TouchPatch) (*crmmodels.Touch, error)
}

// CrmTouchHandler xử lý API touch.
type CrmTouchHandler struct {
	TouchService TouchService
}

// NewCrmTouchHandler tạo CrmTouchHandler mới.
func NewCrmTouchHandler() (*CrmTouchHandler, error) {
	svc, err := crmvc.NewCrmTouchService()
	if err != nil {
		return nil, fmt.Errorf("tạo CrmTouchService: %w", err)
	}
	return &CrmTouchHandler{TouchService: svc}, nil
}

// HandleListTouches xử lý GET /touch/:cust_id?page=&per_page=
// @Summary 고객 터치 목록
// @Tags 고객 터치
// @Produce json
// @Param cust_id path string true "고객 ID"
// @Param page query int false "page" default(1)
// @Param per_page query int false "per_page" default(10)
// @Success 200 {array} crmmodels.Touch
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /touch/{cust_id} [get]
func (h *CrmTouchHandler) HandleListTouches(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		page, perPage, err := basehdl.ParsePagination(c)
		if err != nil {
			return err
		}
		touches, err := h.TouchService.ListTouches(basehdl.RequestContext(c), c.Params("cust_id"), page, perPage)
		if err != nil {
			return err
		}
		return basehdl.HandleSuccessResponse(c, common.StatusOK, common.MsgSuccess, touches)
	})
}

// HandleCreateTouch xử lý POST /touch/:cust_id; cust_id trong body bị bỏ qua
// @Summary 고객 터치 생성
// @Tags 고객 터치
// @Accept json
// @Produce json
// @Param cust_id path string true "고객 ID"
// @Param touch body crmdto.TouchCreateInput true "터치"
// @Success 201 {object} crmmodels.Touch
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /touch/{cust_id} [post]
func (h *CrmTouchHandler) HandleCreateTouch(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input crmdto.TouchCreateInput
		if err := bindBody(c, &input); err != nil {
			return err
		}
		touch, err := h.TouchService.CreateTouch(basehdl.RequestContext(c), c.Params("cust_id"), &input)
		if err != nil {
			return err
		}
		return basehdl.HandleSuccessResponse(c, common.StatusCreated, common.MsgCreated, touch)
	})
}

// HandleUpdateTouch xử lý PUT /touch/:id
// @Summary 고객 터치 수정
// @Tags 고객 터치
// @Accept json
// @Produce json
// @Param id path string true "터치 ID"
// @Param touch body crmdto.TouchPatch true "수정할 필드"
// @Success 200 {object} crmmodels.Touch
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /touch/{id} [put]
func (h *CrmTouchHandler) HandleUpdateTouch(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var patch crmdto.TouchPatch
		if err := bindBody(c, &patch); err != nil {
			return err
		}
		touch, err := h.TouchService.UpdateTouch(basehdl.RequestContext(c), c.Params("id"), &patch)
		if err != nil {
			return err
		}
		return basehdl.HandleSuccessResponse(c, common.StatusOK, common.MsgSuccess, touch)
	})
}
