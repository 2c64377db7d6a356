// Package crmhdl - Handler import khách hàng từ CSV.
package crmhdl

import (
	"context"
	"fmt"
	"io"

	basehdl "touch_crm/internal/api/base/handler"
	crmdto "touch_crm/internal/api/crm/dto"
	crmvc "touch_crm/internal/api/crm/service"
	"touch_crm/internal/common"

	"github.com/gofiber/fiber/v3"
)

// MsgImported là message trả về khi import xong
const MsgImported = "고객이 생성되었습니다."

// ImportService là thao tác handler cần từ service import
type ImportService interface {
	ImportCustomers(ctx context.Context, r io.Reader) (*crmdto.ImportResult, error)
}

// CrmImportHandler xử lý upload file CSV khách hàng.
type CrmImportHandler struct {
	ImportService ImportService
}

// NewCrmImportHandler tạo CrmImportHandler mới.
func NewCrmImportHandler() (*CrmImportHandler, error) {
	svc, err := crmvc.NewCrmImportService()
	if err != nil {
		return nil, fmt.Errorf("tạo CrmImportService: %w", err)
	}
	return &CrmImportHandler{ImportService: svc}, nil
}

// HandleImportCustomers xử lý POST /customer/file (multipart, field "file")
// @Summary 고객 CSV 업로드
// @Description 헤더 행의 필드명으로 고객을 생성합니다. cust_history 로 시작하는 열은 터치로 저장됩니다.
// @Tags 고객
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV (UTF-8)"
// @Success 201 {object} crmdto.ImportResult
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /customer/file [post]
func (h *CrmImportHandler) HandleImportCustomers(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		fh, err := c.FormFile("file")
		if err != nil {
			return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, map[string]interface{}{"field": "file"})
		}
		f, err := fh.Open()
		if err != nil {
			return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, map[string]interface{}{"field": "file"})
		}
		defer f.Close()

		result, err := h.ImportService.ImportCustomers(basehdl.RequestContext(c), f)
		if err != nil {
			return err
		}
		return basehdl.HandleSuccessResponse(c, common.StatusCreated, MsgImported, result)
	})
}
