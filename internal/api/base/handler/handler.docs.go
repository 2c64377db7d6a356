package basehdl

import (
	"github.com/gofiber/fiber/v3"
	"github.com/swaggo/swag"

	"touch_crm/internal/common"
)

// DocsHandler phục vụ tài liệu OpenAPI đã đăng ký với swag và trang Swagger UI
type DocsHandler struct {
	instanceName string
	specPath     string
}

// NewDocsHandler tạo DocsHandler; instanceName là tên đã swag.Register, specPath là URL của JSON cho UI
func NewDocsHandler(instanceName, specPath string) *DocsHandler {
	return &DocsHandler{instanceName: instanceName, specPath: specPath}
}

// HandleSpec trả về tài liệu OpenAPI dạng JSON
func (h *DocsHandler) HandleSpec(c fiber.Ctx) error {
	doc, err := swag.ReadDoc(h.instanceName)
	if err != nil {
		return HandleErrorResponse(c, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err))
	}
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(common.StatusOK).SendString(doc)
}

// HandleUI trả về trang Swagger UI trỏ tới specPath
func (h *DocsHandler) HandleUI(c fiber.Ctx) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.Status(common.StatusOK).SendString(swaggerUIHead + h.specPath + swaggerUITail)
}

const swaggerUIHead = `<!doctype html>
<html lang="ko">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width,initial-scale=1" />
    <title>touch_crm Swagger UI</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.onload = () => {
        window.ui = SwaggerUIBundle({
          url: '`

const swaggerUITail = `',
          dom_id: '#swagger-ui'
        });
      };
    </script>
  </body>
</html>`
