package router

import (
	"github.com/gofiber/fiber/v3"

	basehdl "touch_crm/internal/api/base/handler"
)

// Fiber v3 không gọi middleware truyền trực tiếp vào router.Get(path, mw, handler) trong một số trường hợp.
// Luôn đăng ký middleware của route qua RegisterRouteWithMiddleware (group + .Use()).

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(root fiber.Router) error

// RegisterRouteWithMiddleware đăng ký route với middleware sử dụng .Use() method
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Middleware chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case fiber.MethodGet:
		routeGroup.Get(path, handler)
	case fiber.MethodPost:
		routeGroup.Post(path, handler)
	case fiber.MethodPut:
		routeGroup.Put(path, handler)
	case fiber.MethodDelete:
		routeGroup.Delete(path, handler)
	}
}

// Options cho các route hệ thống (health, tài liệu OpenAPI)
type Options struct {
	System *basehdl.SystemHandler
	Docs   *basehdl.DocsHandler
}

// SetupRoutes đăng ký route hệ thống rồi lần lượt Register của từng domain (tránh import cycle).
// Route CRM nằm ở gốc (/customer, /touch) để giữ nguyên đường dẫn của client cũ.
func SetupRoutes(app *fiber.App, opts Options, regs ...RegisterFunc) error {
	if opts.System != nil {
		RegisterRouteWithMiddleware(app, "/system", fiber.MethodGet, "/health", nil, opts.System.HandleHealth)
	}
	if opts.Docs != nil {
		app.Get("/openapi.json", opts.Docs.HandleSpec)
		app.Get("/docs", opts.Docs.HandleUI)
	}

	for _, reg := range regs {
		if err := reg(app); err != nil {
			return err
		}
	}
	return nil
}
