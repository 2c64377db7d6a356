package common

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest          = 400 // Yêu cầu không hợp lệ (định danh sai, thiếu file...)
	StatusNotFound            = 404 // Không tìm thấy tài nguyên
	StatusConflict            = 409 // Xung đột dữ liệu
	StatusUnprocessableEntity = 422 // Dữ liệu body/field không qua được validate
	StatusTooManyRequests     = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages (hiển thị cho client, tiếng Hàn theo hệ thống gốc)
const (
	MsgSuccess = "성공"
	MsgCreated = "생성되었습니다."

	MsgBadRequest         = "잘못된 요청입니다."
	MsgNotFound           = "데이터를 찾을수 없습니다."
	MsgTooManyRequests    = "요청이 너무 많습니다. 잠시 후 다시 시도하세요."
	MsgInternalError      = "서버 오류가 발생했습니다."
	MsgServiceUnavailable = "서비스를 사용할 수 없습니다."

	MsgValidationError   = "입력값이 올바르지 않습니다."
	MsgInvalidIdentifier = "올바르지 않은 ID 입니다."
	MsgInvalidFormat     = "데이터 형식이 올바르지 않습니다."
	MsgDatabaseError     = "데이터베이스 오류가 발생했습니다."
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: VAL_001)
	Category    string // Phân loại lỗi
	SubCategory string // Phân loại con
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu (JSON, CSV, multipart)",
	}

	ErrCodeInvalidIdentifier = ErrorCode{
		Code:        "VAL_003",
		Category:    "Validation",
		SubCategory: "Identifier",
		Description: "Định danh không phải ObjectID 24 ký tự hex",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	ErrCodeNotFound = ErrorCode{
		Code:        "DB_003",
		Category:    "Database",
		SubCategory: "NotFound",
		Description: "Không có document nào khớp",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Lỗi thao tác nghiệp vụ",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is so khớp theo mã lỗi, nên mọi lỗi NotFound (kể cả message có id) đều khớp ErrNotFound.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code.Code == t.Code.Code
}

// Unwrap trả về lỗi gốc nếu Details là error
func (e *Error) Unwrap() error {
	if err, ok := e.Details.(error); ok {
		return err
	}
	return nil
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Validation Errors
	ErrInvalidInput      = NewError(ErrCodeValidationInput, MsgValidationError, StatusUnprocessableEntity, nil)
	ErrInvalidFormat     = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrInvalidIdentifier = NewError(ErrCodeInvalidIdentifier, MsgInvalidIdentifier, StatusBadRequest, nil)

	// Database Errors
	ErrNotFound = NewError(ErrCodeNotFound, MsgNotFound, StatusNotFound, nil)
)

// NewNotFoundError tạo lỗi 404 có nêu id/chuỗi tìm kiếm.
// subject đã kèm trợ từ, ví dụ NewNotFoundError("고객을", id) -> "<id> 고객을 찾을수 없습니다."
func NewNotFoundError(subject, id string) error {
	return NewError(ErrCodeNotFound, fmt.Sprintf("%s %s 찾을수 없습니다.", id, subject), StatusNotFound, map[string]any{"id": id})
}

// NewValidationError tạo lỗi 422 với danh sách field lỗi trong Details
func NewValidationError(details any) error {
	return NewError(ErrCodeValidationInput, MsgValidationError, StatusUnprocessableEntity, details)
}

// NewInvalidIdentifierError tạo lỗi 400 cho định danh không hợp lệ
func NewInvalidIdentifierError(id string) error {
	return NewError(ErrCodeInvalidIdentifier, fmt.Sprintf("%s: %s", MsgInvalidIdentifier, id), StatusBadRequest, map[string]any{"id": id})
}

// MongoDB Error Messages
const (
	MsgMongoConnection = "MongoDB 연결 오류"
	MsgMongoNetwork    = "MongoDB 네트워크 오류"
	MsgMongoTimeout    = "MongoDB 연결 시간 초과"
	MsgMongoQuery      = "MongoDB 조회 오류"
	MsgMongoWrite      = "MongoDB 쓰기 오류"
	MsgMongoDuplicate  = "MongoDB 중복 데이터"
	MsgMongoSystem     = "MongoDB 시스템 오류"
)

// MongoDB Specific Errors
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, MsgMongoConnection, StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, MsgMongoNetwork, StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, MsgMongoTimeout, StatusServiceUnavailable, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, MsgMongoQuery, StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, MsgMongoWrite, StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, MsgMongoDuplicate, StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, MsgMongoSystem, StatusInternalServerError, nil)
)

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống.
// Lỗi đã là *Error (NotFound, Validation...) được giữ nguyên.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// Duplicate key có thể nằm trong WriteException nên kiểm tra trước CommandError
	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch {
		case cmdErr.Code >= 100 && cmdErr.Code < 200:
			return ErrMongoConnection
		case cmdErr.Code >= 300 && cmdErr.Code < 400:
			return ErrMongoQuery
		case cmdErr.Code >= 400 && cmdErr.Code < 500:
			return ErrMongoWrite
		default:
			return ErrMongoSystem
		}
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return ErrMongoWrite
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
