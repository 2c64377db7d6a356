// Package crmvc - Service khách hàng CRM (customers).
package crmvc

import (
	"context"
	"errors"
	"regexp"

	basesvc "touch_crm/internal/api/base/service"
	crmdto "touch_crm/internal/api/crm/dto"
	crmmodels "touch_crm/internal/api/crm/models"
	"touch_crm/internal/common"
	"touch_crm/internal/global"
	"touch_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Chủ ngữ (đã kèm trợ từ) cho message 404
const (
	subjectCustomer = "고객을"
	subjectTouch    = "터치를"
	subjectHistory  = "고객의 history를"
)

// CrmCustomerService xử lý CRUD và tìm kiếm khách hàng.
type CrmCustomerService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Customer]
}

// NewCrmCustomerService tạo CrmCustomerService từ collection đã đăng ký.
func NewCrmCustomerService() (*CrmCustomerService, error) {
	coll, err := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Customers)
	if err != nil {
		return nil, err
	}
	return newCrmCustomerService(coll), nil
}

func newCrmCustomerService(coll *mongo.Collection) *CrmCustomerService {
	return &CrmCustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Customer](coll),
	}
}

// CreateCustomer validate input rồi tạo khách mới. Không kiểm tra trùng tên/số điện thoại.
func (s *CrmCustomerService) CreateCustomer(ctx context.Context, input *crmdto.CustomerCreateInput) (*crmmodels.Customer, error) {
	if err := global.ValidateStruct(input); err != nil {
		return nil, err
	}
	customer, err := s.InsertOne(ctx, input.ToModel())
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListCustomers trả về một trang khách theo thứ tự tự nhiên của store.
func (s *CrmCustomerService) ListCustomers(ctx context.Context, page, perPage int64) ([]crmmodels.Customer, error) {
	return s.FindWithPagination(ctx, bson.M{}, page, perPage)
}

// SearchCustomer trả về khách đầu tiên có cust_name bắt đầu bằng text hoặc cust_mobile kết thúc bằng text.
// text là ObjectID hợp lệ thì khớp thêm theo _id. Ký tự đặc biệt của regex trong text được hiểu theo nghĩa đen.
func (s *CrmCustomerService) SearchCustomer(ctx context.Context, text string) (*crmmodels.Customer, error) {
	if text == "" {
		return nil, common.NewNotFoundError(subjectCustomer, text)
	}

	escaped := regexp.QuoteMeta(text)
	or := bson.A{
		bson.M{"cust_name": primitive.Regex{Pattern: "^" + escaped}},
		bson.M{"cust_mobile": primitive.Regex{Pattern: escaped + "$"}},
	}
	if oid, err := utility.ParseObjectID(text); err == nil {
		or = append(bson.A{bson.M{"_id": oid}}, or...)
	}

	customer, err := s.FindOne(ctx, bson.M{"$or": or}, nil)
	if err != nil {
		return nil, notFoundAs(err, subjectCustomer, text)
	}
	return &customer, nil
}

// UpdateCustomer cập nhật một phần khách theo id.
// Patch rỗng trả về bản ghi hiện có; id không tồn tại trả về 404.
func (s *CrmCustomerService) UpdateCustomer(ctx context.Context, id string, patch *crmdto.CustomerPatch) (*crmmodels.Customer, error) {
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	if err := global.ValidateStruct(patch); err != nil {
		return nil, err
	}

	customer, err := s.UpdateById(ctx, oid, patch.ToUpdate())
	if err != nil {
		return nil, notFoundAs(err, subjectCustomer, id)
	}
	return &customer, nil
}

// DeleteCustomer xóa khách theo id. Touch của khách không bị xóa theo.
func (s *CrmCustomerService) DeleteCustomer(ctx context.Context, id string) error {
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return err
	}
	if err := s.DeleteById(ctx, oid); err != nil {
		return notFoundAs(err, subjectCustomer, id)
	}
	return nil
}

// notFoundAs thay ErrNotFound chung bằng lỗi 404 có nêu id; lỗi khác giữ nguyên
func notFoundAs(err error, subject, id string) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NewNotFoundError(subject, id)
	}
	return err
}
