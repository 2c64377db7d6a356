// Package crmvc - Service lịch sử tiếp xúc (touchs).
package crmvc

import (
	"context"

	basesvc "touch_crm/internal/api/base/service"
	crmdto "touch_crm/internal/api/crm/dto"
	crmmodels "touch_crm/internal/api/crm/models"
	"touch_crm/internal/common"
	"touch_crm/internal/global"
	"touch_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CrmTouchService xử lý touch của khách.
type CrmTouchService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Touch]
}

// NewCrmTouchService tạo CrmTouchService từ collection đã đăng ký.
func NewCrmTouchService() (*CrmTouchService, error) {
	coll, err := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Touchs)
	if err != nil {
		return nil, err
	}
	return newCrmTouchService(coll), nil
}

func newCrmTouchService(coll *mongo.Collection) *CrmTouchService {
	return &CrmTouchService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Touch](coll),
	}
}

// ListTouches trả về một trang touch của khách.
// Trang rỗng (kể cả khách chưa có touch nào) trả về 404.
func (s *CrmTouchService) ListTouches(ctx context.Context, custID string, page, perPage int64) ([]crmmodels.Touch, error) {
	oid, err := utility.ParseObjectID(custID)
	if err != nil {
		return nil, err
	}

	touches, err := s.FindWithPagination(ctx, bson.M{"cust_id": oid}, page, perPage)
	if err != nil {
		return nil, err
	}
	if len(touches) == 0 {
		return nil, common.NewNotFoundError(subjectHistory, custID)
	}
	return touches, nil
}

// CreateTouch tạo touch cho khách custID; cust_id trong body bị bỏ qua.
// Không kiểm tra khách có tồn tại.
func (s *CrmTouchService) CreateTouch(ctx context.Context, custID string, input *crmdto.TouchCreateInput) (*crmmodels.Touch, error) {
	oid, err := utility.ParseObjectID(custID)
	if err != nil {
		return nil, err
	}
	if err := global.ValidateStruct(input); err != nil {
		return nil, err
	}

	touch := input.ToModel()
	touch.CustID = oid
	created, err := s.InsertOne(ctx, touch)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTouch cập nhật một phần touch theo id, cùng quy ước với UpdateCustomer.
func (s *CrmTouchService) UpdateTouch(ctx context.Context, id string, patch *crmdto.TouchPatch) (*crmmodels.Touch, error) {
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	if err := global.ValidateStruct(patch); err != nil {
		return nil, err
	}

	touch, err := s.UpdateById(ctx, oid, patch.ToUpdate())
	if err != nil {
		return nil, notFoundAs(err, subjectTouch, id)
	}
	return &touch, nil
}
