package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"touch_crm/internal/common"
)

// ParseObjectID chuyển chuỗi 24 ký tự hex thành ObjectID.
// Chuỗi không hợp lệ trả về lỗi InvalidIdentifier (400), không bao giờ chạm tới database.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewInvalidIdentifierError(id)
	}
	return objectID, nil
}

// ObjectID2String chuyển đổi ObjectID thành chuỗi hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}
