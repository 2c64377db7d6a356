package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// BsonWrapper chứa các toán tử update dùng trong hệ thống.
// Map rỗng hoặc nil bị bỏ qua khi mã hóa nhờ omitempty.
type BsonWrapper struct {
	// Set sẽ đặt dữ liệu trong db, sau khi mã hóa: { $set : {cust_name : "Jack"}}
	Set map[string]interface{} `json:"$set,omitempty" bson:"$set,omitempty"`

	// Unset xóa field khỏi document, sau khi mã hóa: { $unset: { cust_mobile: "" } }
	Unset map[string]interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`
}

// IsEmpty trả về true khi không có thao tác nào
func (w *BsonWrapper) IsEmpty() bool {
	return w == nil || (len(w.Set) == 0 && len(w.Unset) == 0)
}

// ToMap chuyển struct thành map theo tag bson (marshal rồi unmarshal)
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err = bson.Unmarshal(itr, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}

// DropEmptyStrings xóa các field có giá trị chuỗi rỗng khỏi map.
// Field tùy chọn không bao giờ được lưu dưới dạng "" mà phải vắng mặt.
func DropEmptyStrings(m map[string]interface{}) map[string]interface{} {
	for key, value := range m {
		if strValue, ok := value.(string); ok && strValue == "" {
			delete(m, key)
		}
	}
	return m
}
