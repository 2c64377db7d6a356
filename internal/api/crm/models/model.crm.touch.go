// Package models - Touch thuộc domain CRM (touchs).
// Lịch sử tiếp xúc với khách, liên kết qua cust_id, không có ràng buộc tham chiếu.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Touch lưu một lần tiếp xúc với khách (touchs).
type Touch struct {
	ID primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`

	CustID primitive.ObjectID `json:"cust_id" bson:"cust_id" index:"single:1"`

	Date    string       `json:"touch_date,omitempty" bson:"touch_date,omitempty"`
	Time    string       `json:"touch_time,omitempty" bson:"touch_time,omitempty"`
	Desc    string       `json:"touch_desc,omitempty" bson:"touch_desc,omitempty"`
	Partner string       `json:"touch_partner,omitempty" bson:"touch_partner,omitempty"` // Ai tạo ra lần tiếp xúc
	Channel TouchChannel `json:"touch_chann,omitempty" bson:"touch_chann,omitempty"`
	Type    TouchType    `json:"touch_type,omitempty" bson:"touch_type,omitempty"`

	ModifiedDate string `json:"modified_date,omitempty" bson:"modified_date,omitempty"`
}
