// Package models - Customer thuộc domain CRM (customers).
// Tên field giữ nguyên theo dữ liệu cũ để header CSV map 1:1.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer lưu thông tin khách hàng (customers).
// Field tùy chọn vắng mặt trong DB thay vì lưu chuỗi rỗng.
type Customer struct {
	ID primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`

	Name    string `json:"cust_name" bson:"cust_name" index:"single:1"`
	Mobile  string `json:"cust_mobile,omitempty" bson:"cust_mobile,omitempty" index:"single:1"`
	Type    string `json:"cust_type,omitempty" bson:"cust_type,omitempty"`
	Email   string `json:"cust_email,omitempty" bson:"cust_email,omitempty"`
	Route   string `json:"cust_route,omitempty" bson:"cust_route,omitempty"`
	Date    string `json:"cust_date,omitempty" bson:"cust_date,omitempty"` // Ngày đăng ký, chuỗi tự do
	Purpose string `json:"cust_purpose,omitempty" bson:"cust_purpose,omitempty"`
	Area    string `json:"cust_area,omitempty" bson:"cust_area,omitempty"`
	Status  string `json:"cust_status,omitempty" bson:"cust_status,omitempty"`
	Remark  string `json:"cust_remark,omitempty" bson:"cust_remark,omitempty"`

	ModifiedDate string `json:"modified_date,omitempty" bson:"modified_date,omitempty"` // RFC3339 UTC, server set
}

// CustomerFields là các field của Customer theo tên trên wire; import CSV báo các cột ngoài danh sách này
var CustomerFields = []string{
	"cust_name", "cust_mobile", "cust_type", "cust_email", "cust_route",
	"cust_date", "cust_purpose", "cust_area", "cust_status", "cust_remark",
}
