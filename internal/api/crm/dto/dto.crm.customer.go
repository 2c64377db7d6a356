// Package dto - DTO cho domain CRM (customer, touch, import).
package dto

import (
	"touch_crm/internal/api/crm/models"
	"touch_crm/internal/utility"
)

// CustomerCreateInput dữ liệu tạo khách. Chỉ cust_name bắt buộc.
type CustomerCreateInput struct {
	Name    string `json:"cust_name" validate:"required,not_blank" example:"박천수"`
	Mobile  string `json:"cust_mobile" example:"010-1234-5678"`
	Type    string `json:"cust_type" example:"비회원"`
	Email   string `json:"cust_email" validate:"omitempty,email"`
	Route   string `json:"cust_route"`
	Date    string `json:"cust_date"`
	Purpose string `json:"cust_purpose"`
	Area    string `json:"cust_area"`
	Status  string `json:"cust_status"`
	Remark  string `json:"cust_remark"`
}

// ToModel chuyển input thành Customer; chuỗi rỗng bị loại lúc insert
func (in *CustomerCreateInput) ToModel() models.Customer {
	return models.Customer{
		Name:    in.Name,
		Mobile:  in.Mobile,
		Type:    in.Type,
		Email:   in.Email,
		Route:   in.Route,
		Date:    in.Date,
		Purpose: in.Purpose,
		Area:    in.Area,
		Status:  in.Status,
		Remark:  in.Remark,
	}
}

// CustomerPatch dữ liệu cập nhật một phần.
// nil = giữ nguyên, "" = xóa field ($unset), giá trị khác = $set. cust_name không được xóa.
type CustomerPatch struct {
	Name    *string `json:"cust_name,omitempty" validate:"omitnil,not_blank"`
	Mobile  *string `json:"cust_mobile,omitempty"`
	Type    *string `json:"cust_type,omitempty"`
	Email   *string `json:"cust_email,omitempty" validate:"omitempty,email"`
	Route   *string `json:"cust_route,omitempty"`
	Date    *string `json:"cust_date,omitempty"`
	Purpose *string `json:"cust_purpose,omitempty"`
	Area    *string `json:"cust_area,omitempty"`
	Status  *string `json:"cust_status,omitempty"`
	Remark  *string `json:"cust_remark,omitempty"`
}

// ToUpdate xây dựng $set/$unset từ các field có mặt
func (p *CustomerPatch) ToUpdate() *utility.BsonWrapper {
	update := &utility.BsonWrapper{}
	applyField(update, "cust_name", p.Name)
	applyField(update, "cust_mobile", p.Mobile)
	applyField(update, "cust_type", p.Type)
	applyField(update, "cust_email", p.Email)
	applyField(update, "cust_route", p.Route)
	applyField(update, "cust_date", p.Date)
	applyField(update, "cust_purpose", p.Purpose)
	applyField(update, "cust_area", p.Area)
	applyField(update, "cust_status", p.Status)
	applyField(update, "cust_remark", p.Remark)
	return update
}

// applyField thêm một field vào update: nil bỏ qua, "" vào $unset, còn lại vào $set
func applyField(update *utility.BsonWrapper, key string, value *string) {
	if value == nil {
		return
	}
	if *value == "" {
		if update.Unset == nil {
			update.Unset = make(map[string]interface{})
		}
		update.Unset[key] = ""
		return
	}
	if update.Set == nil {
		update.Set = make(map[string]interface{})
	}
	update.Set[key] = *value
}
