package dto

import (
	"touch_crm/internal/api/crm/models"
	"touch_crm/internal/utility"
)

// TouchCreateInput dữ liệu tạo touch. cust_id luôn lấy từ path, giá trị trong body bị ghi đè.
type TouchCreateInput struct {
	CustID  string              `json:"cust_id,omitempty" swaggerignore:"true"`
	Date    string              `json:"touch_date" example:"2023-10-10"`
	Time    string              `json:"touch_time" example:"17:30"`
	Desc    string              `json:"touch_desc" example:"터치한 내용을 입력"`
	Partner string              `json:"touch_partner"`
	Channel models.TouchChannel `json:"touch_chann" validate:"omitempty,enum" example:"call"`
	Type    models.TouchType    `json:"touch_type" validate:"omitempty,enum" example:"inbound_call"`
}

// ToModel chuyển input thành Touch (chưa có cust_id)
func (in *TouchCreateInput) ToModel() models.Touch {
	return models.Touch{
		Date:    in.Date,
		Time:    in.Time,
		Desc:    in.Desc,
		Partner: in.Partner,
		Channel: in.Channel,
		Type:    in.Type,
	}
}

// TouchPatch dữ liệu cập nhật một phần touch, cùng quy ước với CustomerPatch.
// cust_id không cập nhật được.
type TouchPatch struct {
	Date    *string              `json:"touch_date,omitempty"`
	Time    *string              `json:"touch_time,omitempty"`
	Desc    *string              `json:"touch_desc,omitempty"`
	Partner *string              `json:"touch_partner,omitempty"`
	Channel *models.TouchChannel `json:"touch_chann,omitempty" validate:"omitempty,enum"`
	Type    *models.TouchType    `json:"touch_type,omitempty" validate:"omitempty,enum"`
}

// ToUpdate xây dựng $set/$unset từ các field có mặt
func (p *TouchPatch) ToUpdate() *utility.BsonWrapper {
	update := &utility.BsonWrapper{}
	applyField(update, "touch_date", p.Date)
	applyField(update, "touch_time", p.Time)
	applyField(update, "touch_desc", p.Desc)
	applyField(update, "touch_partner", p.Partner)
	applyField(update, "touch_chann", (*string)(p.Channel))
	applyField(update, "touch_type", (*string)(p.Type))
	return update
}
