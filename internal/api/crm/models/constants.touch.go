// Package models - Constants cho kênh và loại touch.
package models

// TouchChannel là kênh tiếp xúc, lưu và truyền dưới dạng chuỗi.
type TouchChannel string

// Các kênh tiếp xúc.
const (
	TouchChannelCall    TouchChannel = "call"
	TouchChannelVisit   TouchChannel = "visit"
	TouchChannelSMS     TouchChannel = "sms"
	TouchChannelEmail   TouchChannel = "email"
	TouchChannelMessage TouchChannel = "message"
	TouchChannelOther   TouchChannel = "other"
)

// TouchChannels là tập giá trị hợp lệ của TouchChannel
var TouchChannels = []TouchChannel{
	TouchChannelCall, TouchChannelVisit, TouchChannelSMS,
	TouchChannelEmail, TouchChannelMessage, TouchChannelOther,
}

// IsValid kiểm tra giá trị thuộc tập kênh đã định nghĩa
func (c TouchChannel) IsValid() bool {
	for _, v := range TouchChannels {
		if c == v {
			return true
		}
	}
	return false
}

// TouchType là loại tiếp xúc (chiều và hình thức), lưu và truyền dưới dạng chuỗi.
type TouchType string

// Các loại tiếp xúc.
const (
	TouchTypeInboundCall   TouchType = "inbound_call"
	TouchTypeOutboundCall  TouchType = "outbound_call"
	TouchTypeInboundVisit  TouchType = "inbound_visit"
	TouchTypeOutboundVisit TouchType = "outbound_visit"
	TouchTypeMessage       TouchType = "message"
	TouchTypeEmail         TouchType = "email"
	TouchTypeOther         TouchType = "other"
)

// TouchTypes là tập giá trị hợp lệ của TouchType
var TouchTypes = []TouchType{
	TouchTypeInboundCall, TouchTypeOutboundCall, TouchTypeInboundVisit,
	TouchTypeOutboundVisit, TouchTypeMessage, TouchTypeEmail, TouchTypeOther,
}

// IsValid kiểm tra giá trị thuộc tập loại đã định nghĩa
func (t TouchType) IsValid() bool {
	for _, v := range TouchTypes {
		if t == v {
			return true
		}
	}
	return false
}
