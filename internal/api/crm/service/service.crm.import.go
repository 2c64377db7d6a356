// Package crmvc - Import khách hàng từ file CSV.
package crmvc

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	basesvc "touch_crm/internal/api/base/service"
	crmdto "touch_crm/internal/api/crm/dto"
	crmmodels "touch_crm/internal/api/crm/models"
	"touch_crm/internal/api/events"
	"touch_crm/internal/common"
	"touch_crm/internal/global"
	"touch_crm/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// historyPrefix: cột có tên bắt đầu bằng tiền tố này trở thành một touch (touch_desc = giá trị ô)
const historyPrefix = "cust_history"

const utf8BOM = "\ufeff"

// CrmImportService ghi khách và touch từ CSV. Không atomic: lỗi giữa chừng giữ nguyên các dòng đã ghi.
type CrmImportService struct {
	customers *basesvc.BaseServiceMongoImpl[bson.M]
	touches   *basesvc.BaseServiceMongoImpl[crmmodels.Touch]
}

// NewCrmImportService tạo CrmImportService từ các collection đã đăng ký.
func NewCrmImportService() (*CrmImportService, error) {
	customers, err := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Customers)
	if err != nil {
		return nil, err
	}
	touches, err := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Touchs)
	if err != nil {
		return nil, err
	}
	return newCrmImportService(customers, touches), nil
}

func newCrmImportService(customers, touches *mongo.Collection) *CrmImportService {
	return &CrmImportService{
		customers: basesvc.NewBaseServiceMongo[bson.M](customers),
		touches:   basesvc.NewBaseServiceMongo[crmmodels.Touch](touches),
	}
}

// ImportCustomers đọc CSV (UTF-8, dòng đầu là header) và với mỗi dòng:
// ghi một khách từ các cột không rỗng, rồi ghi một touch cho mỗi cột cust_history* không rỗng.
// Dòng không có cust_name bị bỏ qua và được đếm vào Skipped.
func (s *CrmImportService) ImportCustomers(ctx context.Context, r io.Reader) (*crmdto.ImportResult, error) {
	result := &crmdto.ImportResult{}
	log := logger.WithContext(ctx).WithField("module", "crm").WithField("collection", s.customers.Collection().Name())

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // cho phép dòng ngắn/dài hơn header
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return result, nil
	}
	if err != nil {
		return result, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if extras := extraColumns(header); len(extras) > 0 {
		log.WithField("columns", extras).Info("CSV columns outside the customer schema are stored as-is")
	}

	defer func() {
		if result.Customers > 0 {
			events.EmitDataChanged(ctx, events.DataChangeEvent{
				CollectionName: s.customers.Collection().Name(),
				Operation:      events.OpImport,
				Document:       *result,
			})
		}
	}()

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, importFailure(common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, nil), line, result)
		}

		customer, descs := splitRow(header, record)
		if _, ok := customer["cust_name"]; !ok {
			result.Skipped++
			continue
		}

		custID, err := s.customers.InsertOneID(ctx, customer)
		if err != nil {
			return result, importFailure(err, line, result)
		}
		result.Customers++

		if len(descs) == 0 {
			continue
		}
		touches := make([]crmmodels.Touch, 0, len(descs))
		for _, desc := range descs {
			touches = append(touches, crmmodels.Touch{CustID: custID, Desc: desc})
		}
		ids, err := s.touches.InsertMany(ctx, touches)
		if err != nil {
			return result, importFailure(err, line, result)
		}
		result.Touches += len(ids)
	}

	log.WithField("customers", result.Customers).
		WithField("touches", result.Touches).
		WithField("skipped", result.Skipped).
		Info("CSV import finished")
	return result, nil
}

// splitRow tách một dòng CSV thành document khách và danh sách touch_desc.
// Ô rỗng bị bỏ; header trùng tên thì cột sau thắng; ô thừa so với header bị bỏ.
func splitRow(header, record []string) (bson.M, []string) {
	customer := bson.M{}
	var descs []string
	for i, name := range header {
		if i >= len(record) {
			break
		}
		value := record[i]
		if value == "" || name == "" || name == "_id" {
			continue
		}
		if strings.HasPrefix(name, historyPrefix) {
			descs = append(descs, value)
			continue
		}
		customer[name] = value
	}
	return customer, descs
}

// extraColumns trả về các cột không thuộc Customer và không phải cust_history*
func extraColumns(header []string) []string {
	known := make(map[string]bool, len(crmmodels.CustomerFields))
	for _, name := range crmmodels.CustomerFields {
		known[name] = true
	}
	var extras []string
	for _, name := range header {
		if name == "" || name == "_id" || known[name] || strings.HasPrefix(name, historyPrefix) {
			continue
		}
		extras = append(extras, name)
	}
	return extras
}

// importFailure giữ status/mã của lỗi gốc và ghi tiến độ import vào Details
func importFailure(err error, line int, result *crmdto.ImportResult) error {
	var appErr *common.Error
	if !errors.As(common.ConvertMongoError(err), &appErr) {
		return err
	}
	return common.NewError(appErr.Code, appErr.Message, appErr.StatusCode, map[string]interface{}{
		"line":     line,
		"imported": *result,
	})
}
