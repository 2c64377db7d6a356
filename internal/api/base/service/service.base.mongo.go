// package basesvc cung cấp các service cơ bản cho việc tương tác với MongoDB
package basesvc

import (
	"context"
	"errors"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"touch_crm/internal/api/events"
	"touch_crm/internal/common"
	"touch_crm/internal/utility"
)

// ModifiedDateField là field thời điểm sửa, server tự set ở mọi update có hiệu lực
const ModifiedDateField = "modified_date"

// BaseServiceMongo định nghĩa interface chứa các phương thức cơ bản cho việc tương tác với MongoDB
// Type Parameters:
//   - T: Kiểu dữ liệu của model
type BaseServiceMongo[T any] interface {
	InsertOne(ctx context.Context, data T) (T, error)
	InsertOneID(ctx context.Context, data T) (primitive.ObjectID, error)
	InsertMany(ctx context.Context, data []T) ([]primitive.ObjectID, error)

	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (T, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64) ([]T, error)

	UpdateById(ctx context.Context, id primitive.ObjectID, update *utility.BsonWrapper) (T, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
}

// BaseServiceMongoImpl triển khai BaseServiceMongo trên một collection
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection // Collection MongoDB
}

// NewBaseServiceMongo tạo mới một BaseServiceMongoImpl
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection trả về collection MongoDB
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// InsertOne tạo mới một bản ghi rồi đọc lại bản ghi vừa tạo từ chính collection này.
// Field chuỗi rỗng bị loại trước khi insert để field tùy chọn vắng mặt thay vì rỗng.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	utility.DropEmptyStrings(dataMap)

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// Lấy lại document vừa tạo
	var created T
	err = s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpInsert,
		Document:       created,
	})
	return created, nil
}

// InsertOneID tạo mới một bản ghi và chỉ trả về _id (không đọc lại, không phát event).
// Dùng cho ghi hàng loạt, nơi caller tự phát một event tổng.
func (s *BaseServiceMongoImpl[T]) InsertOneID(ctx context.Context, data T) (primitive.ObjectID, error) {
	dataMap, err := utility.ToMap(data)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidFormat
	}
	utility.DropEmptyStrings(dataMap)

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return primitive.NilObjectID, common.ConvertMongoError(err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, common.NewError(common.ErrCodeDatabase, common.MsgDatabaseError, common.StatusInternalServerError, nil)
	}
	return id, nil
}

// InsertMany tạo nhiều bản ghi, trả về các _id theo thứ tự đầu vào (không đọc lại, không phát event)
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]primitive.ObjectID, error) {
	if len(data) == 0 {
		return []primitive.ObjectID{}, nil
	}

	documents := make([]interface{}, 0, len(data))
	for _, item := range data {
		dataMap, err := utility.ToMap(item)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		documents = append(documents, utility.DropEmptyStrings(dataMap))
	}

	result, err := s.collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	ids := make([]primitive.ObjectID, 0, len(result.InsertedIDs))
	for _, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			ids = append(ids, oid)
		}
	}
	return ids, nil
}

// FindOne tìm một document theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	var result T

	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	err := s.collection.FindOne(ctx, filter, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// Find tìm các document theo điều kiện lọc, luôn trả về slice khác nil
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Đảm bảo luôn trả về mảng, không phải nil
	if results == nil {
		results = []T{}
	}
	return results, nil
}

// FindOneById tìm một document theo ObjectId
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindWithPagination trả về trang page (bắt đầu từ 1) với limit bản ghi theo thứ tự tự nhiên của store.
// skip = (page-1)*limit; trang vượt quá dữ liệu trả về slice rỗng.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64) ([]T, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	// skip tràn int64 thì chắc chắn vượt quá dữ liệu, không cần hỏi store
	if page-1 > math.MaxInt64/limit {
		return []T{}, nil
	}

	opts := options.Find().SetSkip((page - 1) * limit).SetLimit(limit)
	return s.Find(ctx, filter, opts)
}

// UpdateById áp dụng $set/$unset cho document theo id và trả về bản ghi sau khi cập nhật.
// Update rỗng không ghi gì, chỉ trả về bản ghi hiện có. Không khớp document nào trả về ErrNotFound.
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, update *utility.BsonWrapper) (T, error) {
	var zero T
	filter := bson.M{"_id": id}

	if update.IsEmpty() {
		return s.FindOneById(ctx, id)
	}

	if update.Set == nil {
		update.Set = make(map[string]interface{})
	}
	update.Set[ModifiedDateField] = utility.CurrentTimeString()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(false)

	var updated T
	err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpUpdate,
		Document:       updated,
	})
	return updated, nil
}

// DeleteById xóa một document theo ObjectId, không có document nào bị xóa trả về ErrNotFound
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	var deleted T
	err := s.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return common.ErrNotFound
		}
		return common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpDelete,
		DocumentID:     id.Hex(),
		Document:       deleted,
	})
	return nil
}
