package database

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"touch_crm/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureCollections tạo các collection còn thiếu trong db
func EnsureCollections(ctx context.Context, db *mongo.Database, names ...string) error {
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, name := range names {
		if have[name] {
			continue
		}
		logger.WithCollection(name).Info("Collection chưa tồn tại, tạo mới")
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}
	return nil
}

// indexSpec là một index đọc được từ struct tag `index`
type indexSpec struct {
	Name   string
	Keys   bson.D
	Unique bool
	Sparse bool
}

// parseIndexTag tách tag index: các cấu hình cách nhau bởi ';', mỗi cấu hình gồm các cặp key[:value] cách nhau bởi ','.
// Ví dụ: `index:"single:1"`, `index:"unique,sparse"`, `index:"compound:cust_touch_date,order:-1"`
func parseIndexTag(tag string) []map[string]string {
	var result []map[string]string
	for _, part := range strings.Split(tag, ";") {
		entry := map[string]string{}
		for _, subPart := range strings.Split(part, ",") {
			subPart = strings.TrimSpace(subPart)
			if subPart == "" {
				continue
			}
			kv := strings.SplitN(subPart, ":", 2)
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		if len(entry) > 0 {
			result = append(result, entry)
		}
	}
	return result
}

// parseOrder trả về thứ tự sắp xếp của cấu hình (1 hoặc -1)
func parseOrder(entry map[string]string) int {
	if entry["order"] == "-1" || entry["single"] == "-1" {
		return -1
	}
	return 1
}

// bsonFieldName lấy tên field trong bson tag, bỏ các option như omitempty
func bsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("bson"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// indexSpecsFromModel đọc các index khai báo trên model; compound được gom theo tên group, sắp xếp theo tên
func indexSpecsFromModel(model interface{}) []indexSpec {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	var specs []indexSpec
	compound := map[string]*indexSpec{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonField := bsonFieldName(field)
		if bsonField == "" {
			continue
		}

		for _, entry := range parseIndexTag(tag) {
			_, sparse := entry["sparse"]

			if _, ok := entry["single"]; ok {
				specs = append(specs, indexSpec{Name: bsonField + "_single", Keys: bson.D{{Key: bsonField, Value: parseOrder(entry)}}, Sparse: sparse})
			}
			if _, ok := entry["unique"]; ok {
				specs = append(specs, indexSpec{Name: bsonField + "_unique", Keys: bson.D{{Key: bsonField, Value: 1}}, Unique: true, Sparse: sparse})
			}
			if group, ok := entry["compound"]; ok && group != "" {
				spec, exists := compound[group]
				if !exists {
					spec = &indexSpec{Name: group, Unique: strings.Contains(group, "_unique")}
					compound[group] = spec
				}
				spec.Keys = append(spec.Keys, bson.E{Key: bsonField, Value: parseOrder(entry)})
				spec.Sparse = spec.Sparse || sparse
			}
		}
	}

	groups := make([]string, 0, len(compound))
	for group := range compound {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	for _, group := range groups {
		specs = append(specs, *compound[group])
	}
	return specs
}

// sameIndex so sánh index hiện có (listIndexes) với spec
func sameIndex(existing bson.M, spec indexSpec) bool {
	existingKeys, ok := existing["key"].(bson.M)
	if !ok || len(existingKeys) != len(spec.Keys) {
		return false
	}
	for _, key := range spec.Keys {
		value, exists := existingKeys[key.Key]
		if !exists {
			return false
		}
		want, _ := key.Value.(int)
		var got int
		switch ev := value.(type) {
		case int32:
			got = int(ev)
		case int64:
			got = int(ev)
		case float64:
			got = int(ev)
		default:
			return false
		}
		if got != want {
			return false
		}
	}
	unique, _ := existing["unique"].(bool)
	sparse, _ := existing["sparse"].(bool)
	return unique == spec.Unique && sparse == spec.Sparse
}

// CreateIndexes tạo (hoặc thay thế khi sai cấu hình) các index khai báo bằng tag `index` trên model
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	log := logger.WithCollection(collection.Name())

	specs := indexSpecsFromModel(model)
	if len(specs) == 0 {
		return nil
	}

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("không thể lấy danh sách index: %w", err)
	}
	defer cursor.Close(ctx)

	existingIndexes := map[string]bson.M{}
	for cursor.Next(ctx) {
		var indexInfo bson.M
		if err := cursor.Decode(&indexInfo); err != nil {
			return fmt.Errorf("không thể giải mã thông tin index: %w", err)
		}
		if name, ok := indexInfo["name"].(string); ok {
			existingIndexes[name] = indexInfo
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("không thể lấy danh sách index: %w", err)
	}

	for _, spec := range specs {
		if existing, ok := existingIndexes[spec.Name]; ok {
			if sameIndex(existing, spec) {
				log.WithField("index", spec.Name).Debug("Index đã tồn tại và đúng cấu hình")
				continue
			}
			if _, err := collection.Indexes().DropOne(ctx, spec.Name); err != nil {
				return fmt.Errorf("không thể xóa index %s: %w", spec.Name, err)
			}
			log.WithField("index", spec.Name).Info("Đã xóa index cũ")
		}

		opts := options.Index().SetName(spec.Name)
		if spec.Unique {
			opts.SetUnique(true)
		}
		if spec.Sparse {
			opts.SetSparse(true)
		}
		if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: spec.Keys, Options: opts}); err != nil {
			return fmt.Errorf("không thể tạo index %s: %w", spec.Name, err)
		}
		log.WithField("index", spec.Name).Info("Đã tạo index")
	}
	return nil
}
