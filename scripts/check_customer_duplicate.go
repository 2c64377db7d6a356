// Script kiểm tra khách hàng trùng số điện thoại (import CSV không chống trùng).
// Chạy: go run ./scripts [-limit 50]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"touch_crm/config"
	"touch_crm/internal/database"
)

// duplicateGroup là một nhóm khách cùng cust_mobile
type duplicateGroup struct {
	Mobile string               `bson:"_id"`
	Count  int                  `bson:"count"`
	IDs    []primitive.ObjectID `bson:"ids"`
	Names  []string             `bson:"names"`
}

// findDuplicateMobiles gom khách theo cust_mobile, trả về các nhóm có từ 2 bản ghi, nhiều nhất trước
func findDuplicateMobiles(ctx context.Context, customers *mongo.Collection, limit int64) ([]duplicateGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"cust_mobile": bson.M{"$exists": true, "$ne": ""}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$cust_mobile",
			"count": bson.M{"$sum": 1},
			"ids":   bson.M{"$push": "$_id"},
			"names": bson.M{"$push": "$cust_name"},
		}}},
		{{Key: "$match", Value: bson.M{"count": bson.M{"$gt": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cursor, err := customers.Aggregate(ctx, pipeline, options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", customers.Name(), err)
	}
	defer cursor.Close(ctx)

	groups := []duplicateGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("decode duplicate groups: %w", err)
	}
	return groups, nil
}

// printGroups in báo cáo; touchCount nil thì bỏ qua cột touch
func printGroups(w io.Writer, groups []duplicateGroup, touchCount func(primitive.ObjectID) int64) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "Không phát hiện khách trùng cust_mobile.")
		return
	}
	fmt.Fprintf(w, "Cảnh báo: %d số điện thoại có nhiều hơn 1 khách\n", len(groups))
	for i, g := range groups {
		fmt.Fprintf(w, "\n--- #%d cust_mobile=%s (%d khách) ---\n", i+1, g.Mobile, g.Count)
		for j, id := range g.IDs {
			name := ""
			if j < len(g.Names) {
				name = g.Names[j]
			}
			if touchCount != nil {
				fmt.Fprintf(w, "  %s  %s  touch=%d\n", id.Hex(), name, touchCount(id))
			} else {
				fmt.Fprintf(w, "  %s  %s\n", id.Hex(), name)
			}
		}
	}
}

func main() {
	limit := flag.Int64("limit", 50, "số nhóm tối đa (0 = tất cả)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Không thể đọc cấu hình: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := database.GetInstance(ctx, cfg)
	if err != nil {
		log.Fatalf("Kết nối lỗi: %v", err)
	}
	defer database.CloseInstance(context.Background(), client)

	db := client.Database(cfg.MongoDB_DBName)
	groups, err := findDuplicateMobiles(ctx, db.Collection("customers"), *limit)
	if err != nil {
		log.Fatalf("Kiểm tra trùng lỗi: %v", err)
	}

	touches := db.Collection("touchs")
	printGroups(os.Stdout, groups, func(id primitive.ObjectID) int64 {
		n, err := touches.CountDocuments(ctx, bson.M{"cust_id": id})
		if err != nil {
			return -1
		}
		return n
	})
	fmt.Println("\nHoàn thành")
}
