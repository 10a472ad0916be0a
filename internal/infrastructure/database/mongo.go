package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoDatabase 建立连接并初始化索引
// 连不上直接崩盘退出，防止后续业务运行时报错
func NewMongoDatabase(uri, name string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Fatal: 无法连接数据库: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Fatal: 数据库 ping 失败: %v", err)
	}

	db := client.Database(name)

	// email 唯一索引，注册重复邮箱由数据库兜底
	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Fatal: 创建索引失败: %v", err)
	}

	// profiles.user 唯一索引，保证一个用户只有一份档案
	_, err = db.Collection("profiles").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Fatal: 创建索引失败: %v", err)
	}

	return db
}
