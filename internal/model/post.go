package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post 帖子本身没有对外路由，保留模型是为了注销账号时的级联删除
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Name      string             `bson:"name" json:"name"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	CreatedAt time.Time          `bson:"created_at" json:"date"`
}
