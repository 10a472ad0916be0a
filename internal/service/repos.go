package service

import (
	"context"

	"github.com/leon37/DevLink/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service 层依赖接口而不是具体 struct，方便单测注入内存实现

type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProfileRepo interface {
	Upsert(ctx context.Context, userID primitive.ObjectID, update *model.ProfileUpdate) (*model.Profile, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Profile, error)
	ListAll(ctx context.Context) ([]model.Profile, error)
	AddExperience(ctx context.Context, userID primitive.ObjectID, exp model.Experience) (*model.Profile, error)
	AddEducation(ctx context.Context, userID primitive.ObjectID, edu model.Education) (*model.Profile, error)
	RemoveExperience(ctx context.Context, userID primitive.ObjectID, entryID string) (*model.Profile, error)
	RemoveEducation(ctx context.Context, userID primitive.ObjectID, entryID string) (*model.Profile, error)
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
}

type PostRepo interface {
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}
