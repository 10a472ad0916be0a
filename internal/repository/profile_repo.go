package repository

import (
	"context"
	"errors"
	"time"

	"github.com/leon37/DevLink/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection("profiles")}
}

// Upsert 按 user 查找并更新，不存在则插入
// $set 里只放请求显式携带的字段，没带的字段保持原样
func (r *ProfileRepository) Upsert(ctx context.Context, userID primitive.ObjectID, update *model.ProfileUpdate) (*model.Profile, error) {
	set := bson.M{"user": userID}
	if update.Company != nil {
		set["company"] = *update.Company
	}
	if update.Website != nil {
		set["website"] = *update.Website
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Skills != nil {
		set["skills"] = *update.Skills
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.GithubUsername != nil {
		set["github_username"] = *update.GithubUsername
	}
	if update.Social != nil {
		set["social"] = *update.Social
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	// profiles.user 上有唯一索引，并发 upsert 也不会出现重复档案
	var profile model.Profile
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"user": userID},
		bson.M{
			"$set": set,
			"$setOnInsert": bson.M{
				"experience": []model.Experience{},
				"education":  []model.Education{},
				"created_at": time.Now(),
			},
		},
		opts,
	).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Profile, error) {
	var profile model.Profile
	err := r.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]model.Profile, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []model.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// AddExperience 头插，最新的经历排最前面
func (r *ProfileRepository) AddExperience(ctx context.Context, userID primitive.ObjectID, exp model.Experience) (*model.Profile, error) {
	return r.pushFront(ctx, userID, "experience", exp)
}

func (r *ProfileRepository) AddEducation(ctx context.Context, userID primitive.ObjectID, edu model.Education) (*model.Profile, error) {
	return r.pushFront(ctx, userID, "education", edu)
}

func (r *ProfileRepository) pushFront(ctx context.Context, userID primitive.ObjectID, field string, entry any) (*model.Profile, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile model.Profile
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"user": userID},
		bson.M{"$push": bson.M{
			field: bson.M{
				"$each":     bson.A{entry},
				"$position": 0,
			},
		}},
		opts,
	).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// RemoveExperience 按条目 id 删除，id 不存在时原样返回（不视为错误）
func (r *ProfileRepository) RemoveExperience(ctx context.Context, userID primitive.ObjectID, entryID string) (*model.Profile, error) {
	return r.pullByID(ctx, userID, "experience", entryID)
}

func (r *ProfileRepository) RemoveEducation(ctx context.Context, userID primitive.ObjectID, entryID string) (*model.Profile, error) {
	return r.pullByID(ctx, userID, "education", entryID)
}

func (r *ProfileRepository) pullByID(ctx context.Context, userID primitive.ObjectID, field, entryID string) (*model.Profile, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile model.Profile
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"user": userID},
		bson.M{"$pull": bson.M{field: bson.M{"id": entryID}}},
		opts,
	).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"user": userID})
	return err
}
