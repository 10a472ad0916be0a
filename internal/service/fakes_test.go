package service

import (
	"context"

	"github.com/leon37/DevLink/internal/model"
	"github.com/leon37/DevLink/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存实现，单测里代替 mongo

type memUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.users, id)
	return nil
}

type memProfileRepo struct {
	profiles map[primitive.ObjectID]*model.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[primitive.ObjectID]*model.Profile)}
}

func (r *memProfileRepo) Upsert(_ context.Context, userID primitive.ObjectID, update *model.ProfileUpdate) (*model.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		p = &model.Profile{
			ID:         primitive.NewObjectID(),
			UserID:     userID,
			Experience: []model.Experience{},
			Education:  []model.Education{},
		}
		r.profiles[userID] = p
	}
	if update.Company != nil {
		p.Company = *update.Company
	}
	if update.Website != nil {
		p.Website = *update.Website
	}
	if update.Location != nil {
		p.Location = *update.Location
	}
	if update.Status != nil {
		p.Status = *update.Status
	}
	if update.Skills != nil {
		p.Skills = *update.Skills
	}
	if update.Bio != nil {
		p.Bio = *update.Bio
	}
	if update.GithubUsername != nil {
		p.GithubUsername = *update.GithubUsername
	}
	if update.Social != nil {
		p.Social = *update.Social
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) (*model.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) ListAll(_ context.Context) ([]model.Profile, error) {
	out := make([]model.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProfileRepo) AddExperience(_ context.Context, userID primitive.ObjectID, exp model.Experience) (*model.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Experience = append([]model.Experience{exp}, p.Experience...)
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) AddEducation(_ context.Context, userID primitive.ObjectID, edu model.Education) (*model.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Education = append([]model.Education{edu}, p.Education...)
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) RemoveExperience(_ context.Context, userID primitive.ObjectID, entryID string) (*model.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	kept := p.Experience[:0]
	for _, e := range p.Experience {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	p.Experience = kept
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) RemoveEducation(_ context.Context, userID primitive.ObjectID, entryID string) (*model.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	kept := p.Education[:0]
	for _, e := range p.Education {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	p.Education = kept
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) DeleteByUserID(_ context.Context, userID primitive.ObjectID) error {
	delete(r.profiles, userID)
	return nil
}

type memPostRepo struct {
	posts map[primitive.ObjectID][]model.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[primitive.ObjectID][]model.Post)}
}

func (r *memPostRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	delete(r.posts, userID)
	return nil
}
