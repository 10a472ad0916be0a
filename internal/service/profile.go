package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leon37/DevLink/internal/model"
	"github.com/leon37/DevLink/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrProfileNotFound 该用户还没有创建档案
var ErrProfileNotFound = errors.New("profile not found")

// ProfileInput 是前端传来的档案参数 (DTO)
// 指针区分"没传"和"传了空值"，skills 沿用逗号分隔的习惯写法
type ProfileInput struct {
	Company        *string
	Website        *string
	Location       *string
	Status         *string
	Skills         *string
	Bio            *string
	GithubUsername *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

// ExperienceInput 新增一条工作经历
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput 新增一条教育经历
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

type ProfileService struct {
	profiles ProfileRepo
	users    UserRepo
}

func NewProfileService(profiles ProfileRepo, users UserRepo) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

// Upsert 创建或更新档案，只动请求里带了的字段
func (s *ProfileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*model.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	update := &model.ProfileUpdate{
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Status:         in.Status,
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
	}

	if in.Skills != nil {
		skills := splitSkills(*in.Skills)
		update.Skills = &skills
	}

	// 社交链接只要带了任何一个就整体重建
	if in.Youtube != nil || in.Twitter != nil || in.Facebook != nil ||
		in.Linkedin != nil || in.Instagram != nil {
		social := model.Social{}
		if in.Youtube != nil {
			social.Youtube = *in.Youtube
		}
		if in.Twitter != nil {
			social.Twitter = *in.Twitter
		}
		if in.Facebook != nil {
			social.Facebook = *in.Facebook
		}
		if in.Linkedin != nil {
			social.Linkedin = *in.Linkedin
		}
		if in.Instagram != nil {
			social.Instagram = *in.Instagram
		}
		update.Social = &social
	}

	profile, err := s.profiles.Upsert(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	s.attachOwner(ctx, profile)
	return profile, nil
}

// Me 当前用户自己的档案
func (s *ProfileService) Me(ctx context.Context, userID string) (*model.Profile, error) {
	return s.ByUserID(ctx, userID)
}

// ByUserID 按用户 ID 查档案
func (s *ProfileService) ByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	profile, err := s.profiles.GetByUserID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	s.attachOwner(ctx, profile)
	return profile, nil
}

// List 所有档案，带所属用户的公开信息
func (s *ProfileService) List(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		s.attachOwner(ctx, &profiles[i])
	}
	return profiles, nil
}

// AddExperience 头插一条工作经历
func (s *ProfileService) AddExperience(ctx context.Context, userID string, in ExperienceInput) (*model.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	id, _ := uuid.NewV7()
	exp := model.Experience{
		ID:          id.String(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}

	profile, err := s.profiles.AddExperience(ctx, oid, exp)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	s.attachOwner(ctx, profile)
	return profile, nil
}

// AddEducation 头插一条教育经历
func (s *ProfileService) AddEducation(ctx context.Context, userID string, in EducationInput) (*model.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	id, _ := uuid.NewV7()
	edu := model.Education{
		ID:           id.String(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}

	profile, err := s.profiles.AddEducation(ctx, oid, edu)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	s.attachOwner(ctx, profile)
	return profile, nil
}

// RemoveExperience 按条目 id 删除
// id 匹配不到任何条目时列表保持不变，不算错误
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, entryID string) (*model.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	profile, err := s.profiles.RemoveExperience(ctx, oid, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	s.attachOwner(ctx, profile)
	return profile, nil
}

// RemoveEducation 同上
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, entryID string) (*model.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	profile, err := s.profiles.RemoveEducation(ctx, oid, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	s.attachOwner(ctx, profile)
	return profile, nil
}

// attachOwner 补上所属用户的公开信息，用户查不到就算了（档案照常返回）
func (s *ProfileService) attachOwner(ctx context.Context, p *model.Profile) {
	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return
	}
	p.Owner = &model.ProfileOwner{Name: user.Name, Avatar: user.Avatar}
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
