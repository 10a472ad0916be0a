package repository

import "errors"

var (
	// ErrNotFound 查询无结果（用户或档案）
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicateEmail 邮箱已被注册（唯一索引兜底）
	ErrDuplicateEmail = errors.New("repository: email already exists")
)
