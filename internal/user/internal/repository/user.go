package repository

import (
	"context"
	"errors"

	"github.com/mindblowndbs/mindblown/internal/user/internal/domain"
	"github.com/mindblowndbs/mindblown/internal/user/internal/repository/cache"
	"github.com/mindblowndbs/mindblown/internal/user/internal/repository/dao"
)

var ErrUserNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	AllIds(ctx context.Context) ([]int64, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

// NewCachedUserRepository 支持缓存的实现
func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrDataNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	// 批量查询不走缓存，调用方都是聚合场景
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make([]domain.User, 0, len(us))
	for _, u := range us {
		res = append(res, ur.entityToDomain(u))
	}
	return res, nil
}

func (ur *CachedUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := ur.dao.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dao.ErrDataNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return ur.entityToDomain(u), nil
}

func (ur *CachedUserRepository) AllIds(ctx context.Context) ([]int64, error) {
	return ur.dao.FindAllIds(ctx)
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		SN:       u.SN,
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
	}
}

func (ur *CachedUserRepository) entityToDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		SN:       u.SN,
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Ctime:    u.Ctime,
		Utime:    u.Utime,
	}
}
