// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type InteractiveDAO interface {
	// LikeToggle 切换点赞状态，返回这一次操作之后当前用户是否点赞
	LikeToggle(ctx context.Context, biz string, id int64, uid int64) (bool, error)
	// IncrViewCnt 浏览计数，按 (uid, biz, biz_id) 去重
	IncrViewCnt(ctx context.Context, biz string, bizId, uid int64) error
	GetLikeInfo(ctx context.Context, biz string, id int64, uid int64) (UserLikeBiz, error)
	// CountLikes 统计点赞台账里的记录数
	CountLikes(ctx context.Context, biz string, id int64) (int64, error)
	// ListLikes 点赞台账明细，按点赞先后排序
	ListLikes(ctx context.Context, biz string, id int64) ([]UserLikeBiz, error)
	Get(ctx context.Context, biz string, id int64) (Interactive, error)
	GetByIds(ctx context.Context, biz string, ids []int64) ([]Interactive, error)
	GetUserLikes(ctx context.Context, uid int64, biz string, ids []int64) ([]UserLikeBiz, error)
}

type GORMInteractiveDAO struct {
	db *egorm.Component
}

func NewInteractiveDAO(db *egorm.Component) *GORMInteractiveDAO {
	return &GORMInteractiveDAO{
		db: db,
	}
}

func (g *GORMInteractiveDAO) LikeToggle(ctx context.Context, biz string, id int64, uid int64) (bool, error) {
	var liked bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 历史脏数据里出现过 uid=0 的台账记录，先修复再切换。
		// 汇总表的 like_cnt 也要同步扣掉，不然计数会一直虚高
		res := tx.Where("biz = ? AND biz_id = ? AND uid = 0", biz, id).
			Delete(&UserLikeBiz{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			err := tx.Model(&Interactive{}).
				Where("biz = ? AND biz_id = ? AND like_cnt >= ?", biz, id, res.RowsAffected).
				Updates(map[string]any{
					"like_cnt": gorm.Expr("`like_cnt` - ?", res.RowsAffected),
					"utime":    time.Now().UnixMilli(),
				}).Error
			if err != nil {
				return err
			}
		}
		err := tx.
			Where("biz = ? AND biz_id = ? AND uid = ?", biz, id, uid).
			First(&UserLikeBiz{}).Error
		switch {
		case err == nil:
			liked = false
			return g.deleteLikeInfo(tx, biz, id, uid)
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			return g.insertLikeInfo(tx, biz, id, uid)
		default:
			return err
		}
	})
	if isDuplicateKeyError(err) {
		// 并发重复点赞被唯一索引拦下来，此时台账里已经有记录了，按已点赞处理
		return true, nil
	}
	return liked, err
}

func (g *GORMInteractiveDAO) insertLikeInfo(tx *gorm.DB, biz string, id int64, uid int64) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&UserLikeBiz{
		Uid:   uid,
		Biz:   biz,
		BizId: id,
		Utime: now,
		Ctime: now,
	}).Error
	if err != nil {
		return err
	}
	return tx.Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` + 1"),
			"utime":    now,
		}),
	}).Create(&Interactive{
		Biz:     biz,
		BizId:   id,
		LikeCnt: 1,
		Ctime:   now,
		Utime:   now,
	}).Error
}

func (g *GORMInteractiveDAO) deleteLikeInfo(tx *gorm.DB, biz string, id int64, uid int64) error {
	now := time.Now().UnixMilli()
	res := tx.Model(&UserLikeBiz{}).
		Where("uid=? AND biz_id = ? AND biz=?", uid, id, biz).
		Delete(&UserLikeBiz{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return nil
	}
	return tx.Model(&Interactive{}).
		Where("biz =? AND biz_id=? AND like_cnt > 0", biz, id).
		Updates(map[string]any{
			"like_cnt": gorm.Expr("`like_cnt` - 1"),
			"utime":    now,
		}).Error
}

func (g *GORMInteractiveDAO) IncrViewCnt(ctx context.Context, biz string, bizId, uid int64) error {
	now := time.Now().UnixMilli()
	// 匿名浏览没有去重依据，直接计数
	if uid <= 0 {
		return g.incrViewCnt(g.db.WithContext(ctx), biz, bizId, now)
	}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&UserViewBiz{
			Uid:   uid,
			Biz:   biz,
			BizId: bizId,
			Utime: now,
			Ctime: now,
		}).Error
		if err != nil {
			return err
		}
		return g.incrViewCnt(tx, biz, bizId, now)
	})
	if isDuplicateKeyError(err) {
		// 看过了，不重复计数
		return nil
	}
	return err
}

func (g *GORMInteractiveDAO) incrViewCnt(tx *gorm.DB, biz string, bizId, now int64) error {
	return tx.Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"view_cnt": gorm.Expr("`view_cnt` + 1"),
			"utime":    now,
		}),
	}).Create(&Interactive{
		Biz:     biz,
		BizId:   bizId,
		ViewCnt: 1,
		Ctime:   now,
		Utime:   now,
	}).Error
}

func (g *GORMInteractiveDAO) GetLikeInfo(ctx context.Context, biz string, id int64, uid int64) (UserLikeBiz, error) {
	var res UserLikeBiz
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ? AND uid = ?",
			biz, id, uid).
		First(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) CountLikes(ctx context.Context, biz string, id int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&UserLikeBiz{}).
		Where("biz = ? AND biz_id = ?", biz, id).
		Count(&count).Error
	return count, err
}

func (g *GORMInteractiveDAO) ListLikes(ctx context.Context, biz string, id int64) ([]UserLikeBiz, error) {
	var res []UserLikeBiz
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ?", biz, id).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) Get(ctx context.Context, biz string, id int64) (Interactive, error) {
	var res Interactive
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ?", biz, id).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Interactive{}, ErrRecordNotFound
	}
	return res, err
}

func (g *GORMInteractiveDAO) GetByIds(ctx context.Context, biz string, ids []int64) ([]Interactive, error) {
	var res []Interactive
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id IN ?", biz, ids).
		Find(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) GetUserLikes(ctx context.Context, uid int64, biz string, ids []int64) ([]UserLikeBiz, error) {
	var likes []UserLikeBiz
	err := g.db.WithContext(ctx).
		Model(&UserLikeBiz{}).
		Where("biz = ? AND biz_id in ? and uid = ?", biz, ids, uid).Scan(&likes).Error
	return likes, err
}

func isDuplicateKeyError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&Interactive{},
		&UserLikeBiz{},
		&UserViewBiz{},
	)
}
