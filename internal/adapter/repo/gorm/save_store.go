package gormrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voidminer/internal/app/ports"
)

type SaveBlob struct {
	SaveKey   string `gorm:"column:save_key;primaryKey"`
	Payload   []byte `gorm:"column:payload;not null"`
	UpdatedAt time.Time
}

func (SaveBlob) TableName() string { return "save_blobs" }

type SaveStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSaveStore(db *gorm.DB) SaveStore {
	return SaveStore{db: db, now: time.Now}
}

func (s SaveStore) Get(ctx context.Context, key string) ([]byte, error) {
	var m SaveBlob
	if err := getDBFromCtx(ctx, s.db).WithContext(ctx).Where("save_key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return m.Payload, nil
}

func (s SaveStore) Put(ctx context.Context, key string, value []byte) error {
	m := SaveBlob{SaveKey: key, Payload: value, UpdatedAt: s.now().UTC()}
	return getDBFromCtx(ctx, s.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "save_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&m).Error
}
