/*
 * @Author: thepoy
 * @Email: thepoy@163.com
 * @File Name: sqlite.go
 * @Created: 2021-07-24 22:24:15
 * @Modified: 2023-04-01 18:03:27
 */

package dao

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ Database = (*Sqlite)(nil)

type Sqlite struct {
	URI string
	DB  *gorm.DB
}

func (s *Sqlite) Init() error {
	db, err := gorm.Open(sqlite.Open(s.URI), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}
	s.DB = db
	return nil
}

func (s *Sqlite) ready() error {
	if s.DB == nil {
		return ErrNotInitialized
	}
	return nil
}

func (s *Sqlite) AutoMigrate(models ...any) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.AutoMigrate(models...)
}

// InsertMany expects a pointer to a slice or a slice of models.
func (s *Sqlite) InsertMany(models any) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Create(models).Error
}

func (s *Sqlite) SelectAllWithWhere(models any, order string, where any, args ...any) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Where(where, args...).Order(order).Find(models).Error
}

func (s *Sqlite) Count(model any) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var count int64
	err := s.DB.Model(model).Count(&count).Error
	return count, err
}

func (s *Sqlite) Truncate(model any) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
}

// Transaction runs fn in a transaction on a copy of s bound to it.
func (s *Sqlite) Transaction(fn func(tx Database) error) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&Sqlite{URI: s.URI, DB: tx})
	})
}

func (s *Sqlite) Close() error {
	if err := s.ready(); err != nil {
		return err
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
