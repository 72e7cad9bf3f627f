/*
 * @Author: thepoy
 * @Email: thepoy@163.com
 * @File Name: store.go
 * @Created: 2023-04-01 18:11:02
 * @Modified: 2023-04-02 09:37:15
 */

package store

import (
	"errors"
	"fmt"

	"github.com/go-predator/httpstatus"
	"github.com/go-predator/httpstatus/dao"
	"github.com/go-predator/httpstatus/log"
	"github.com/go-predator/httpstatus/tools"
)

var ErrStoreNotInitialized = errors.New("the store is not initialized, call Init first")

const defaultURI = "httpstatus.sqlite"

// StatusModel is one exported status. ID is the 1-based declaration position,
// so reading rows ordered by ID restores the catalog order. Compressed is
// stored per row, so a reader never has to know how the snapshot was written.
type StatusModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement:false"`
	Code        int    `gorm:"index"`
	Identifier  string `gorm:"uniqueIndex"`
	Name        string
	Description []byte
	Compressed  bool
	Class       string
}

func (StatusModel) TableName() string {
	return "http-status"
}

// Record is a decoded row.
type Record struct {
	Position    int
	Code        int
	Identifier  string
	Name        string
	Description string
	Class       string
}

// SQLiteStore writes snapshots of the catalog into a sqlite table.
type SQLiteStore struct {
	uri        string
	compressed bool
	database   dao.Database
	db         dao.Database
	log        *log.Logger
}

func NewSQLiteStore(opts ...StoreOption) *SQLiteStore {
	s := &SQLiteStore{uri: defaultURI}
	for _, op := range opts {
		op(s)
	}
	return s
}

// Init opens the database and migrates the table. Unless `WithDatabase` was
// given, the database is the sqlite file set by `WithURI`.
func (s *SQLiteStore) Init() error {
	db := s.database
	if db == nil {
		db = &dao.Sqlite{URI: s.uri}
	}
	if err := db.Init(); err != nil {
		return fmt.Errorf("open %s: %w", s.uri, err)
	}

	if err := db.AutoMigrate(&StatusModel{}); err != nil {
		return err
	}

	s.db = db

	if s.log != nil {
		s.log.Debug("store initialized", log.NewArg("uri", s.uri), log.NewArg("compressed", s.compressed))
	}
	return nil
}

// Save replaces the table content with statuses, keeping their order.
func (s *SQLiteStore) Save(statuses []httpstatus.Status) error {
	if s.db == nil {
		return ErrStoreNotInitialized
	}

	models := make([]StatusModel, 0, len(statuses))
	for i, st := range statuses {
		desc := []byte(st.Description())
		if s.compressed {
			var err error
			desc, err = tools.Compress(desc)
			if err != nil {
				return fmt.Errorf("compress description of %d %s: %w", st.Code(), st.Name(), err)
			}
		}

		models = append(models, StatusModel{
			ID:          uint(i + 1),
			Code:        st.Code(),
			Identifier:  st.Identifier(),
			Name:        st.Name(),
			Description: desc,
			Compressed:  s.compressed,
			Class:       st.Class().String(),
		})
	}

	err := s.db.Transaction(func(tx dao.Database) error {
		if err := tx.Truncate(&StatusModel{}); err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.InsertMany(&models)
	})
	if err != nil {
		return err
	}

	if s.log != nil {
		s.log.Info("catalog saved", log.NewArg("uri", s.uri), log.NewArg("count", len(models)))
	}
	return nil
}

// ByCode returns the rows with code in declaration order. Unlike the catalog,
// it returns an empty slice when nothing matches.
func (s *SQLiteStore) ByCode(code int) ([]Record, error) {
	return s.find("code = ?", code)
}

// Records returns every row in declaration order.
func (s *SQLiteStore) Records() ([]Record, error) {
	return s.find("1 = 1")
}

func (s *SQLiteStore) find(where string, args ...any) ([]Record, error) {
	if s.db == nil {
		return nil, ErrStoreNotInitialized
	}

	var models []StatusModel
	if err := s.db.SelectAllWithWhere(&models, "id", where, args...); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(models))
	for _, m := range models {
		desc := m.Description
		if m.Compressed {
			var err error
			desc, err = tools.Decompress(desc)
			if err != nil {
				return nil, fmt.Errorf("decompress description of %d %s: %w", m.Code, m.Name, err)
			}
		}

		records = append(records, Record{
			Position:    int(m.ID),
			Code:        m.Code,
			Identifier:  m.Identifier,
			Name:        m.Name,
			Description: string(desc),
			Class:       m.Class,
		})
	}
	return records, nil
}

// Count returns the number of stored rows.
func (s *SQLiteStore) Count() (int64, error) {
	if s.db == nil {
		return 0, ErrStoreNotInitialized
	}
	return s.db.Count(&StatusModel{})
}

// Clear removes every row.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return ErrStoreNotInitialized
	}
	return s.db.Truncate(&StatusModel{})
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return ErrStoreNotInitialized
	}
	return s.db.Close()
}
