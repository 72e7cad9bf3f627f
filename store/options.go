/*
 * @Author: thepoy
 * @Email: thepoy@163.com
 * @File Name: options.go
 * @Created: 2023-04-01 18:20:45
 * @Modified: 2023-04-01 19:48:10
 */

package store

import (
	"github.com/go-predator/httpstatus/dao"
	"github.com/go-predator/httpstatus/log"
)

type StoreOption func(*SQLiteStore)

// WithURI sets the sqlite database file, `httpstatus.sqlite` by default.
func WithURI(uri string) StoreOption {
	return func(s *SQLiteStore) {
		if uri != "" {
			s.uri = uri
		}
	}
}

// WithDatabase writes into db instead of the sqlite file of `WithURI`.
// `Init` initializes db.
func WithDatabase(db dao.Database) StoreOption {
	return func(s *SQLiteStore) {
		s.database = db
	}
}

// WithCompression makes `Save` store descriptions zlib-compressed. Reading
// follows the flag saved with each row, whatever this option says. It only
// pays off for long descriptions; most of the catalog is a sentence or two.
func WithCompression(yes bool) StoreOption {
	return func(s *SQLiteStore) {
		s.compressed = yes
	}
}

func WithLogger(l *log.Logger) StoreOption {
	return func(s *SQLiteStore) {
		s.log = l
	}
}
