/*
 * @Author: thepoy
 * @Email: thepoy@163.com
 * @File Name: api.go (c) 2021
 * @Created: 2021-07-24 22:20:09
 * @Modified: 2023-04-01 18:03:27
 */

package dao

import "errors"

var ErrNotInitialized = errors.New("database is not initialized, call Init first")

type Database interface {
	Init() error
	// AutoMigrate creates or updates the tables of the models
	AutoMigrate(models ...any) error
	// InsertMany inserts a slice of records in one statement
	InsertMany(models any) error
	// SelectAllWithWhere finds all records matching the condition, ordered by `order`
	SelectAllWithWhere(models any, order string, where any, args ...any) error
	// Count counts the records of the model's table
	Count(model any) (int64, error)
	// Truncate removes every record of the model's table
	Truncate(model any) error
	// Transaction runs fn against a Database bound to one transaction,
	// which is rolled back if fn returns an error
	Transaction(fn func(tx Database) error) error
	Close() error
}
