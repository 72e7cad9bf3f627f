/**
 * @Author:      thepoy
 * @Email:       thepoy@163.com
 * @File Name:   errors.go
 * @Created At:  2022-02-17 15:30:54
 * @Modified At: 2023-04-01 17:52:06
 * @Modified By: thepoy
 */

package httpstatus

import (
	"errors"
)

var (
	ErrInvalidCode   = errors.New("not a valid base-10 status code")
	ErrMalformedJSON = errors.New("the json document must contain an integer `code` and a string `name`")
	ErrUnknownStatus = errors.New("no catalogued status matches the json document")
)
