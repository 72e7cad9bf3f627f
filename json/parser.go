/**
 * @Author:      thepoy
 * @Email:       thepoy@163.com
 * @File Name:   parser.go
 * @Created At:  2021-07-27 20:41:02
 * @Modified At: 2023-03-30 22:04:51
 * @Modified By: thepoy
 */

package json

import "github.com/tidwall/gjson"

type JSONResult = gjson.Result

// ParseBytesToJSON converts `[]byte` variable to JSONResult
func ParseBytesToJSON(body []byte) JSONResult {
	return gjson.ParseBytes(body)
}

// ParseJSON converts `string` variable to JSONResult
func ParseJSON(body string) JSONResult {
	return gjson.Parse(body)
}

// Valid reports whether body is a valid json document.
func Valid(body string) bool {
	return gjson.Valid(body)
}
