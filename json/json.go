/*
 * @Author:    thepoy
 * @Email:     thepoy@163.com
 * @File Name: json.go
 * @Created:   2021-07-27 20:41:02
 * @Modified:  2023-03-30 22:04:51
 */

package json

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalToString is `Marshal` for callers that want a string.
func MarshalToString(v any) (string, error) {
	return json.MarshalToString(v)
}

// Unmarshal decodes into v. Prefer gjson when only a few fields are needed.
func Unmarshal(src []byte, v any) error {
	return json.Unmarshal(src, v)
}

func UnmarshalFromString(src string, v any) error {
	return json.UnmarshalFromString(src, v)
}
