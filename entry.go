/**
 * @Author:      thepoy
 * @Email:       thepoy@163.com
 * @File Name:   entry.go
 * @Created At:  2023-03-28 21:11:40
 * @Modified At: 2023-04-02 10:16:48
 * @Modified By: thepoy
 */

package httpstatus

import (
	"fmt"
	"strings"

	"github.com/go-predator/httpstatus/json"
)

// Status is one catalogued HTTP status. All fields are computed when the
// catalog is built and never change afterwards.
type Status struct {
	code        StatusCode
	identifier  string
	name        string
	description string
	class       Class
	json        string
}

func newStatus(code StatusCode, identifier, description string) Status {
	s := Status{
		code:        code,
		identifier:  identifier,
		name:        strings.ReplaceAll(identifier, "_", " "),
		description: description,
		class:       classOf(code),
	}
	s.json = fmt.Sprintf(`{"code": %d, "name": "%s", "description": "%s"}`, s.code, s.name, s.description)
	return s
}

// Code returns the numeric status code.
func (s Status) Code() int {
	return int(s.code)
}

// StatusCode returns the code as a `StatusCode`.
func (s Status) StatusCode() StatusCode {
	return s.code
}

// Identifier returns the stable symbolic name of the status, e.g. "Not_Found".
// It is unique across the catalog.
func (s Status) Identifier() string {
	return s.identifier
}

// Name returns the human-readable name, e.g. "Not Found".
func (s Status) Name() string {
	return s.name
}

// Description returns what the status means.
func (s Status) Description() string {
	return s.description
}

// Class returns the response class the code belongs to.
func (s Status) Class() Class {
	return s.class
}

// JSON returns the single-line json rendering of the status:
//
//	{"code": 404, "name": "Not Found", "description": "..."}
//
// The description is written as is, without escaping.
func (s Status) JSON() string {
	return s.json
}

// IsUnknown reports whether s is the `Unknown` sentinel.
func (s Status) IsUnknown() bool {
	return s.identifier == Unknown.identifier
}

func (s Status) IsInformational() bool { return s.class == Informational }
func (s Status) IsSuccess() bool       { return s.class == Success }
func (s Status) IsRedirection() bool   { return s.class == Redirection }
func (s Status) IsClientError() bool   { return s.class == ClientError }
func (s Status) IsServerError() bool   { return s.class == ServerError }

// String renders the status over several indented lines for consoles and logs.
func (s Status) String() string {
	return fmt.Sprintf("{\n\t\"code\": %d, \n\t\"name\": \"%s\", \n\t\"description\": \"%s\"}", s.code, s.name, s.description)
}

type statusDocument struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MarshalJSON encodes the status with proper escaping, so it can be embedded
// in other json documents. Use `JSON` for the cached rendering.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(statusDocument{
		Code:        int(s.code),
		Name:        s.name,
		Description: s.description,
	})
}
