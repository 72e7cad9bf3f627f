/**
 * @Author:      thepoy
 * @Email:       thepoy@163.com
 * @File Name:   catalog.go
 * @Created At:  2023-03-28 21:40:26
 * @Modified At: 2023-04-02 10:16:48
 * @Modified By: thepoy
 */

package httpstatus

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-predator/httpstatus/json"
	"github.com/tidwall/gjson"
)

// Catalog is an immutable, ordered collection of statuses.
//
// A Catalog is safe for concurrent use: it is built once and only read afterwards.
type Catalog struct {
	statuses []Status
	// code -> positions in statuses, in declaration order
	index   map[int][]int
	unknown Status
}

var (
	// Unknown is returned by every lookup that matches nothing.
	Unknown = statuses[len(statuses)-1]

	defaultCatalog = newCatalog(statuses, Unknown)
)

func newCatalog(list []Status, unknown Status) *Catalog {
	c := &Catalog{
		statuses: list,
		index:    make(map[int][]int),
		unknown:  unknown,
	}

	for i, s := range list {
		c.index[s.Code()] = append(c.index[s.Code()], i)
	}

	return c
}

// Default returns the package catalog.
func Default() *Catalog {
	return defaultCatalog
}

// GetByCode returns every status declared with code, in declaration order.
// If there is none, it returns a single-element slice holding `Unknown`.
func (c *Catalog) GetByCode(code int) []Status {
	positions, ok := c.index[code]
	if !ok {
		return []Status{c.unknown}
	}

	found := make([]Status, 0, len(positions))
	for _, i := range positions {
		found = append(found, c.statuses[i])
	}
	return found
}

// GetByCodeString parses s as a base-10 integer and looks it up with
// `GetByCode`. A string that does not parse yields `[Unknown]`.
func (c *Catalog) GetByCodeString(s string) []Status {
	code, err := ParseCode(s)
	if err != nil {
		return []Status{c.unknown}
	}
	return c.GetByCode(code)
}

// Lookup is `GetByCode` that also reports whether a real status matched.
// When ok is false the slice holds only `Unknown`, which is also the case
// for the sentinel's own code.
func (c *Catalog) Lookup(code int) ([]Status, bool) {
	found := c.GetByCode(code)
	return found, !(len(found) == 1 && found[0].identifier == c.unknown.identifier)
}

// All returns a copy of every status in declaration order, `Unknown` included.
func (c *Catalog) All() []Status {
	all := make([]Status, len(c.statuses))
	copy(all, c.statuses)
	return all
}

// Len returns the number of statuses, `Unknown` included.
func (c *Catalog) Len() int {
	return len(c.statuses)
}

// FromJSON resolves a json rendering of a status, such as the one returned by
// `Status.JSON`, back to its catalog entry. The `code` and `name` fields must
// both match; `description` is ignored.
func (c *Catalog) FromJSON(doc string) (Status, error) {
	if !json.Valid(doc) {
		return Status{}, ErrMalformedJSON
	}

	result := json.ParseJSON(doc)
	code, name := result.Get("code"), result.Get("name")
	if code.Type != gjson.Number || name.Type != gjson.String || code.Num != float64(code.Int()) {
		return Status{}, ErrMalformedJSON
	}

	for _, s := range c.GetByCode(int(code.Int())) {
		if s.code == StatusCode(code.Int()) && s.name == name.String() {
			return s, nil
		}
	}

	return Status{}, fmt.Errorf("%w: code=%d, name=%q", ErrUnknownStatus, code.Int(), name.String())
}

// ParseCode parses s as a base-10 status code. A leading sign is accepted,
// surrounding whitespace is not. Digits may come from any script, so "４０４"
// and "٤٠٤" both parse as 404.
func ParseCode(s string) (int, error) {
	code, err := strconv.Atoi(asciiDigits(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	return code, nil
}

// asciiDigits rewrites every Unicode decimal digit of s as its ASCII
// counterpart and leaves any other rune untouched.
func asciiDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > unicode.MaxASCII && unicode.Is(unicode.Nd, r) {
			r = '0' + digitValue(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// digitValue returns the value of a non-ASCII decimal digit. Decimal digits
// are encoded in runs of ten from zero to nine, and every range of the Nd
// table starts on a zero.
func digitValue(r rune) rune {
	for _, rg := range unicode.Nd.R16 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return (r - lo) / rune(rg.Stride) % 10
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return (r - lo) / rune(rg.Stride) % 10
		}
	}
	return 0
}

// GetByCode looks code up in the default catalog.
func GetByCode(code int) []Status {
	return defaultCatalog.GetByCode(code)
}

// GetByCodeString looks s up in the default catalog.
func GetByCodeString(s string) []Status {
	return defaultCatalog.GetByCodeString(s)
}

// Lookup looks code up in the default catalog.
func Lookup(code int) ([]Status, bool) {
	return defaultCatalog.Lookup(code)
}

// All returns every status of the default catalog.
func All() []Status {
	return defaultCatalog.All()
}

// FromJSON resolves doc against the default catalog.
func FromJSON(doc string) (Status, error) {
	return defaultCatalog.FromJSON(doc)
}
