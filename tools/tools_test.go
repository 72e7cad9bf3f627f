/*
 * @Author: thepoy
 * @Email: thepoy@163.com
 * @File Name: tools_test.go
 * @Created: 2023-04-01 16:24:10
 * @Modified: 2023-04-01 16:39:52
 */

package tools

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStrip(t *testing.T) {
	Convey("strip blanks", t, func() {
		So(Strip(" 404\r\n"), ShouldEqual, "404")
		So(Strip("\t　451　"), ShouldEqual, "451")
		So(Strip(" \n\t"), ShouldEqual, "")
		So(Strip(""), ShouldEqual, "")
		So(Strip("4 0 4"), ShouldEqual, "4 0 4")
	})

	Convey("trim custom characters", t, func() {
		So(Trim("--499--", "-"), ShouldEqual, "499")
		So(Trim("abc", ""), ShouldEqual, "abc")
	})
}

func TestZlib(t *testing.T) {
	Convey("compress and decompress", t, func() {
		src := bytes.Repeat([]byte("The requested resource was not found. "), 20)

		compressed, err := Compress(src)
		So(err, ShouldBeNil)
		So(len(compressed), ShouldBeLessThan, len(src))

		dec, err := Decompress(compressed)
		So(err, ShouldBeNil)
		So(bytes.Equal(dec, src), ShouldBeTrue)
	})

	Convey("corrupted input", t, func() {
		_, err := Decompress([]byte("not zlib"))
		So(err, ShouldNotBeNil)
	})
}
