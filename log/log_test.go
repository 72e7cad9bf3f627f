/*
 * @Author:    thepoy
 * @Email:     thepoy@163.com
 * @File Name: log_test.go
 * @Created:   2023-03-31 20:40:19
 * @Modified:  2023-03-31 21:02:55
 */

package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tidwall/gjson"
)

type code int

func (c code) String() string { return "code-" + strings.Repeat("x", int(c)) }

func TestLogger(t *testing.T) {
	os.Unsetenv("DEBUG")

	Convey("json lines with typed args", t, func() {
		var buf bytes.Buffer
		l := NewLogger(INFO, &buf)

		l.Info("lookup",
			NewArg("code", 404),
			NewArg("matched", true),
			NewArg("names", []string{"Not Found"}),
			NewArg("took", time.Millisecond),
			NewArg("stringer", code(2)),
		)

		line := gjson.Parse(buf.String())
		So(line.Get("level").String(), ShouldEqual, "info")
		So(line.Get("message").String(), ShouldEqual, "lookup")
		So(line.Get("code").Int(), ShouldEqual, 404)
		So(line.Get("matched").Bool(), ShouldBeTrue)
		So(line.Get("names.0").String(), ShouldEqual, "Not Found")
		So(line.Get("stringer").String(), ShouldEqual, "code-xx")
	})

	Convey("levels filter messages", t, func() {
		var buf bytes.Buffer
		l := NewLogger(WARNING, &buf)

		l.Debug("hidden")
		l.Info("hidden")
		So(buf.Len(), ShouldEqual, 0)

		l.Error(errors.New("export failed"), NewArg("path", "x.sqlite"))
		line := gjson.Parse(buf.String())
		So(line.Get("level").String(), ShouldEqual, "error")
		So(line.Get("error").String(), ShouldEqual, "export failed")
		So(line.Get("path").String(), ShouldEqual, "x.sqlite")

		buf.Reset()
		l.SetLevel(DEBUG)
		l.Debug("shown")
		So(gjson.Get(buf.String(), "message").String(), ShouldEqual, "shown")
		So(l.Out(), ShouldEqual, &buf)
	})

	Convey("DEBUG in the environment", t, func() {
		for _, v := range []string{"", "0", "false", "FALSE"} {
			os.Setenv("DEBUG", v)
			So(IsDebug(), ShouldBeFalse)
		}
		os.Setenv("DEBUG", "1")
		So(IsDebug(), ShouldBeTrue)
		os.Unsetenv("DEBUG")
	})

	Convey("file writer next to another writer", t, func() {
		var console bytes.Buffer
		path := filepath.Join(t.TempDir(), "httpstatus.log")
		w, err := ToFileAnd(&console, path, -1)
		So(err, ShouldBeNil)

		l := NewLogger(INFO, w)
		l.Info("saved")
		l.Warning("twice", NewArg("code", 999))

		content, err := os.ReadFile(path)
		So(err, ShouldBeNil)
		So(string(content), ShouldContainSubstring, `"message":"saved"`)
		So(string(content), ShouldContainSubstring, `"level":"warn"`)
		So(console.String(), ShouldEqual, string(content))

		_, err = ToFileAnd(&console, filepath.Join(path, "nope"), -1)
		So(err, ShouldNotBeNil)
	})
}
