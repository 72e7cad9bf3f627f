/*
 * @Author: thepoy
 * @Email: thepoy@163.com
 * @File Name: main_test.go
 * @Created: 2023-04-01 21:02:09
 * @Modified: 2023-04-02 10:05:21
 */

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-predator/httpstatus"
	"github.com/go-predator/httpstatus/store"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tidwall/gjson"
)

func exec(args []string, stdin string) (int, string, string) {
	var stdout, stderr, logs bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr, &logs)
	return code, stdout.String(), stderr.String() + logs.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestLookupArgs(t *testing.T) {
	Convey("json output for arguments", t, func() {
		code, out, logs := exec([]string{"-v", "-json", "451", "abc", "200"}, "")
		So(code, ShouldEqual, 0)

		ls := lines(out)
		So(len(ls), ShouldEqual, 4)
		So(gjson.Get(ls[0], "name").String(), ShouldEqual, "Unavailable For Legal Reasons")
		So(gjson.Get(ls[1], "name").String(), ShouldEqual, "Redirect")
		So(gjson.Get(ls[2], "code").Int(), ShouldEqual, 999)
		So(ls[3], ShouldEqual, httpstatus.GetByCode(200)[0].JSON())

		So(logs, ShouldContainSubstring, `"input":"abc"`)
	})

	Convey("display output by default", t, func() {
		code, out, _ := exec([]string{"404"}, "")
		So(code, ShouldEqual, 0)
		So(out, ShouldEqual, httpstatus.GetByCode(404)[0].String()+"\n")
	})

	Convey("stdin when there are no arguments", t, func() {
		code, out, _ := exec([]string{"-json"}, " 103 \n\n418\r\n")
		So(code, ShouldEqual, 0)

		ls := lines(out)
		So(len(ls), ShouldEqual, 3)
		So(gjson.Get(ls[1], "name").String(), ShouldEqual, "Early Hints")
		So(gjson.Get(ls[2], "code").Int(), ShouldEqual, 418)
	})

	Convey("the whole catalog", t, func() {
		code, out, _ := exec([]string{"-json", "-all"}, "")
		So(code, ShouldEqual, 0)
		So(len(lines(out)), ShouldEqual, httpstatus.Default().Len())
	})

	Convey("bad flags", t, func() {
		code, _, errOut := exec([]string{"-nope"}, "")
		So(code, ShouldEqual, 2)
		So(errOut, ShouldContainSubstring, "Usage: httpstatus")
	})

	Convey("help exits cleanly", t, func() {
		for _, arg := range []string{"-h", "-help"} {
			code, out, errOut := exec([]string{arg}, "")
			So(code, ShouldEqual, 0)
			So(out, ShouldEqual, "")
			So(errOut, ShouldContainSubstring, "Usage: httpstatus")
			So(errOut, ShouldContainSubstring, "-export")
		}
	})

	Convey("unknown codes are only logged with -v", t, func() {
		_, _, logs := exec([]string{"abc"}, "")
		So(logs, ShouldNotContainSubstring, `"input":"abc"`)
	})

	Convey("-compress without -export", t, func() {
		code, out, logs := exec([]string{"-compress", "200"}, "")
		So(code, ShouldEqual, 0)
		So(out, ShouldEqual, httpstatus.GetByCode(200)[0].String()+"\n")
		So(logs, ShouldContainSubstring, `"level":"warn"`)
		So(logs, ShouldContainSubstring, "-compress only applies to -export")
	})
}

func TestLogFile(t *testing.T) {
	Convey("the log is written to the console and the file", t, func() {
		path := filepath.Join(t.TempDir(), "httpstatus.log")
		code, _, logs := exec([]string{"-v", "-log", path, "abc"}, "")
		So(code, ShouldEqual, 0)
		So(logs, ShouldContainSubstring, `"input":"abc"`)

		content, err := os.ReadFile(path)
		So(err, ShouldBeNil)
		So(gjson.Get(string(content), "input").String(), ShouldEqual, "abc")
		So(gjson.Get(string(content), "level").String(), ShouldEqual, "debug")
	})

	Convey("a log file that cannot be created", t, func() {
		path := filepath.Join(t.TempDir(), "missing", "httpstatus.log")
		code, out, logs := exec([]string{"-log", path, "404"}, "")
		So(code, ShouldEqual, 1)
		So(out, ShouldEqual, "")
		So(gjson.Get(logs, "log").String(), ShouldEqual, path)
	})
}

func TestExport(t *testing.T) {
	Convey("export the catalog", t, func() {
		path := filepath.Join(t.TempDir(), "catalog.sqlite")
		code, out, _ := exec([]string{"-export", path, "-compress"}, "")
		So(code, ShouldEqual, 0)
		So(out, ShouldEqual, "")

		s := store.NewSQLiteStore(store.WithURI(path), store.WithCompression(true))
		So(s.Init(), ShouldBeNil)
		defer s.Close()

		records, err := s.ByCode(499)
		So(err, ShouldBeNil)
		So(len(records), ShouldEqual, 2)
		So(records[0].Description, ShouldEqual, "indicates that a token is required but was not submitted.")
	})

	Convey("export into a directory that does not exist", t, func() {
		path := filepath.Join(t.TempDir(), "missing", "catalog.sqlite")
		code, _, logs := exec([]string{"-export", path}, "")
		So(code, ShouldEqual, 1)
		So(logs, ShouldContainSubstring, `"level":"error"`)
	})

	Convey("codes and output flags are ignored by -export", t, func() {
		path := filepath.Join(t.TempDir(), "catalog.sqlite")
		code, out, logs := exec([]string{"-export", path, "-json", "-all", "404", "abc"}, "")
		So(code, ShouldEqual, 0)
		So(out, ShouldEqual, "")

		line := gjson.Parse(logs)
		So(line.Get("level").String(), ShouldEqual, "warn")
		So(line.Get("message").String(), ShouldEqual, "ignored with -export")
		So(line.Get("ignored").String(), ShouldEqual, `["-json","-all","404","abc"]`)

		s := store.NewSQLiteStore(store.WithURI(path))
		So(s.Init(), ShouldBeNil)
		defer s.Close()
		n, err := s.Count()
		So(err, ShouldBeNil)
		So(n, ShouldEqual, httpstatus.Default().Len())
	})
}
