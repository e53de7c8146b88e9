package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the project root when testing, so artifacts like the logs
	// directory land in one place no matter which package runs. usage is
	//
	//   in some_test.go,
	//   import (
	//     _ "github.com/emma-alert/emma-broker/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)           // here runtime will return current file path
	dir := path.Join(path.Dir(filename), "..", "..") // and by double .. we will go to the project root
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
