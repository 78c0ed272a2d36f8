//go:build !windows
// +build !windows

package main_test

import (
	"os"
	"testing"

	"fortio.org/testscript"
	main "grol.io/calc"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"calc": main.Main,
	}))
}

func TestCalcCli(t *testing.T) {
	testscript.Run(t, testscript.Params{Dir: "./"})
}
