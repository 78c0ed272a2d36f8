//go:build !no_pprof
// +build !no_pprof

package main

import (
	"flag"
	"os"
	"runtime"
	"runtime/pprof"

	"fortio.org/log"
)

var (
	cpuprofile = flag.String("profile-cpu", "", "write cpu profile to `file`, most useful with -bench")
	memprofile = flag.String("profile-mem", "", "write memory profile to `file`")
	cpuFile    *os.File
)

func init() {
	hookBefore = pprofBeforeHook
	hookAfter = pprofAfterHook
}

func pprofBeforeHook() int {
	if *cpuprofile == "" {
		return 0
	}
	f, err := os.Create(*cpuprofile)
	if err != nil {
		return log.FErrf("can't open file for cpu profile: %v", err)
	}
	err = pprof.StartCPUProfile(f)
	if err != nil {
		f.Close()
		return log.FErrf("can't start cpu profile: %v", err)
	}
	cpuFile = f
	log.Infof("Writing cpu profile to %s", *cpuprofile)
	return 0
}

func pprofAfterHook() int {
	if cpuFile != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		cpuFile = nil
	}
	if *memprofile == "" {
		return 0
	}
	f, err := os.Create(*memprofile)
	if err != nil {
		return log.FErrf("can't open file for mem profile: %v", err)
	}
	defer f.Close()
	runtime.GC() // up to date heap statistics.
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return log.FErrf("can't write mem profile: %v", err)
	}
	log.Infof("Wrote memory profile to %s", *memprofile)
	return 0
}
