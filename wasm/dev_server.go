//go:build !wasm
// +build !wasm

// Not to be used for anything but localhost testing of the wasm build.
package main

import (
	"flag"
	"net/http"
	"time"

	"fortio.org/cli"
	"fortio.org/log"
)

func main() {
	port := flag.String("port", ":8080", "`address` to listen on")
	cli.ArgsHelp = "directory"
	cli.MinArgs = 1
	cli.MaxArgs = 1
	cli.Main()
	path := flag.Arg(0)
	log.Infof("Serving %s on %s", path, *port)
	server := &http.Server{
		Addr:              *port,
		Handler:           http.FileServer(http.Dir(path)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatalf("%v", server.ListenAndServe())
}
