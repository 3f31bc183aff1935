// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp/server"
	"minic/internal/lsp"
)

var version = "0.1.0" // Server version

func main() {
	verbosity := flag.Int("verbosity", 1, "log verbosity (0 = notices, 1 = info, 2 = debug)")
	logFile := flag.String("log", "", "write logs to this file instead of stderr")
	flag.Parse()

	var path *string
	if *logFile != "" {
		path = logFile
	}
	commonlog.Configure(*verbosity, path)

	log := commonlog.GetLogger("minic.lsp")

	handler := lsp.NewMinicHandler(version).Handler()

	// stdout carries the protocol, so glsp's own debug output stays off
	s := server.NewServer(handler, lsp.Name, false)

	log.Info("starting minic LSP server")

	if err := s.RunStdio(); err != nil {
		log.Errorf("error running minic LSP server: %s", err)
		os.Exit(1)
	}
}
