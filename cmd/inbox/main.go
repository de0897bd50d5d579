// Package main starts the inbox service.
//
// This process owns the submission endpoint and its SQLite storage so
// accepted contact messages are durably filed.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	inboxcmd "github.com/brookmere/contactsite/internal/cmd/inbox"
	"github.com/brookmere/contactsite/internal/platform/config"
)

func main() {
	cfg, err := inboxcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[INBOX] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := inboxcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
