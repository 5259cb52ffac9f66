// Package evclient provides the entry point for constructing an Eventline API
// client implementing the eventline.Client interface.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/exograd/eventline-go/pkg/evclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // EVENTLINE_API_KEY, EVENTLINE_PROJECT_ID, EVENTLINE_ENDPOINT and
//	  // EVENTLINE_TIMEOUT are read from the environment.
//	  cli, err := evclient.NewFromEnvironment()
//	  if err != nil { log.Fatal(err) }
//
//	  account, err := cli.Accounts().Get(ctx)
//	  if err != nil { log.Fatal(err) }
//	  log.Println(account)
//
//	  projects, err := cli.Projects().ListAll(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # TLS
//
// Only https endpoints are accepted. Config.PinnedKeys (or
// EVENTLINE_PINNED_KEYS, comma separated) restricts the server public keys
// accepted after standard certificate verification.
package evclient
