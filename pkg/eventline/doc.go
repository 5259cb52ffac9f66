// Package eventline provides types, interfaces, and helpers for working with
// the Eventline HTTP API.
//
// # Overview
//
// The eventline package defines the domain types (Account, Organization,
// Project), the resource client interfaces (AccountsClient,
// OrganizationsClient, ProjectsClient) and the object mapping layer used to
// turn untyped JSON documents into those types. A concrete client is built by
// the evclient package, which wires configuration, transport and
// authentication.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/exograd/eventline-go/pkg/eventline"
//	  "github.com/exograd/eventline-go/pkg/evclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := evclient.New(&eventline.Config{APIKey: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  account, err := cli.Accounts().Get(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = account
//	}
//
// # Object mapping
//
// Every domain type implements ReadableObject. Its ReadData method is a flat
// list of typed field reads on an ObjectReader:
//
//	func (p *Project) ReadData(r *eventline.ObjectReader) {
//	  r.String("id", &p.ID)
//	  r.String("org_id", &p.OrgID)
//	  r.String("name", &p.Name)
//	}
//
// The reader stops at the first invalid field and Decode reports it as an
// *InvalidObjectError. A failed decode never returns a partially filled
// object.
//
// # Pagination
//
// List endpoints take a *Cursor and return a *Page[T]. Following Page.Next
// until it is nil enumerates the whole collection; FetchAll does exactly that:
//
//	projects, err := eventline.FetchAll(ctx, eventline.NewCursor(), cli.Projects().List)
//
// # Errors
//
// Transport failures are reported as *TransportError values whose Kind is one
// of KindNetworkFailure, KindMalformedResponse or KindAPIError. They match the
// ErrNetworkFailure, ErrMalformedResponse and ErrAPI sentinels with
// errors.Is. Invalid configuration is reported as *ConfigurationError before
// any network activity. The client never retries a request.
package eventline
