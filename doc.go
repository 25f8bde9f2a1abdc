// Package unifi provides a Go client for the UniFi Network Integration API.
//
// The Network Integration API allows programmatic access to UniFi network
// infrastructure running on local controllers. It provides endpoints for
// listing sites, inspecting and restarting devices, reading device
// statistics, and tracking connected clients.
//
// # API Access
//
// The API is accessed locally through your UniFi controller at the path:
//
//	https://<controller-ip>/proxy/network/integrations
//
// # Authentication
//
// All requests require an API key generated from your UniFi controller:
//
//  1. Open your Site in UniFi Site Manager at unifi.ui.com
//  2. Navigate to Control Plane -> Admins & Users
//  3. Select your Admin and click Create API Key
//  4. Copy and securely store the key
//
// The key is sent in the X-API-KEY header on every request.
//
// # Basic Usage
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/unifi-go/unifi"
//	)
//
//	func main() {
//	    client, err := unifi.New("https://192.168.1.1/proxy/network/integrations", "your-api-key")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    sites, err := client.AllSites(context.Background())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for _, site := range sites {
//	        fmt.Printf("Site: %s (ID: %s)\n", site.Name, site.ID)
//	    }
//	}
//
// # Pagination
//
// List endpoints are paginated with offset/limit parameters. Three access
// styles are available:
//
//   - ListSites/ListDevices/ListClients fetch a single page and expose the
//     page envelope (offset, limit, count, totalCount).
//   - AllSites/AllDevices/AllClients traverse every page and return a
//     materialized slice in server order.
//   - SitesIter/DevicesIter/ClientsIter return a lazy iterator that fetches
//     pages on demand; breaking out of the loop stops further fetches.
//
//	for device, err := range client.DevicesIter(ctx, siteID) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(device.Name)
//	}
//
// # Error Handling
//
// Every failure is one of four typed errors, matchable with errors.As:
//
//   - *unifi.ValidationError - malformed caller input (bad UUID, bad config),
//     returned before any network call
//   - *unifi.TransportError - DNS, connection, TLS, or timeout failure
//   - *unifi.APIError - non-success HTTP status, carrying the server's error
//     code and message when an error envelope was returned
//   - *unifi.DecodeError - success status with a body that does not match
//     the expected shape
//
//	var apiErr *unifi.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//	    // device does not exist
//	}
//
// The client never retries: transient failures are surfaced immediately and
// retry policy is left to the caller.
//
// # Rate Limiting
//
// Requests are throttled locally with a token bucket (1000 requests/minute
// by default) to stay below controller-side limits. Configure the limit, or
// disable throttling entirely, via ClientConfig.RateLimitPerMinute.
//
// # TLS/SSL Certificates
//
// Certificate verification is on by default. Local controllers commonly use
// self-signed certificates; opt out explicitly for those deployments:
//
//	client, err := unifi.NewWithConfig(&unifi.ClientConfig{
//	    BaseURL:            "https://192.168.1.1/proxy/network/integrations",
//	    APIKey:             "your-api-key",
//	    InsecureSkipVerify: true,
//	})
//
// # Concurrency
//
// A Client is safe for concurrent use by multiple goroutines. Its only state
// is immutable configuration; every operation takes a context.Context and
// can be cancelled independently.
package unifi
