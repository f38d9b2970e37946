// Package adminapi is the HTTP/WebSocket client for the GoGevgelija admin
// backend.
//
// The client fetches record forms, submits edited values, and subscribes to
// validation-result pushes over WebSocket. The push channel is the explicit
// "error markup is present" signal the tab UI prefers over its fixed-delay
// fallback scan.
//
// # Error Handling
//
// All failures are wrapped in *APIError with a coarse type (network, HTTP,
// parse, validation, timeout) plus a retryable flag. Network and 5xx errors
// are retried with exponential backoff before surfacing.
//
// # Usage Example
//
//	client := adminapi.NewClient("http://192.168.1.50:8600")
//	f, err := client.GetForm(ctx, "listing/42")
//	if err != nil { ... }
//
//	result, err := client.SubmitForm(ctx, f.ID, f.Values())
//	if err != nil { ... }
//	result.ApplyTo(f)
package adminapi
