// Package discovery provides mDNS-based discovery of ggadmin backends.
//
// This package implements multicast DNS (mDNS) service discovery to locate
// admin backends on the local network. Backends advertise themselves using
// the "_ggadmin._tcp" service type.
//
// # Discovery Process
//
//  1. Broadcasts mDNS queries on the local network
//  2. Listens for service advertisements from backends
//  3. Collects backend information (instance name, IP, port, TXT metadata)
//  4. Returns the discovered backends after the timeout period
//
// # Usage Example
//
//	backends, err := discovery.ScanForBackends(10 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, backend := range backends {
//	    fmt.Printf("Found: %s at %s\n", backend.Name, backend.BaseURL())
//	}
package discovery
