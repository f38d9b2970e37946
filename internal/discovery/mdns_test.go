package discovery

import (
	"net"
	"testing"

	"github.com/grandcat/zeroconf"
)

func TestParseServiceEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantName string
		wantIP   string
		wantPort int
	}{
		{
			name: "valid backend with IPv4",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "ggadmin-backend"},
				HostName:      "office-nuc.local.",
				Port:          8600,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
				Text:          []string{"path=/api", "proto=1"},
			},
			wantNil:  false,
			wantName: "ggadmin-backend",
			wantIP:   "192.168.1.50",
			wantPort: 8600,
		},
		{
			name: "IPv6 fallback",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "backup"},
				HostName:      "backup.local.",
				Port:          8600,
				AddrIPv6:      []net.IP{net.ParseIP("fe80::1")},
			},
			wantNil:  false,
			wantName: "backup",
			wantIP:   "fe80::1",
			wantPort: 8600,
		},
		{
			name: "zero port gets the default",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "no-port"},
				AddrIPv4:      []net.IP{net.ParseIP("10.0.0.5")},
			},
			wantNil:  false,
			wantName: "no-port",
			wantIP:   "10.0.0.5",
			wantPort: DefaultPort,
		},
		{
			name: "no address",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "ghost"},
				Port:          8600,
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := parseServiceEntry(tt.entry)

			if tt.wantNil {
				if backend != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", backend)
				}
				return
			}

			if backend == nil {
				t.Fatal("parseServiceEntry() = nil, want backend")
			}
			if backend.Name != tt.wantName {
				t.Errorf("Name = %v, want %v", backend.Name, tt.wantName)
			}
			if backend.IP != tt.wantIP {
				t.Errorf("IP = %v, want %v", backend.IP, tt.wantIP)
			}
			if backend.Port != tt.wantPort {
				t.Errorf("Port = %v, want %v", backend.Port, tt.wantPort)
			}
			if backend.DiscoveredAt.IsZero() {
				t.Error("DiscoveredAt should be set")
			}
		})
	}
}

func TestParseServiceEntryMetadata(t *testing.T) {
	entry := &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: "ggadmin-backend"},
		Port:          8600,
		AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
		Text:          []string{"path=/api", "flagonly"},
	}

	backend := parseServiceEntry(entry)
	if backend == nil {
		t.Fatal("parseServiceEntry() = nil")
	}

	if got := backend.GetMetadata("path"); got != "/api" {
		t.Errorf("GetMetadata(path) = %q, want /api", got)
	}
	if got := backend.GetMetadata("flagonly"); got != "" {
		t.Errorf("GetMetadata(flagonly) = %q, want empty", got)
	}
	if got := backend.GetMetadata("missing"); got != "" {
		t.Errorf("GetMetadata(missing) = %q, want empty", got)
	}
}

func TestBackendBaseURL(t *testing.T) {
	backend := &Backend{IP: "192.168.1.50", Port: 8600}
	if got := backend.BaseURL(); got != "http://192.168.1.50:8600" {
		t.Errorf("BaseURL() = %q", got)
	}
}

func TestNewScannerDefaults(t *testing.T) {
	scanner := NewScanner()
	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
}
