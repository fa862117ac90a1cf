package terminal

import "time"

// CheckStatus is the outcome of one simulated diagnostic check.
type CheckStatus string

const (
	StatusPass    CheckStatus = "pass"
	StatusWarning CheckStatus = "warning"
	StatusFail    CheckStatus = "fail"
)

// DiagnosticResult is one entry of a simulated network health report.
type DiagnosticResult struct {
	Test             string
	Status           CheckStatus
	Details          string
	Timestamp        time.Time
	TechnicalDetails []string
	SuggestedActions []string
}

// NetworkDiagnostics returns a simulated health report for the
// workstation, with scenario-specific failures layered on top of a
// healthy baseline.
func NetworkDiagnostics(scenarioID string) []DiagnosticResult {
	now := time.Now()
	results := []DiagnosticResult{
		{
			Test:      "Network Adapter Status",
			Status:    StatusPass,
			Details:   "All network adapters are functioning normally",
			Timestamp: now,
			TechnicalDetails: []string{
				"Intel Ethernet Connection - Connected",
				"Link Speed: 1 Gbps",
				"Duplex: Full",
			},
			SuggestedActions: []string{"Monitor adapter performance"},
		},
		{
			Test:      "IP Configuration",
			Status:    StatusPass,
			Details:   "IP address configuration is valid",
			Timestamp: now,
			TechnicalDetails: []string{
				"IPv4 Address: 192.168.1.100/24",
				"Default Gateway: 192.168.1.1",
				"DNS Servers: 8.8.8.8, 8.8.4.4",
			},
			SuggestedActions: []string{"Configuration appears correct"},
		},
		{
			Test:      "DNS Resolution",
			Status:    StatusPass,
			Details:   "DNS queries are resolving correctly",
			Timestamp: now,
			TechnicalDetails: []string{
				"Primary DNS: 8.8.8.8 (Response: 23ms)",
				"Secondary DNS: 8.8.4.4 (Response: 28ms)",
			},
			SuggestedActions: []string{"DNS configuration is optimal"},
		},
	}

	switch scenarioID {
	case "network-outage":
		results = append(results, DiagnosticResult{
			Test:      "Server Connectivity",
			Status:    StatusFail,
			Details:   "Cannot reach critical file server",
			Timestamp: now,
			TechnicalDetails: []string{
				"File Server (192.168.1.10): Timeout",
				"Port 445 (SMB): No response",
			},
			SuggestedActions: []string{
				"Check server power status",
				"Verify network connectivity to server",
				"Contact server administrator",
			},
		})
	case "vpn-failure":
		results[0].Status = StatusWarning
		results[0].Details = "Intermittent connectivity detected"
		results[0].TechnicalDetails = append(results[0].TechnicalDetails, "Packet loss: 15%")
		results = append(results, DiagnosticResult{
			Test:      "Gateway Connectivity",
			Status:    StatusFail,
			Details:   "Cannot reach default gateway consistently",
			Timestamp: now,
			TechnicalDetails: []string{
				"Gateway (192.168.1.1): 60% packet loss",
				"Response times: 200-5000ms (high variance)",
			},
			SuggestedActions: []string{
				"Check network cable connections",
				"Restart network adapter",
				"Contact network administrator",
			},
		})
	case "phone-outage":
		results = append(results, DiagnosticResult{
			Test:      "VoIP System Status",
			Status:    StatusWarning,
			Details:   "Voice quality issues detected",
			Timestamp: now,
			TechnicalDetails: []string{
				"PBX Server (192.168.1.50): Responding",
				"Jitter: 45ms (High)",
				"Packet loss: 8%",
			},
			SuggestedActions: []string{
				"Implement QoS prioritization",
				"Check bandwidth utilization",
			},
		})
	case "cascading-failure":
		results = append(results, DiagnosticResult{
			Test:      "Domain Controller",
			Status:    StatusFail,
			Details:   "Domain Controller unreachable, authentication failing",
			Timestamp: now,
			TechnicalDetails: []string{
				"DC01 (192.168.1.5): No response",
				"LDAP (389): Connection refused",
				"Kerberos (88): Timeout",
			},
			SuggestedActions: []string{
				"Escalate to crisis management immediately",
				"Activate business continuity procedures",
			},
		}, DiagnosticResult{
			Test:      "Storage Array",
			Status:    StatusFail,
			Details:   "Primary storage array offline",
			Timestamp: now,
			TechnicalDetails: []string{
				"SAN controller A: Offline",
				"SAN controller B: Degraded",
			},
			SuggestedActions: []string{
				"Contact storage vendor support",
				"Verify backup integrity before failover",
			},
		})
	}

	return results
}
