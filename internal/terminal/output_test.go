package terminal

import (
	"strings"
	"testing"
)

func TestGenerateKnownCommands(t *testing.T) {
	tests := []struct {
		command  string
		exitCode int
		wantLine string
	}{
		{"ping fileserver", 0, "Ping statistics"},
		{"ipconfig", 0, "Windows IP Configuration"},
		{"ipconfig /all", 0, "Physical Address"},
		{"nslookup corp.contoso.com", 0, "Non-authoritative answer:"},
		{"netstat -an", 0, "Active Connections"},
		{"tracert google.com", 0, "Trace complete."},
		{"arp -a", 0, "Internet Address"},
		{"systeminfo", 0, "Host Name:"},
		{"tasklist", 0, "Image Name"},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			out := Generate(tt.command, "network-outage")
			if out.ExitCode != tt.exitCode {
				t.Errorf("exit code = %d, want %d", out.ExitCode, tt.exitCode)
			}
			if !anyLineContains(out.Lines, tt.wantLine) {
				t.Errorf("output missing %q:\n%s", tt.wantLine, strings.Join(out.Lines, "\n"))
			}
		})
	}
}

func TestGeneratePingFailsOnBrokenNetwork(t *testing.T) {
	out := Generate("ping fileserver", "vpn-failure")
	if out.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", out.ExitCode)
	}
	if !anyLineContains(out.Lines, "Request timed out.") {
		t.Error("broken-network ping should time out")
	}
	if len(out.Errors) == 0 {
		t.Error("broken-network ping should report errors")
	}
}

func TestGenerateUnknownCommand(t *testing.T) {
	out := Generate("frobnicate --all", "network-outage")
	if out.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", out.ExitCode)
	}
	if !anyLineContains(out.Lines, "is not recognized") {
		t.Errorf("unexpected output: %v", out.Lines)
	}
}

func TestNetworkDiagnosticsPerScenario(t *testing.T) {
	tests := []struct {
		scenarioID string
		wantTest   string
		wantStatus CheckStatus
	}{
		{"network-outage", "Server Connectivity", StatusFail},
		{"vpn-failure", "Gateway Connectivity", StatusFail},
		{"phone-outage", "VoIP System Status", StatusWarning},
		{"cascading-failure", "Domain Controller", StatusFail},
		{"cascading-failure", "Storage Array", StatusFail},
	}
	for _, tt := range tests {
		results := NetworkDiagnostics(tt.scenarioID)
		found := false
		for _, r := range results {
			if r.Test == tt.wantTest {
				found = true
				if r.Status != tt.wantStatus {
					t.Errorf("%s %s status = %q, want %q", tt.scenarioID, tt.wantTest, r.Status, tt.wantStatus)
				}
			}
		}
		if !found {
			t.Errorf("%s: check %q missing from report", tt.scenarioID, tt.wantTest)
		}
	}

	// Unknown scenarios get the healthy baseline only.
	if got := len(NetworkDiagnostics("unknown")); got != 3 {
		t.Errorf("baseline report has %d checks, want 3", got)
	}
}

func anyLineContains(lines []string, want string) bool {
	for _, l := range lines {
		if strings.Contains(l, want) {
			return true
		}
	}
	return false
}
