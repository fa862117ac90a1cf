// Package terminal generates simulated diagnostic command output for
// the remote terminal surface. The text is narrative flavor for the
// presentation layer; none of it feeds back into scoring.
package terminal

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Output is the result of one simulated command.
type Output struct {
	Command  string
	Lines    []string
	ExitCode int
	Duration time.Duration
	Warnings []string
	Errors   []string
}

// Generate simulates running command on the learner's workstation.
// scenarioID selects scenario-specific failure behavior; unknown
// commands produce the familiar not-recognized error.
func Generate(command, scenarioID string) Output {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(command)))
	if len(fields) == 0 {
		return unknownCommand(command)
	}
	base, args := fields[0], fields[1:]

	switch base {
	case "ping":
		return pingOutput(firstOr(args, "google.com"), scenarioID)
	case "ipconfig", "ifconfig":
		return ipconfigOutput(args)
	case "nslookup":
		return nslookupOutput(firstOr(args, "google.com"))
	case "netstat":
		return netstatOutput(args)
	case "tracert", "traceroute":
		return tracerouteOutput(firstOr(args, "google.com"))
	case "arp":
		return arpOutput(args)
	case "systeminfo":
		return systemInfoOutput()
	case "tasklist", "ps":
		return processListOutput()
	default:
		return unknownCommand(command)
	}
}

func firstOr(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}

func randomIP() string {
	return fmt.Sprintf("%d.%d.%d.%d", rand.IntN(255), rand.IntN(255), rand.IntN(255), rand.IntN(255))
}

func pingOutput(target, scenarioID string) Output {
	// The VPN scenario simulates a broken network path.
	if scenarioID == "vpn-failure" {
		ip := randomIP()
		return Output{
			Command: "ping " + target,
			Lines: []string{
				"",
				fmt.Sprintf("Pinging %s [%s] with 32 bytes of data:", target, ip),
				"Request timed out.",
				"Request timed out.",
				"Request timed out.",
				"Request timed out.",
				"",
				fmt.Sprintf("Ping statistics for %s:", ip),
				"    Packets: Sent = 4, Received = 0, Lost = 4 (100% loss),",
				"",
			},
			ExitCode: 1,
			Duration: 4200 * time.Millisecond,
			Warnings: []string{"Network connectivity issues detected"},
			Errors:   []string{"100% packet loss - host unreachable"},
		}
	}

	ip := randomIP()
	base := rand.IntN(20) + 5
	reply := func() string {
		return fmt.Sprintf("Reply from %s: bytes=32 time=%dms TTL=56", ip, base+rand.IntN(5))
	}
	return Output{
		Command: "ping " + target,
		Lines: []string{
			"",
			fmt.Sprintf("Pinging %s [%s] with 32 bytes of data:", target, ip),
			reply(), reply(), reply(), reply(),
			"",
			fmt.Sprintf("Ping statistics for %s:", ip),
			"    Packets: Sent = 4, Received = 4, Lost = 0 (0% loss),",
			"Approximate round trip times in milli-seconds:",
			fmt.Sprintf("    Minimum = %dms, Maximum = %dms, Average = %dms", base, base+8, base+3),
			"",
		},
		ExitCode: 0,
		Duration: 3100 * time.Millisecond,
	}
}

func ipconfigOutput(args []string) Output {
	cmd := strings.TrimSpace("ipconfig " + strings.Join(args, " "))
	for _, a := range args {
		if a == "/all" {
			return Output{
				Command: cmd,
				Lines: []string{
					"",
					"Windows IP Configuration",
					"",
					"   Host Name . . . . . . . . . . . . : WORKSTATION-01",
					"   Primary Dns Suffix  . . . . . . . : corp.contoso.com",
					"   Node Type . . . . . . . . . . . . : Hybrid",
					"",
					"Ethernet adapter Local Area Connection:",
					"",
					"   Connection-specific DNS Suffix  . : corp.contoso.com",
					"   Description . . . . . . . . . . . : Intel(R) Ethernet Connection",
					"   Physical Address. . . . . . . . . : 00-1B-21-85-A3-C2",
					"   DHCP Enabled. . . . . . . . . . . : Yes",
					"   IPv4 Address. . . . . . . . . . . : 192.168.1.100(Preferred)",
					"   Subnet Mask . . . . . . . . . . . : 255.255.255.0",
					"   Default Gateway . . . . . . . . . : 192.168.1.1",
					"   DHCP Server . . . . . . . . . . . : 192.168.1.1",
					"   DNS Servers . . . . . . . . . . . : 8.8.8.8",
					"                                       8.8.4.4",
					"",
				},
				ExitCode: 0,
				Duration: 450 * time.Millisecond,
			}
		}
	}
	return Output{
		Command: cmd,
		Lines: []string{
			"",
			"Windows IP Configuration",
			"",
			"Ethernet adapter Local Area Connection:",
			"",
			"   Connection-specific DNS Suffix  . : corp.contoso.com",
			"   IPv4 Address. . . . . . . . . . . : 192.168.1.100",
			"   Subnet Mask . . . . . . . . . . . : 255.255.255.0",
			"   Default Gateway . . . . . . . . . : 192.168.1.1",
			"",
		},
		ExitCode: 0,
		Duration: 320 * time.Millisecond,
	}
}

func nslookupOutput(domain string) Output {
	return Output{
		Command: "nslookup " + domain,
		Lines: []string{
			"Server:  dns.corp.contoso.com",
			"Address:  192.168.1.1",
			"",
			"Non-authoritative answer:",
			"Name:    " + domain,
			"Address:  " + randomIP(),
			"",
		},
		ExitCode: 0,
		Duration: 890 * time.Millisecond,
	}
}

func netstatOutput(args []string) Output {
	return Output{
		Command: strings.TrimSpace("netstat " + strings.Join(args, " ")),
		Lines: []string{
			"",
			"Active Connections",
			"",
			"  Proto  Local Address          Foreign Address        State",
			"  TCP    192.168.1.100:49152   40.77.226.250:443     ESTABLISHED",
			"  TCP    192.168.1.100:49153   52.97.144.85:443      ESTABLISHED",
			"  TCP    192.168.1.100:49154   192.168.1.10:80       ESTABLISHED",
			"  TCP    192.168.1.100:3389    0.0.0.0:0              LISTENING",
			"  TCP    192.168.1.100:445     0.0.0.0:0              LISTENING",
			"  UDP    192.168.1.100:68      *:*",
			"  UDP    192.168.1.100:137     *:*",
			"",
		},
		ExitCode: 0,
		Duration: 670 * time.Millisecond,
	}
}

func tracerouteOutput(target string) Output {
	return Output{
		Command: "tracert " + target,
		Lines: []string{
			"",
			fmt.Sprintf("Tracing route to %s [%s]", target, randomIP()),
			"over a maximum of 30 hops:",
			"",
			"  1    <1 ms    <1 ms    <1 ms  192.168.1.1",
			"  2     5 ms     4 ms     6 ms  10.0.0.1",
			"  3    12 ms    11 ms    13 ms  172.16.1.1",
			"  4    18 ms    16 ms    19 ms  203.0.113.1",
			"  5    25 ms    23 ms    27 ms  198.51.100.1",
			fmt.Sprintf("  6    31 ms    29 ms    33 ms  %s", randomIP()),
			"",
			"Trace complete.",
			"",
		},
		ExitCode: 0,
		Duration: 8300 * time.Millisecond,
	}
}

func arpOutput(args []string) Output {
	return Output{
		Command: strings.TrimSpace("arp " + strings.Join(args, " ")),
		Lines: []string{
			"",
			"Interface: 192.168.1.100 --- 0x2",
			"  Internet Address      Physical Address      Type",
			"  192.168.1.1           00-14-d1-a3-b5-7e     dynamic",
			"  192.168.1.10          00-1b-21-85-a3-c4     dynamic",
			"  192.168.1.15          08-00-27-12-34-56     dynamic",
			"  192.168.1.255         ff-ff-ff-ff-ff-ff     static",
			"",
		},
		ExitCode: 0,
		Duration: 240 * time.Millisecond,
	}
}

func systemInfoOutput() Output {
	return Output{
		Command: "systeminfo",
		Lines: []string{
			"",
			"Host Name:                 WORKSTATION-01",
			"OS Name:                   Microsoft Windows 10 Pro",
			"OS Version:                10.0.19045 N/A Build 19045",
			"System Manufacturer:       Dell Inc.",
			"System Model:              OptiPlex 7090",
			"System Type:               x64-based PC",
			"Total Physical Memory:     16,384 MB",
			"Available Physical Memory: 8,192 MB",
			"Network Card(s):           1 NIC(s) Installed.",
			"                           [01]: Intel(R) Ethernet Connection",
			"                                 IP address(es)",
			"                                 [01]: 192.168.1.100",
			"",
		},
		ExitCode: 0,
		Duration: 2100 * time.Millisecond,
	}
}

func processListOutput() Output {
	return Output{
		Command: "tasklist",
		Lines: []string{
			"",
			"Image Name                     PID Session Name        Session#    Mem Usage",
			"========================= ======== ================ =========== ============",
			"System Idle Process              0 Services                   0          8 K",
			"System                           4 Services                   0        228 K",
			"services.exe                   688 Services                   0      8,960 K",
			"lsass.exe                      704 Services                   0     12,288 K",
			"svchost.exe                    812 Services                   0     16,384 K",
			"explorer.exe                 2,156 Console                    1     32,768 K",
			"chrome.exe                   3,248 Console                    1    128,512 K",
			"",
		},
		ExitCode: 0,
		Duration: 890 * time.Millisecond,
	}
}

func unknownCommand(command string) Output {
	return Output{
		Command: command,
		Lines: []string{
			fmt.Sprintf("'%s' is not recognized as an internal or external command,", command),
			"operable program or batch file.",
		},
		ExitCode: 1,
		Duration: 50 * time.Millisecond,
		Errors:   []string{"Command not found"},
	}
}
