package actions

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Имена хостов, IPv4 и IPv6 без символов, значимых для оболочки.
var hostPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9.:\-]*$`)

func pingHost(ctx context.Context, d Deps) error {
	target := d.IO.Value("Host or IP to ping", d.Settings.PingTarget)
	if !hostPattern.MatchString(target) {
		d.IO.Failf("Invalid host: %q", target)
		d.IO.Pause()
		return nil
	}
	runCommand(ctx, d, fmt.Sprintf("ping %s -n 4", target), false)
	return nil
}

func flushDNS(ctx context.Context, d Deps) error {
	runCommand(ctx, d, "ipconfig /flushdns", false)
	return nil
}

func restartNetworkServices(ctx context.Context, d Deps) error {
	d.IO.Printf("This restarts basic network services (DNS Client, DHCP).\n")
	if !d.IO.Confirm("Continue?") {
		return nil
	}
	runCommand(ctx, d, "net stop dnscache && net start dnscache", false)
	runCommand(ctx, d, "net stop dhcp && net start dhcp", false)
	return nil
}

func toggleFirewall(ctx context.Context, d Deps) error {
	switch strings.ToLower(d.IO.Value("(e)nable or (d)isable the Windows Firewall? (e/d)", "")) {
	case "e":
		runCommand(ctx, d, "netsh advfirewall set allprofiles state on", false)
	case "d":
		runCommand(ctx, d, "netsh advfirewall set allprofiles state off", false)
	default:
		d.IO.Failf("Invalid option.")
		d.IO.Pause()
	}
	return nil
}

func checkReachability(ctx context.Context, d Deps) error {
	d.IO.Printf("Sends one HTTP request through PowerShell (not a full bandwidth test).\n")
	line := fmt.Sprintf(`powershell -Command "Invoke-WebRequest -Uri '%s' -UseBasicParsing | Select-Object StatusCode"`,
		psQuote(d.Settings.ReachabilityURL))
	runCommand(ctx, d, line, false)
	return nil
}

// psQuote готовит s для строки PowerShell в одинарных кавычках внутри
// аргумента cmd в двойных кавычках.
func psQuote(s string) string {
	s = strings.ReplaceAll(s, `"`, "")
	return strings.ReplaceAll(s, "'", "''")
}
