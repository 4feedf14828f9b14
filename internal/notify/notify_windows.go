//go:build windows

package notify

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"
)

type windowsNotifier struct{}

func newNotifier() Notifier {
	return windowsNotifier{}
}

// Notify shows a balloon tip through PowerShell. Toast APIs need an
// installed AppUserModelID, which a bare executable does not have.
func (windowsNotifier) Notify(title, message string) error {
	script := fmt.Sprintf(`
Add-Type -AssemblyName System.Windows.Forms
$tip = New-Object System.Windows.Forms.NotifyIcon
$tip.Icon = [System.Drawing.SystemIcons]::Information
$tip.Visible = $true
$tip.ShowBalloonTip(5000, '%s', '%s', [System.Windows.Forms.ToolTipIcon]::Info)
`, escapePowerShell(title), escapePowerShell(message))

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("powershell balloon tip: %w", err)
	}
	return nil
}

func escapePowerShell(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}
