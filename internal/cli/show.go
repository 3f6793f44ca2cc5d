// internal/cli/show.go
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sysfacts/sysfacts"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every readout",
	Long:  `Query every information source on the host and print the results.`,
	RunE:  runShow,
}

var label = color.New(color.FgCyan, color.Bold)

// fact prints a single "Label: value" line, skipping metrics the host
// does not have. Hard failures are only surfaced with --debug.
func fact(name, value string, err error) {
	if err != nil {
		cfg.Debugf("%s: %v", strings.ToLower(name), err)
		return
	}
	label.Printf("%-12s", name)
	fmt.Println(value)
}

func runShow(cmd *cobra.Command, args []string) error {
	facts := sysfacts.New()

	if !cfg.IsHidden("general") {
		username, uerr := facts.General.Username()
		hostname, herr := facts.General.Hostname()
		if uerr == nil && herr == nil {
			fact("Host", username+"@"+hostname, nil)
		}

		osName, err := facts.General.OSName()
		if err != nil {
			osName, err = facts.General.Distribution()
		}
		fact("OS", osName, err)

		machine, err := facts.General.Machine()
		fact("Machine", machine, err)

		uptime, err := facts.General.Uptime()
		fact("Uptime", formatUptime(uptime), err)

		format := sysfacts.ShellRelative
		if cfg.LongShell {
			format = sysfacts.ShellAbsolute
		}
		shell, err := facts.General.Shell(format)
		fact("Shell", shell, err)

		terminal, err := facts.General.Terminal()
		fact("Terminal", terminal, err)

		de, err := facts.General.DesktopEnvironment()
		fact("Desktop", de, err)

		wm, err := facts.General.WindowManager()
		fact("WM", wm, err)
	}

	if !cfg.IsHidden("kernel") {
		kernel, err := facts.Kernel.PrettyKernel()
		fact("Kernel", kernel, err)
	}

	if !cfg.IsHidden("processor") {
		model, err := facts.Processor.ModelName()
		fact("CPU", model, err)

		cores, err := facts.Processor.Cores()
		fact("Cores", strconv.Itoa(cores), err)
	}

	if !cfg.IsHidden("memory") {
		used, uerr := facts.Memory.Used()
		total, terr := facts.Memory.Total()
		if uerr == nil && terr == nil {
			fact("Memory", formatKiB(used)+" / "+formatKiB(total), nil)
		} else if terr != nil {
			fact("Memory", "", terr)
		}
	}

	if !cfg.IsHidden("battery") {
		pct, perr := facts.Battery.Percentage()
		if perr != nil {
			fact("Battery", "", perr)
		} else if status, serr := facts.Battery.Status(); serr == nil {
			fact("Battery", fmt.Sprintf("%d%% (%s)", pct, status), nil)
		} else {
			fact("Battery", fmt.Sprintf("%d%%", pct), nil)
		}
	}

	if !cfg.IsHidden("network") && cfg.Interface != "" {
		addr, err := facts.Network.LogicalAddress(cfg.Interface)
		fact("IP", addr+" ("+cfg.Interface+")", err)
	}

	if !cfg.IsHidden("graphical") {
		session, err := facts.Graphical.Session()
		fact("Session", session, err)

		backlight, err := facts.Graphical.Backlight()
		fact("Backlight", strconv.Itoa(backlight)+"%", err)
	}

	if !cfg.IsHidden("packages") {
		fact("Packages", formatCounts(facts.Packages.CountPkgs()), nil)
	}

	return nil
}

// formatUptime renders seconds since boot as "3d 4h 12m".
func formatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, strconv.Itoa(days)+"d")
	}
	if hours > 0 {
		parts = append(parts, strconv.Itoa(hours)+"h")
	}
	parts = append(parts, strconv.Itoa(minutes)+"m")
	return strings.Join(parts, " ")
}

// formatKiB renders a kibibyte amount with a human unit.
func formatKiB(kib uint64) string {
	switch {
	case kib >= 1024*1024:
		return fmt.Sprintf("%.1f GiB", float64(kib)/(1024*1024))
	case kib >= 1024:
		return fmt.Sprintf("%.0f MiB", float64(kib)/1024)
	}
	return strconv.FormatUint(kib, 10) + " KiB"
}

// formatCounts renders package counts as "1842 (pacman), 12 (Flatpak)".
func formatCounts(counts []sysfacts.PackageCount) string {
	if len(counts) == 0 {
		return "none detected"
	}
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%d (%s)", c.Count, c.Manager))
	}
	return strings.Join(parts, ", ")
}
