// internal/cli/packages.go
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sysfacts/sysfacts/pkg/packages"
)

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Count installed packages",
	Long:  `Probe the host for known package managers and count the installed packages of each.`,
	RunE:  runPackages,
}

func runPackages(cmd *cobra.Command, args []string) error {
	counts := packages.New().CountPkgs()
	if len(counts) == 0 {
		fmt.Println("No package managers detected.")
		return nil
	}

	manager := color.New(color.FgGreen)
	total := 0
	for _, c := range counts {
		manager.Printf("%-12s", string(c.Manager))
		fmt.Println(c.Count)
		total += c.Count
	}
	fmt.Printf("\nTotal: %d packages across %d managers\n", total, len(counts))
	return nil
}
