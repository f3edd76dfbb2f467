package command

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ontograph/ontograph/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Ontograph version:", version.Version)
			fmt.Println("Git commit hash:", version.GitHash)
			if version.BuildDate != "" {
				fmt.Println("Build date:", version.BuildDate)
			}
			fmt.Println("Go version:", runtime.Version())
		},
	}
}
