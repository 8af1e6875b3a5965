package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/devstudio/devstudio-hello/internal/envinfo"
)

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of devstudio-hello",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "devstudio-hello version %s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", envinfo.RuntimeVersion())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
