package command

import (
	"net"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ontograph/ontograph/clog"
	chttp "github.com/ontograph/ontograph/internal/http"
)

const (
	KeyListenHost = "server.host"
	KeyListenPort = "server.port"
)

func NewHttpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the query and export API on the given host and port.",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHandle(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := getContext()
			defer cancel()

			if watch, _ := cmd.Flags().GetBool("watch"); watch {
				go func() {
					if err := h.Watch(ctx); err != nil && ctx.Err() == nil {
						clog.Errorf("watch: %v", err)
					}
				}()
			}

			addr := net.JoinHostPort(viper.GetString(KeyListenHost), viper.GetString(KeyListenPort))
			return chttp.ListenAndServe(addr, h)
		},
	}
	cmd.Flags().String("host", "127.0.0.1", "host to listen on")
	cmd.Flags().String("port", "64210", "port to listen on")
	cmd.Flags().Bool("watch", false, "reload the graph model when the file changes")
	viper.BindPFlag(KeyListenHost, cmd.Flags().Lookup("host"))
	viper.BindPFlag(KeyListenPort, cmd.Flags().Lookup("port"))
	return cmd
}
