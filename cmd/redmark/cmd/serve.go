package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/redmarklab/redmark/pkg/photoserver"
)

var (
	servePort int
	serveRoot string
	serveName string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Receive photos from a phone on the LAN",
	Long: `Start the photo inbox server. Phones on the same network open the
printed URL, snap photos and upload them; each upload lands in the
project's images directory and is recorded in the upload ledger.

Settings fall back to REDMARK_PORT, REDMARK_ROOT and REDMARK_PROJECT,
and a .env file in the working directory is honored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := photoserver.LoadConfig()
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("root") {
			cfg.Root = serveRoot
		}
		if cmd.Flags().Changed("name") {
			cfg.ProjectName = serveName
		}

		log := logrus.StandardLogger()
		srv, err := photoserver.NewServer(cfg, log)
		if err != nil {
			return err
		}
		if err := srv.Start(); err != nil {
			return err
		}
		fmt.Printf("Scan from your phone: %s\n", srv.URL())

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8000, "listen port (0 picks a free one)")
	serveCmd.Flags().StringVar(&serveRoot, "root", ".", "project root directory")
	serveCmd.Flags().StringVar(&serveName, "name", "untitled", "project name")
	rootCmd.AddCommand(serveCmd)
}
