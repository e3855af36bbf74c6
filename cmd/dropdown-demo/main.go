// Command dropdown-demo serves a live, browser-hosted instance of the
// dropdown widget. The widget core runs server-side; the page forwards
// raw interactions over a websocket and swaps in the re-rendered
// markup the server pushes back.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/go-widgets/dropdown/pkg/dropdown"
)

var (
	addr         string
	settingsPath string
)

var rootCmd = &cobra.Command{
	Use:   "dropdown-demo",
	Short: "Serve a live demo of the dropdown widget",
	Long: "Starts a local web server hosting the dropdown widget. The update/render\n" +
		"loop runs in this process; the browser only fires events and displays markup.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := dropdown.LoadSettingsFile(settingsPath)
		if err != nil {
			return err
		}
		return NewServer(addr, settings).Run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8099", "listen address")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "dropdown.yaml", "optional YAML settings file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
