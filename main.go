package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"StickerPad/internal/config"
	"StickerPad/internal/net"
	"StickerPad/internal/pad"
	"StickerPad/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	load := func() (config.Config, error) { return config.Load(cfgPath) }

	root := &cobra.Command{
		Use:   "stickerpad",
		Short: "Freehand sketch pad with stickers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			log.Println("Starting desktop sketchpad")
			ui.RunApp(cfg)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "TOML config file")
	root.AddCommand(newServeCmd(load), newRenderCmd(load), newDiscoverCmd())
	return root
}

func newServeCmd(load func() (config.Config, error)) *cobra.Command {
	var listen string
	var noAdvertise bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sketchpad to browsers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			if noAdvertise {
				cfg.Advertise = false
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return net.NewServer(cfg).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noAdvertise, "no-mdns", false, "do not advertise over mDNS")
	return cmd
}

func newRenderCmd(load func() (config.Config, error)) *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "render SCRIPT",
		Short: "Replay a JSON command script and export the drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			var in io.Reader = os.Stdin
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			p, err := replay(cfg, in)
			if err != nil {
				return err
			}
			w, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer w.Close()
			if format == "pdf" {
				return p.ExportPDF(w)
			}
			return p.ExportPNG(w)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "sketchpad.png", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "png", "png or pdf")
	return cmd
}

// replay applies a JSON array of commands to a fresh pad. Export commands
// are skipped; the caller exports once at the end.
func replay(cfg config.Config, in io.Reader) (*pad.Pad, error) {
	var cmds []pad.Command
	if err := json.NewDecoder(in).Decode(&cmds); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	p := pad.New(cfg, nil)
	for i, c := range cmds {
		if c.Type == pad.CmdExport || c.Type == pad.CmdExportPDF {
			continue
		}
		if err := p.Apply(c); err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
	}
	return p, nil
}

func newDiscoverCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List sketchpad servers on the local network",
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := net.Browse(timeout)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no sketchpad servers found")
			}
			for _, u := range found {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 2*time.Second, "how long to wait for answers")
	return cmd
}
