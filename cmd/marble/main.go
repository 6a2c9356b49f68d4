package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/marble/internal/config"
	"github.com/san-kum/marble/internal/gui"
	"github.com/san-kum/marble/internal/scene"
	"github.com/san-kum/marble/internal/sim"
	"github.com/san-kum/marble/internal/stream"
	"github.com/san-kum/marble/internal/viz"
)

var (
	configFile string
	preset     string
	duration   float64
	addr       string
)

// loadConfig resolves the effective config: preset, then file, then
// defaults.
func loadConfig() (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (have %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "marble",
		Short: "marble run demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and plot the trajectory",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "duration in seconds")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream state over websockets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()
			return stream.NewServer(cfg).Run(ctx, addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8090", "listen address")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, serveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	const dt = 1.0 / 60.0
	frames := int(duration / dt)
	loop := &sim.Loop{Scene: scene.Bootstrap(cfg)}

	speeds := make([]float64, 0, frames)
	err = loop.Run(context.Background(), frames, dt, func(f sim.Frame) {
		speeds = append(speeds, f.Velocity.Len())
	})
	if err != nil {
		return err
	}

	if m := loop.Scene.Marble(); m != nil {
		fmt.Printf("after %.1fs: pos (%.2f, %.2f, %.2f) speed %.2f m/s\n",
			duration, m.Position.X(), m.Position.Y(), m.Position.Z(),
			m.Velocity.Len())
	}
	if len(speeds) > 1 {
		fmt.Println(asciigraph.Plot(speeds,
			asciigraph.Height(12),
			asciigraph.Caption("speed (m/s)")))
	}
	return nil
}
