package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"angle-selector.klederson.com/internal/app"
	"angle-selector.klederson.com/internal/config"
	"angle-selector.klederson.com/internal/dial"
	"angle-selector.klederson.com/internal/gui"
	"angle-selector.klederson.com/internal/render"
	"angle-selector.klederson.com/internal/render/raster"
	"angle-selector.klederson.com/internal/render/svg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagDirection float64
	flagWidth     int
	flagHeight    int
	flagSize      int
	flagAngle     int
	flagFormat    string
	flagOutput    string
	flagConfig    string
	flagLog       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "angle-selector",
		Short: "Angle Selector - pick an angle by clicking a circular dial",
		Long: `Angle Selector draws a circular dial with twelve tick marks and a needle.
Click anywhere on the dial to point the needle there and read the angle.

0 is straight up and angles grow clockwise. A --direction of -1 or lower
mirrors the vertical sense of the measurement.`,
		RunE: runTerminal,
	}

	rootCmd.PersistentFlags().Float64Var(&flagDirection, "direction", 0, "Measurement direction (<= -1 flips vertically)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "JSON options file")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Dial container width in cells")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Dial container height in cells")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "Write log output to this file")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the dial in a desktop window",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&flagSize, "size", 0, "Dial container side in pixels")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a dial snapshot as SVG, HTML, PNG or WebP",
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&flagSize, "size", 0, "Dial container side in pixels")
	renderCmd.Flags().IntVar(&flagAngle, "angle", 0, "Angle to select before rendering")
	renderCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: svg, html, png or webp")
	renderCmd.Flags().StringVarP(&flagOutput, "out", "o", "", "Output file (stdout when empty)")

	rootCmd.AddCommand(guiCmd, renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadOptions(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()
	if flagConfig != "" {
		var err error
		if opts, err = config.Load(flagConfig); err != nil {
			return config.Options{}, err
		}
	}

	opts.Resolve(config.Flags{
		Direction:    flagDirection,
		DirectionSet: cmd.Flags().Changed("direction"),
		Width:        flagWidth,
		Height:       flagHeight,
		Size:         flagSize,
		Format:       flagFormat,
		Output:       flagOutput,
	})
	return opts, opts.Validate()
}

func runTerminal(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	if flagLog != "" {
		f, err := tea.LogToFile(flagLog, "angle-selector")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model, err := app.New(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(config.TargetFPS),
	)

	_, err = p.Run()
	return err
}

func runGUI(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	return gui.Run(opts)
}

func runRender(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	// A raster output path picks its format unless one was asked for.
	if !cmd.Flags().Changed("format") && flagConfig == "" {
		if format := raster.FormatFromExt(opts.Output); format != "" {
			opts.Format = format
		}
	}

	scene := render.NewScene(float64(opts.Size), float64(opts.Size))
	sel, err := dial.New(scene, opts)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("angle") {
		p := dial.PointerFor(flagAngle, sel.Bounds(), opts.Direction, sel.Geometry().Radius/2)
		if _, err := sel.Click(p); err != nil {
			return fmt.Errorf("select %d: %w", flagAngle, err)
		}
	}

	var buf bytes.Buffer
	switch opts.Format {
	case config.FormatSVG:
		err = svg.WriteSVG(&buf, scene)
	case config.FormatHTML:
		err = svg.WriteHTML(&buf, scene)
	default:
		if opts.Output != "" {
			return raster.Save(opts.Output, scene, opts.Format)
		}
		err = raster.Encode(&buf, raster.Draw(scene), opts.Format)
	}
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(opts.Output, buf.Bytes(), 0644)
}
