package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coloromo/coloromo/internal/colorspace"
	"github.com/coloromo/coloromo/internal/imaging"
	"github.com/coloromo/coloromo/internal/palette"
)

var (
	paletteFile  string
	paletteName  string
	outputPath   string
	parallelRows bool
)

var reduceCmd = &cobra.Command{
	Use:   "reduce [image]",
	Short: "Replace every pixel with the nearest palette color",
	Long: `Reduce loads an image, resolves every pixel to the perceptually
nearest member of the palette, and writes the result. The output format is
inferred from the output file extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runReduce,
}

func init() {
	rootCmd.AddCommand(reduceCmd)
	reduceCmd.Flags().StringVarP(&paletteFile, "palette", "p", "", "palette file (one hex color per line)")
	reduceCmd.Flags().StringVarP(&paletteName, "name", "n", "", "named palette from the config file")
	reduceCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path (default <input>.reduced.<ext>)")
	reduceCmd.Flags().BoolVar(&parallelRows, "parallel", false, "reduce pixel rows in parallel")
}

func runReduce(cmd *cobra.Command, args []string) error {
	pal, err := loadPalette()
	if err != nil {
		return err
	}

	// Config-file default applies only when the flag wasn't given.
	if !cmd.Flags().Changed("parallel") && viper.IsSet("parallel") {
		parallelRows = viper.GetBool("parallel")
	}

	input := args[0]
	output := outputPath
	if output == "" {
		ext := filepath.Ext(input)
		output = strings.TrimSuffix(input, ext) + ".reduced" + ext
	}

	matcher := palette.NewMatcher(pal)
	reducer := &imaging.Reducer{Matcher: matcher, Parallel: parallelRows}

	if err := reducer.ReduceFile(imaging.NewImageCache(), input, output); err != nil {
		return err
	}

	stats := matcher.Stats()
	log.Printf("wrote %s (%d palette colors, %d distinct input colors)",
		output, matcher.Len(), stats.Misses)
	return nil
}

// loadPalette resolves the palette from --palette or --name, in that order.
func loadPalette() (*palette.Palette, error) {
	switch {
	case paletteFile != "":
		return palette.LoadFile(paletteFile)
	case paletteName != "":
		hexes := viper.GetStringSlice("palettes." + paletteName)
		if len(hexes) == 0 {
			return nil, fmt.Errorf("no palette named %q in config", paletteName)
		}
		p := palette.New()
		for _, h := range hexes {
			c, err := colorspace.ParseHex(h)
			if err != nil {
				return nil, fmt.Errorf("palette %q: %w", paletteName, err)
			}
			p.Add(c)
		}
		return p, nil
	default:
		return nil, errors.New("either --palette or --name is required")
	}
}
