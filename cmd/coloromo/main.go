package main

import (
	"errors"
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "coloromo",
	Short: "Reduce an image's colors to a fixed palette",
	Long: `coloromo replaces every pixel of an image with the perceptually
nearest color from a palette you supply, using CIELAB and the CIEDE2000
color-difference formula.

Palettes come from a text file of hex colors (--palette) or from named
palettes in the config file (--name).`,
	Version: Version,
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.coloromo.yaml)")
	rootCmd.SetVersionTemplate("coloromo {{.Version}} (built " + BuildTime + ", commit " + GitCommit + ")\n")
}

// initConfig reads in the config file and environment variables, if present.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Printf("warning: cannot locate home directory: %v", err)
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".coloromo")
	}

	viper.SetEnvPrefix("coloromo")
	viper.AutomaticEnv()

	// A missing config file is fine; a broken one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("failed to read config file: %v", err)
		}
	}
}
