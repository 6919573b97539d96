// Package cmd wires the colloquy command-line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arbiterhq/colloquy/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "colloquy",
	Short: "Turn-based Scientist vs Philosopher debate runner",
	Long: `Colloquy orchestrates a fixed-length debate between a Scientist and a
Philosopher persona over a topic you supply, then has a neutral judge
summarize the exchange and declare a winner.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDebate(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./colloquy.yaml)")
	rootCmd.Flags().String("model", "", "chat model to use for all generation calls")
	rootCmd.Flags().String("topic", "", "debate topic (skips the interactive prompt)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("llm.model", rootCmd.Flags().Lookup("model"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("colloquy")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("COLLOQUY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
