package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	rootCmd = &cobra.Command{
		Use:               "appol",
		Short:             "appol - Application Policies extension tool",
		Long:              "Encode, decode and inspect the Microsoft Application Policies certificate extension and legacy CSP inventories",
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	logLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger   = newLogger()
)

//Execute run the appol cli
func Execute() {
	setup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() {
	rootCmd.PersistentFlags().String("config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringP("format", "f", "hex", "output format [hex, base64, pem, msgpack]")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))

	viper.SetEnvPrefix("appol")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(policiesCmd)
	rootCmd.AddCommand(providersCmd)
}

//newLogger builds the cli logger; its level follows logLevel
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = logLevel
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func initConfig(cmd *cobra.Command, args []string) error {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %s", err)
		}
	}

	if viper.GetBool("verbose") {
		logLevel.SetLevel(zapcore.DebugLevel)
	}

	logger.Debug("config loaded",
		zap.String("file", viper.ConfigFileUsed()),
		zap.String("format", viper.GetString("output.format")))

	return nil
}
