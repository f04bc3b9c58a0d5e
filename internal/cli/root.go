// Package cli implementa o agentctl, a interface de linha de comando do agente
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/transactions-agent-api/internal/app"
	"github.com/vfg2006/transactions-agent-api/internal/config"
	"github.com/vfg2006/transactions-agent-api/pkg/utils"
)

var (
	dataPath  string
	logLevel  string
	appHandle *app.App

	// substituíveis nos testes
	loadConfig = config.NewConfig
	newApp     = app.New
)

var rootCmd = &cobra.Command{
	Use:           "agentctl",
	Short:         "Consulta o dataset de transações em linguagem natural ou por intenção estruturada",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if appHandle != nil || cmd.Name() == versionCmd.Name() {
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if logLevel != "" {
			cfg.App.LogLevel = logLevel
		}
		configureLogLevel(cfg.App.LogLevel)

		if dataPath != "" {
			cfg.Dataset.Source = config.DataSourceCSV
			cfg.Dataset.Path = dataPath
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		appHandle, err = newApp(ctx, cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appHandle != nil {
			appHandle.Close()
			appHandle = nil
		}
	},
}

// Execute roda o comando raiz
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Caminho do CSV (sobrescreve DATA_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Sobrescreve LOG_LEVEL")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(alertsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(versionCmd)
}

func configureLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	// logs vão para stderr para não misturar com o JSON impresso
	logrus.SetOutput(os.Stderr)
}

func getApp() *app.App {
	if appHandle == nil {
		panic("aplicação não inicializada; PersistentPreRunE não executou")
	}
	return appHandle
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := utils.PrettyJson(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
