package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"itsupport/internal/app"
	"itsupport/internal/config"
	"itsupport/internal/modules/host"
	"itsupport/internal/storage"
	"itsupport/internal/storage/sqlite"
	"itsupport/pkg/logger"
)

var errAuditDisabled = errors.New("audit is disabled (set audit.enabled in the config)")

// New создает корневую CLI-команду; без аргументов запускает меню.
func New(version string) *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "itsupport",
		Short:         "Меню технической поддержки Windows",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a, err := app.NewApp(cmd.Context(), cfg, app.Options{
				In:     cmd.InOrStdin(),
				Out:    cmd.OutOrStdout(),
				ErrOut: cmd.ErrOrStderr(),
				Logger: logger.New(cmd.ErrOrStderr(), cfg.Agent.LogLevel),
			})
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Run(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "путь к YAML-конфигу")

	root.AddCommand(newVersionCmd(version))
	root.AddCommand(newHostCmd())
	root.AddCommand(newHistoryCmd(&cfgPath))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version)
		},
	}
}

func newHostCmd() *cobra.Command {
	hostCmd := &cobra.Command{
		Use:   "host",
		Short: "Сведения об узле",
	}
	hostCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Показать состояние узла",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
			defer cancel()

			summary, err := host.NewCollector().Summary(ctx)
			if err != nil {
				return err
			}
			return writeJSON(cmd, summary)
		},
	})
	return hostCmd
}

func newHistoryCmd(cfgPath *string) *cobra.Command {
	var limit int
	var key string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Показать журнал выполненных команд",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cfg.Audit.Enabled {
				return errAuditDisabled
			}
			st, err := sqlite.Open(cfg.Audit.SQLitePath)
			if err != nil {
				return fmt.Errorf("open audit storage: %w", err)
			}
			defer st.Close()

			events, err := st.QueryAudit(cmd.Context(), storage.AuditQuery{Key: key, Limit: limit})
			if err != nil {
				return err
			}
			return writeJSON(cmd, events)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "сколько записей показать (максимум 200)")
	cmd.Flags().StringVar(&key, "key", "", "только записи пункта меню")
	return cmd
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
