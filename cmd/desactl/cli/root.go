package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pemdes/webdesa/internal/auth"
	"github.com/pemdes/webdesa/internal/db"
	"github.com/pemdes/webdesa/pkg"
	"github.com/pemdes/webdesa/pkg/session"
)

const envPrefix = "WEBDESA"

// accountAdmin is the provisioning side of the credential store.
type accountAdmin interface {
	Create(ctx context.Context, account *auth.Account) error
	SetActive(ctx context.Context, username string, active bool) error
	SetResetToken(ctx context.Context, username, resetToken string, expiresAt time.Time) error
}

type deps struct {
	openAccounts func(ctx context.Context) (accountAdmin, func(), error)
	openPool     func(ctx context.Context) (*pgxpool.Pool, error)
	readPassword func(prompt string) (string, error)
	newSession   func() (*session.Manager, error)
	hashPassword func(password string) (string, error)
	now          func() time.Time
}

func Execute() error {
	return newRootCmd(defaultDeps()).Execute()
}

func newRootCmd(d deps) *cobra.Command {
	var (
		cfgFile  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "desactl",
		Short:         "Admin tooling for the village website backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return initConfig(cfgFile)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./desactl.toml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	cmd.AddCommand(newAdminCmd(d))
	cmd.AddCommand(newDBCmd(d))
	cmd.AddCommand(newSessionCmd(d))

	return cmd
}

func initConfig(cfgFile string) error {
	viper.SetDefault("postgres_host", "localhost")
	viper.SetDefault("postgres_port", "5432")
	viper.SetDefault("postgres_db_name", "webdesa")
	viper.SetDefault("postgres_user", "postgres")
	viper.SetDefault("server_url", "http://localhost:9000")
	viper.SetDefault("reset_token_ttl", time.Hour)
	if home, err := os.UserHomeDir(); err == nil {
		viper.SetDefault("token_file", filepath.Join(home, ".config", "webdesa", "token"))
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}

	viper.SetConfigName("desactl")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/webdesa")
	// the config file is optional
	_ = viper.ReadInConfig()
	return nil
}

func defaultDeps() deps {
	openPool := func(ctx context.Context) (*pgxpool.Pool, error) {
		return db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:     viper.GetString("postgres_host"),
			DBPort:     viper.GetString("postgres_port"),
			DBName:     viper.GetString("postgres_db_name"),
			DBUser:     viper.GetString("postgres_user"),
			DBPassword: viper.GetString("postgres_pass"),
		})
	}

	return deps{
		openPool: openPool,
		openAccounts: func(ctx context.Context) (accountAdmin, func(), error) {
			pool, err := openPool(ctx)
			if err != nil {
				return nil, nil, err
			}
			return auth.NewRepo(pool), pool.Close, nil
		},
		readPassword: func(prompt string) (string, error) {
			fmt.Fprint(os.Stderr, prompt)
			pw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return "", fmt.Errorf("read password: %w", err)
			}
			return string(pw), nil
		},
		newSession: func() (*session.Manager, error) {
			return session.NewManager(
				viper.GetString("server_url"),
				session.NewFileStore(viper.GetString("token_file")),
			)
		},
		hashPassword: pkg.HashPassword,
		now:          time.Now,
	}
}
