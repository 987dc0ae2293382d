package commands

import (
	"fmt"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rentledger-dev/rentledger/internal/auditlog"
	"github.com/rentledger-dev/rentledger/internal/config"
	"github.com/rentledger-dev/rentledger/internal/model"
	"github.com/rentledger-dev/rentledger/internal/report"
	"github.com/rentledger-dev/rentledger/internal/state"
)

// env bundles everything a subcommand needs: the project directory, its
// configuration, and the loaded store.
type env struct {
	dir   string
	cfg   *config.Config
	store *state.Store
}

func projectDir(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil || dir == "" {
		return "."
	}
	return dir
}

// loadEnv reads the project config and database for a subcommand.
func loadEnv(cmd *cobra.Command) (*env, error) {
	dir := projectDir(cmd)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a rentledger project (run rentledger init first): %w", err)
	}

	store, err := state.Load(filepath.Join(dir, cfg.Database.Path))
	if err != nil {
		log.WithError(err).Error("failed to load database")
		return nil, err
	}

	return &env{dir: dir, cfg: cfg, store: store}, nil
}

// save persists the store back to the database file.
func (e *env) save() error {
	return e.store.Write(filepath.Join(e.dir, e.cfg.Database.Path))
}

// audit appends a mutation record. Audit failures are logged, not fatal; the
// database write already succeeded.
func (e *env) audit(action string, p model.Property, details string) {
	err := auditlog.Append(e.dir, []auditlog.Entry{{
		Timestamp:    time.Now(),
		Action:       action,
		PropertyID:   p.ID,
		PropertyName: p.Name,
		Details:      details,
	}})
	if err != nil {
		log.WithError(err).Warn("failed to append audit log")
	}
}

// formatter returns the currency formatter for the project.
func (e *env) formatter() *report.Formatter {
	return report.NewFormatter(e.cfg.Currency)
}
