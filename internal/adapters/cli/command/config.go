package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"tscat/internal/config"
	"tscat/internal/domain/entities"
)

const (
	configFlag     = "config"
	strictFlag     = "strict"
	unfinishedFlag = "unfinished"
)

func AddConfigFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(configFlag, "c", "", "path to a TOML configuration file")
	cmd.PersistentFlags().Bool(strictFlag, false, "reject catalogs with duplicate entries")
	cmd.PersistentFlags().Bool(unfinishedFlag, false, "serve non-empty unfinished translations")
}

// LoadConfig reads the configuration named by --config. --strict and
// --unfinished override the file and environment when given explicitly.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	for name, dst := range map[string]*bool{strictFlag: &cfg.Strict, unfinishedFlag: &cfg.Unfinished} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetBool(name)
		if err != nil {
			return nil, fmt.Errorf("get %s flag: %w", name, err)
		}
		*dst = v
	}
	return cfg, nil
}

// CatalogOptions turns the catalog settings of cfg into build options.
func CatalogOptions(cfg *config.Config) []entities.CatalogOption {
	policy := entities.DuplicateLastWins
	if cfg.Strict {
		policy = entities.DuplicateReject
	}
	return []entities.CatalogOption{
		entities.WithDuplicatePolicy(policy),
		entities.WithUnfinished(cfg.Unfinished),
	}
}
