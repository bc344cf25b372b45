package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veldman/rantsoen/pkg/application/services"
	"github.com/veldman/rantsoen/pkg/cvb"
	"github.com/veldman/rantsoen/pkg/domain/repositories"
	"github.com/veldman/rantsoen/pkg/infrastructure/repositories/memory"
	"github.com/veldman/rantsoen/pkg/infrastructure/repositories/yamlfile"
	"github.com/veldman/rantsoen/pkg/logger"
)

var (
	// Root flags
	configFile string
	verbose    bool

	cfg *Config
	log *zap.Logger
)

// rootCmd is the base command for the rantsoen CLI
var rootCmd = &cobra.Command{
	Use:   "rantsoen",
	Short: "CVB 2025 rantsoenberekening voor melkvee",
	Long: `Berekent energie- (VEM) en eiwitbehoefte (DVE), voederaanbod,
balansen en voeropnamecapaciteit volgens de CVB 2025 normen, met een
volledig herleidbaar rekenrapport per getal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig(configFile)
		if err != nil {
			return err
		}
		if verbose {
			log = logger.Must(logger.NewDevelopment())
		} else {
			log = zap.NewNop()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to rantsoen.yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// newService builds the ration service for the configured constant set.
func newService() (*services.RationService, error) {
	return services.NewRationService(cvb.CVB2025(), logger.Named(log, "rantsoen"))
}

// loadRepositories resolves the feed library and profiles configured in
// rantsoen.yaml, falling back to the seeded standard profiles.
func loadRepositories() (repositories.FeedRepository, repositories.ProfileRepository, error) {
	loader := yamlfile.NewLoader()

	feedRepo := memory.NewFeedRepository(64)
	if cfg.FeedLibrary == "" {
		return nil, nil, fmt.Errorf("no feed library configured; set feed_library in rantsoen.yaml")
	}
	feeds, err := loader.LoadFeeds(cfg.FeedLibrary)
	if err != nil {
		return nil, nil, err
	}
	if err := feedRepo.LoadFeeds(feeds); err != nil {
		return nil, nil, err
	}

	profileRepo := memory.NewProfileRepository(8)
	if cfg.Profiles != "" {
		profiles, err := loader.LoadProfiles(cfg.Profiles)
		if err != nil {
			return nil, nil, err
		}
		if err := profileRepo.LoadProfiles(profiles); err != nil {
			return nil, nil, err
		}
	} else {
		profileRepo.SeedStandardProfiles()
	}

	return feedRepo, profileRepo, nil
}
