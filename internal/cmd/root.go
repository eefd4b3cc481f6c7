package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/elyby/hyfetch/internal/card"
	"github.com/elyby/hyfetch/internal/config"
	"github.com/elyby/hyfetch/internal/di"
	"github.com/elyby/hyfetch/internal/dispatcher"
	"github.com/elyby/hyfetch/internal/profiles"
	"github.com/elyby/hyfetch/internal/version"
)

var (
	ErrMissingCredential    = errors.New("Please specify an api key with --save-key")
	ErrInvalidArgumentCount = errors.New("Please specify exactly one ign to fetch")
)

type UnknownModeError struct {
	Mode card.Mode
}

func (e *UnknownModeError) Error() string {
	return "Unknown mode: " + string(e.Mode)
}

func (*UnknownModeError) Unwrap() error {
	return card.ErrUnknownMode
}

var flagAliases = map[string]string{
	"bed-wars": "bedwars",
	"bw":       "bedwars",
	"sw":       "skywars",
}

var modeFlags = []card.Mode{card.ModeBedwars, card.ModeSkywars, card.ModeDuels, card.ModeGeneral}

var RootCmd = &cobra.Command{
	Use:           "hyfetch [flags] <ign>",
	Short:         "Shows a Hypixel player's profile card in the terminal",
	Version:       version.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfigLayers()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if saveKey, _ := cmd.Flags().GetString("save-key"); saveKey != "" {
			return saveApiKey(cmd.OutOrStdout(), saveKey)
		}

		if len(args) != 1 {
			return ErrInvalidArgumentCount
		}

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			viper.Set("log.level", "debug")
		}

		mode, err := selectedMode(cmd.Flags())
		if err != nil {
			return err
		}

		return fetchCard(cmd.OutOrStdout(), mode, args[0])
	},
}

func Execute(errOut io.Writer) int {
	return ExitCode(RootCmd.Execute(), errOut)
}

// ExitCode reports err to the user and returns the process exit status.
// An unknown mode is not considered a failure.
func ExitCode(err error, errOut io.Writer) int {
	if err == nil {
		return 0
	}

	_, _ = fmt.Fprintln(errOut, err.Error())

	if errors.Is(err, card.ErrUnknownMode) {
		return 0
	}

	return 1
}

func selectedMode(flags *pflag.FlagSet) (card.Mode, error) {
	if name, _ := flags.GetString("mode"); name != "" {
		return card.Mode(name), nil
	}

	for _, mode := range modeFlags {
		if enabled, _ := flags.GetBool(string(mode)); enabled {
			return mode, nil
		}
	}

	return card.ModeGeneral, nil
}

func saveApiKey(out io.Writer, key string) error {
	path, err := config.SavePath()
	if err != nil {
		return err
	}

	if err := config.SaveKey(path, key); err != nil {
		return fmt.Errorf("unable to save the api key: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Saved the api key to %s\n", path)

	return nil
}

func fetchCard(out io.Writer, mode card.Mode, username string) error {
	container, err := di.New()
	if err != nil {
		return err
	}

	var registry *card.Registry
	if err := container.Resolve(&registry); err != nil {
		return err
	}

	if _, err := registry.Get(mode); err != nil {
		return &UnknownModeError{Mode: mode}
	}

	var cfg *viper.Viper
	if err := container.Resolve(&cfg); err != nil {
		return err
	}

	if cfg.GetString(config.ApiKey) == "" {
		return ErrMissingCredential
	}

	return container.Invoke(func(
		ctx context.Context,
		provider *profiles.Provider,
		renderer *card.Renderer,
		emitter dispatcher.Emitter,
	) error {
		profile, err := provider.Fetch(ctx, username, registry.NeedsFriends(mode))
		if err != nil {
			return err
		}

		result, err := renderer.Render(mode, profile.Username, profile.Skin, profile.Summary)
		emitter.Emit(dispatcher.CardAfterRender, string(mode), profile.Username, err)
		if err != nil {
			return err
		}

		_, err = io.WriteString(out, result)

		return err
	})
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := RootCmd.Flags()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if canonical, ok := flagAliases[name]; ok {
			name = canonical
		}

		return pflag.NormalizedName(name)
	})

	flags.StringP("key", "k", "", "Hypixel API key to use for this run")
	flags.String("save-key", "", "persist the Hypixel API key into the user config and exit")
	flags.BoolP("general", "g", false, "show general information (default)")
	flags.BoolP("bedwars", "b", false, "show Bed Wars statistics")
	flags.Bool("skywars", false, "show SkyWars statistics")
	flags.BoolP("duels", "d", false, "show Duels statistics")
	flags.String("mode", "", "show statistics for the named mode")
	flags.Bool("verbose", false, "write debug logs to stderr")

	_ = viper.BindPFlag(config.ApiKey, flags.Lookup("key"))
}

func initConfig() {
	viper.SetEnvPrefix("hyfetch")
	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_", "-", "_")
	viper.SetEnvKeyReplacer(replacer)
}

// rc files have the lowest priority, so their values become viper defaults
func loadConfigLayers() error {
	values, err := config.Load(config.Layers())
	if err != nil {
		return err
	}

	for key, value := range values {
		viper.SetDefault(key, value)
	}

	return nil
}
