package cli

import (
	"fmt"

	"github.com/Adamcf123/OpenSpec/internal/config"
	"github.com/Adamcf123/OpenSpec/internal/integrations"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write defaults stored at ~/.openspec/config.yaml.

Keys:
  locale   frontmatter locale for new projects (en, zh-Hans)
  tools    comma-separated default tools for init`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
		}

		store, err := config.LoadDefault()
		if err != nil {
			return err
		}
		if err := store.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.LoadDefault()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), store.Get(args[0]))
		return nil
	},
}

func validateConfigValue(key, value string) error {
	switch key {
	case config.KeyTools:
		_, err := integrations.ParseToolNames(parseToolsList(value))
		return err
	case config.KeyLocale:
		if _, err := language.Parse(value); err != nil {
			return fmt.Errorf("invalid locale %q: %w", value, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
