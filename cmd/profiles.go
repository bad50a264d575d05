package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/authorlist/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect output profiles",
	Long: `List and inspect the output profiles that select the author-list variant.

Built-in profiles are minimal and collaboration. Additional YAML profiles
are loaded from ~/.authorlist/profiles/.`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadProfiles()
		if err != nil {
			return err
		}

		profiles := registry.List()
		if len(profiles) == 0 {
			fmt.Println("No profiles found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tORDERING\tCOLLABORATION\tDESCRIPTION")
		for _, name := range profiles {
			p, ok := registry.Get(name)
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", name, p.Ordering, p.IncludeCollaboration, p.Description)
		}
		return w.Flush()
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]

		registry, err := loadProfiles()
		if err != nil {
			return err
		}

		p, ok := registry.Get(profileName)
		if !ok {
			return fmt.Errorf("%w: %s", profile.ErrUnknownProfile, profileName)
		}

		out, err := yaml.Marshal(p)
		if err != nil {
			return err
		}

		fmt.Print(string(out))
		return nil
	},
}

func loadProfiles() (*profile.Registry, error) {
	registry, err := profile.NewRegistry()
	if err != nil {
		return nil, err
	}
	dir, err := profile.UserDir()
	if err != nil {
		slog.Debug("skipping user profiles", "err", err)
		return registry, nil
	}
	if err := registry.LoadFromDirectory(dir); err != nil {
		return nil, err
	}
	return registry, nil
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
}
