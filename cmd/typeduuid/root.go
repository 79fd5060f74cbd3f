package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/typeduuid/manifest"
	"github.com/arthur-debert/typeduuid/typeduuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	manifestPath string
	shortOutput  bool
)

var rootCmd = &cobra.Command{
	Use:           "typeduuid",
	Short:         "Typed UUID toolbox",
	Long:          "Generate, parse, and convert typed identifiers (tag-uuid canonical form, tag_base62 short form).",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "", "path to the kind manifest file")

	// Resolution order: flag, TYPEDUUID_MANIFEST, config file default.
	viper.SetEnvPrefix("typeduuid")
	viper.AutomaticEnv()
	viper.SetDefault("manifest", defaultManifestPath())
	_ = viper.BindPFlag("manifest", rootCmd.PersistentFlags().Lookup("manifest"))

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(tagsCmd)
}

// defaultManifestPath places the manifest under the user config directory,
// falling back to the working directory when none is available.
func defaultManifestPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "typeduuid", "kinds.yaml")
	}
	return "typeduuid-kinds.yaml"
}

// currentManifest returns the manifest the CLI operates on.
func currentManifest() *manifest.Manifest {
	return manifest.New(viper.GetString("manifest"))
}

// loadKinds populates the default registry from the manifest. A missing
// manifest file is not an error: the registry simply starts empty.
func loadKinds(ctx context.Context) error {
	m := currentManifest()
	if _, err := os.Stat(m.Path()); os.IsNotExist(err) {
		return nil
	}
	if _, err := m.Load(ctx, typeduuid.DefaultRegistry()); err != nil {
		return fmt.Errorf("loading kind manifest: %w", err)
	}
	return nil
}

// lookupKind resolves a tag in the default registry, with a helpful error
// naming the known tags when it is absent.
func lookupKind(tag string) (*typeduuid.Kind, error) {
	k, ok := typeduuid.Lookup(tag)
	if !ok {
		tags := typeduuid.Tags()
		if len(tags) == 0 {
			return nil, fmt.Errorf("no kinds registered; add one with 'typeduuid tags add <name> <tag>'")
		}
		return nil, fmt.Errorf("unknown tag %q; registered tags: %v", tag, tags)
	}
	return k, nil
}
