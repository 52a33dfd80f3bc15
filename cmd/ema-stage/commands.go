package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	orchestration "github.com/koscakluka/ema-stage/core"
	"github.com/koscakluka/ema-stage/core/diagnostics"
	"github.com/koscakluka/ema-stage/core/payload"
	"github.com/koscakluka/ema-stage/core/scenes"
)

// sceneFlags are shared by the commands that build a scene.
type sceneFlags struct {
	roster        string
	seed          uint64
	fallbackActor string
	durations     string
	strict        bool
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.roster, "roster", "", "actors in seating order, as id:Display Name,...")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for reproducible pauses and reactions (0 is random)")
	cmd.Flags().StringVar(&f.fallbackActor, "fallback-actor", "", "actor speaking the fallback scene")
	cmd.Flags().StringVar(&f.durations, "durations", "", "measured speech durations to reconcile to, as id=ms,...")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail instead of building a fallback scene")
}

// buildScene runs the whole pipeline for the command input.
func (f *sceneFlags) buildScene(cmd *cobra.Command, args []string) (*scenes.Scene, []diagnostics.Warning, error) {
	configPath, _ := cmd.Flags().GetString("config")
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	roster, err := parseRoster(f.roster)
	if err != nil {
		return nil, nil, err
	}
	targets, err := parseDurations(f.durations)
	if err != nil {
		return nil, nil, err
	}
	text, err := readInput(args)
	if err != nil {
		return nil, nil, err
	}

	opts := []orchestration.OrchestratorOption{orchestration.WithConfig(config)}
	if f.seed != 0 {
		opts = append(opts, orchestration.WithSeed(f.seed))
	}
	o := orchestration.NewOrchestrator(opts...)

	ctx := cmd.Context()
	var result *orchestration.Result
	if f.strict {
		if result, err = o.Orchestrate(ctx, text, roster); err != nil {
			return nil, result.Warnings, err
		}
	} else {
		result = o.OrchestrateOrFallback(ctx, text, roster, f.fallbackActor)
	}

	scene := result.Scene
	if len(targets) > 0 {
		if scene, err = o.Reconcile(ctx, scene, targets); err != nil {
			return nil, result.Warnings, err
		}
	}
	return scene, result.Warnings, nil
}

func newOrchestrateCmd() *cobra.Command {
	var flags sceneFlags
	var format string

	cmd := &cobra.Command{
		Use:   "orchestrate [file]",
		Short: "Build a scene from model output read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, warnings, err := flags.buildScene(cmd, args)
			printWarnings(cmd.ErrOrStderr(), warnings)
			if err != nil {
				return err
			}
			return writeScene(cmd.OutOrStdout(), scene, format)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "yaml", "output format, yaml or json")
	return cmd
}

func newPreviewCmd() *cobra.Command {
	var flags sceneFlags
	var width int

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Print a readable per-actor view of the scene",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, warnings, err := flags.buildScene(cmd, args)
			if err != nil {
				printWarnings(cmd.ErrOrStderr(), warnings)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderPreview(scene, warnings, width))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 72, "wrap width of dialogue lines")
	return cmd
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [file]",
		Short: "Extract the payload from model output and print it in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			warnings := diagnostics.NewCollector()
			data, err := payload.Extract(text)
			if err != nil {
				return err
			}
			p, err := payload.Decode(data, payload.WithWarnings(cmd.Context(), warnings))
			printWarnings(cmd.ErrOrStderr(), warnings.Warnings())
			if err != nil {
				return err
			}

			encoded, err := payload.Encode(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the compact payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(payload.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newVocabularyCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "vocabulary",
		Short: "List the accepted field values and mood presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderVocabulary(width))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 72, "wrap width")
	return cmd
}

func writeScene(w io.Writer, scene *scenes.Scene, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(scene)
	case "yaml", "":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(scene)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func printWarnings(w io.Writer, warnings []diagnostics.Warning) {
	for _, warning := range warnings {
		style := warningStyle
		if warning.Kind.Stage() == "orchestration" {
			style = errorStyle
		}
		fmt.Fprintln(w, style.Render("warning")+" "+dimStyle.Render(string(warning.Kind))+" "+warning.Message)
	}
}
