package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/mirrorskill"
	"github.com/hupe1980/mirrorskill/config"
	"github.com/hupe1980/mirrorskill/core"
	"github.com/hupe1980/mirrorskill/logging"
	"github.com/hupe1980/mirrorskill/mirror"
)

var (
	outputFormat   string
	persistLearned bool
)

var invokeCmd = &cobra.Command{
	Use:   "invoke [envelope.json ...]",
	Short: "Dispatch request envelopes and print the responses",
	Long: `Dispatch one or more request envelopes in order and print each response
envelope. With no file arguments, a single envelope is read from stdin.`,
	RunE: runInvoke,
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the request handlers in evaluation order",
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, r := range mirror.Routes(mirror.Options{}) {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, r.Name)
		}
		return nil
	},
}

func init() {
	invokeCmd.Flags().StringVarP(&outputFormat, "output", "o", "json", "Output format: json or yaml")
	invokeCmd.Flags().BoolVar(&persistLearned, "persist-learned", false, "Store pairs taught via SaveCharacteristicIntent (overrides "+config.EnvPersistLearned+")")
	rootCmd.AddCommand(invokeCmd)
	rootCmd.AddCommand(routesCmd)
}

func runInvoke(cmd *cobra.Command, args []string) error {
	if outputFormat != "json" && outputFormat != "yaml" {
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("persist-learned") {
		cfg.PersistLearned = persistLearned
	}

	var logger logging.Logger = logging.NoOpLogger{}
	if verbose {
		lc := logging.DefaultLoggerConfig()
		lc.Level = logging.LogLevelDebug
		lc.Format = "text"
		lc.Output = cmd.ErrOrStderr()
		logger = logging.NewLogger(lc).WithComponent("mirrorctl")
	}

	ctx := context.Background()
	s, err := mirrorskill.New(ctx, cfg, func(o *mirrorskill.Options) { o.Logger = logger })
	if err != nil {
		return err
	}

	envelopes, err := readEnvelopes(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	for _, env := range envelopes {
		resp, err := s.Invoke(ctx, env)
		if err != nil {
			return err
		}
		if err := writeResponse(cmd.OutOrStdout(), resp, outputFormat); err != nil {
			return err
		}
	}
	return nil
}

func readEnvelopes(stdin io.Reader, paths []string) ([]*core.RequestEnvelope, error) {
	if len(paths) == 0 {
		env, err := decodeEnvelope(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return []*core.RequestEnvelope{env}, nil
	}
	out := make([]*core.RequestEnvelope, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		env, err := decodeEnvelope(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		out = append(out, env)
	}
	return out, nil
}

func decodeEnvelope(r io.Reader) (*core.RequestEnvelope, error) {
	var env core.RequestEnvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode request envelope: %w", err)
	}
	return &env, nil
}

func writeResponse(w io.Writer, resp *core.ResponseEnvelope, format string) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	if format == "json" {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	// Round-trip through a generic map so YAML keys match the JSON wire names.
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}
