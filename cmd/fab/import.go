package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fabcli/internal/config"
	"fabcli/internal/flow"
	"fabcli/internal/hierarchy"
	"fabcli/internal/importer"
	"fabcli/internal/pathutil"
)

type importOptions struct {
	input      []string
	format     string
	configFile string
	env        string
	params     string
}

func newImportCmd() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import [<path>]",
		Short: "Import item definitions into the remote store",
		Long: `Import item definitions using one of two mutually exclusive flows.

Direct API flow: upload a single item definition from a local directory.
  fab import <path> -i <input_path> [--format <format>]

CICD flow: import every item a deployment config file lists for an
environment.
  fab import --config-file <config_path> --env <env_name> [-P <params>]

Environment: FAB_API_ENDPOINT and FAB_TOKEN are required (a .env file is
honored).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), buildImportArgs(opts, args))
		},
	}

	bindImportFlags(cmd.Flags(), opts)
	return cmd
}

func bindImportFlags(fs *pflag.FlagSet, opts *importOptions) {
	fs.StringSliceVarP(&opts.input, "input", "i", nil,
		"input path holding the item definition (Direct API flow)")
	fs.StringVar(&opts.format, "format", "",
		"item definition format hint (Direct API flow)")
	fs.StringVar(&opts.configFile, "config-file", "",
		"deployment config file (CICD flow)")
	fs.StringVar(&opts.env, "env", "",
		"environment name from the config file (CICD flow)")
	fs.StringVarP(&opts.params, "params", "P", "",
		"parameter overrides as key=value[,key=value] (CICD flow)")
}

// buildImportArgs assembles the parameter bag the validator sees. The
// positional arguments are the item path; flags cover everything else.
func buildImportArgs(opts *importOptions, positional []string) flow.Args {
	args := flow.Args{
		Input:      opts.input,
		Format:     opts.format,
		ConfigFile: opts.configFile,
		Env:        opts.env,
		Params:     opts.params,
	}
	if len(positional) > 0 {
		args.Path = positional
	}
	return args
}

func runImport(ctx context.Context, args flow.Args) error {
	if err := flow.Validate(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.Default()
	direct := importer.NewDirectAPI(cfg, log)
	dispatcher := flow.NewDispatcher(direct, importer.NewCICD(direct, log))

	// Only the Direct API flow addresses a CLI-supplied target; the CICD
	// flow resolves its targets from the config file.
	var target hierarchy.Element
	if args.DirectShape() {
		target, err = hierarchy.ParsePath(pathutil.JoinPath(args.Path))
		if err != nil {
			return err
		}
	}

	return dispatcher.Dispatch(ctx, args, target)
}
