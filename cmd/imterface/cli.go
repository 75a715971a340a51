package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/imterface/internal/backend/cpu"
	"github.com/born-ml/imterface/internal/envconfig"
	"github.com/born-ml/imterface/internal/image"
	"github.com/born-ml/imterface/internal/logutil"
)

const version = "v0.1.0-dev"

func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

// NewCLI creates the root command with all subcommands.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "imterface",
		Short:         "Strided image kernels with a C ABI",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel()))
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "imterface version %s\n", version)
		},
	}

	typesCmd := &cobra.Command{
		Use:   "types",
		Short: "List supported element types and their tags",
		Args:  cobra.NoArgs,
		RunE:  typesHandler,
	}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show configuration from the environment",
		Args:  cobra.NoArgs,
		RunE:  envHandler,
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run the kernel self-checks",
		Args:  cobra.NoArgs,
		RunE:  checkHandler,
	}

	envVars := envconfig.AsMap()
	envs := []envconfig.EnvVar{envVars["IMTERFACE_DEBUG"], envVars["IMTERFACE_NUM_WORKERS"], envVars["IMTERFACE_SEQUENTIAL"]}
	appendEnvDocs(checkCmd, envs)
	appendEnvDocs(envCmd, envs)

	rootCmd.AddCommand(versionCmd, typesCmd, envCmd, checkCmd)
	return rootCmd
}

func typesHandler(cmd *cobra.Command, _ []string) error {
	var data [][]string
	for _, dt := range image.DataTypes() {
		data = append(data, []string{strconv.Itoa(int(dt)), dt.String(), strconv.Itoa(dt.Size())})
	}

	table := newTable(cmd.OutOrStdout(), []string{"TAG", "TYPE", "SIZE"})
	table.AppendBulk(data)
	table.Render()
	return nil
}

func envHandler(cmd *cobra.Command, _ []string) error {
	vals := envconfig.Values()
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var data [][]string
	for _, k := range keys {
		data = append(data, []string{k, vals[k]})
	}

	table := newTable(cmd.OutOrStdout(), []string{"NAME", "VALUE"})
	table.AppendBulk(data)
	table.Render()
	return nil
}

func checkHandler(cmd *cobra.Command, _ []string) error {
	results, err := runChecks(cmd.Context(), cpu.New(), checks())
	if err != nil {
		return err
	}

	var data [][]string
	failed := 0
	for _, r := range results {
		status, detail := "PASS", ""
		if r.Err != nil {
			status, detail = "FAIL", r.Err.Error()
			failed++
		}
		data = append(data, []string{r.Name, status, detail})
	}

	table := newTable(cmd.OutOrStdout(), []string{"CHECK", "RESULT", "DETAIL"})
	table.AppendBulk(data)
	table.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

