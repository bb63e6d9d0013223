package vars

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/SirIleBo/elasticsearch/internal/command"
	"github.com/SirIleBo/elasticsearch/pkg/expansion"
)

const (
	outputYAML       = "yaml"
	outputJSON       = "json"
	outputProperties = "properties"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	format, known := expansion.ParseFormat(cmd.String("format"))
	if !known {
		slog.Warn("Unknown format, resolving with default values", "format", format)
	}

	table := cfg.Catalog().Resolve(format, cfg.Package.Name, cfg.Package.Version)

	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	return writeTable(w, table, cmd.String("output"))
}

// writeTable 按输出格式写出变量表，key 均已排序。
func writeTable(w io.Writer, table expansion.Table, output string) error {
	switch strings.ToLower(output) {
	case outputYAML:
		out, err := yamlv3.Marshal(map[string]string(table))
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(out)

		return err
	case outputJSON:
		out, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))

		return err
	case outputProperties:
		escape := strings.NewReplacer(`\`, `\\`, "\n", `\n`)
		for _, k := range table.Keys() {
			if _, err := fmt.Fprintf(w, "%s=%s\n", k, escape.Replace(table[k])); err != nil {
				return err
			}
		}

		return nil
	}

	return fmt.Errorf("unsupported output format %q", output)
}
