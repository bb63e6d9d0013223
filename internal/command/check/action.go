package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/SirIleBo/elasticsearch/pkg/shcheck"
)

func action(_ context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("no files to check")
	}

	var errs []error
	for _, file := range files {
		content, err := os.ReadFile(file) //nolint:gosec // path is from CLI args
		if err != nil {
			errs = append(errs, err)

			continue
		}
		if !cmd.Bool("all") && !shcheck.IsScript(file, content) {
			slog.Debug("Skipping non-script file", "file", file)

			continue
		}
		if err := shcheck.Check(file, string(content)); err != nil {
			errs = append(errs, err)

			continue
		}
		slog.Info("Script OK", "file", file)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed: %w", len(errs), len(files), errors.Join(errs...))
	}

	return nil
}
