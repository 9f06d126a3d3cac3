package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/wis/internal/formatter"
	"github.com/desertthunder/wis/internal/models"
	"github.com/desertthunder/wis/internal/shared"
	"github.com/urfave/cli/v3"
)

// List prints the whole collection in the requested format, or writes it to --output.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	sheets, err := r.loadSheets(ctx, cmd)
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteExport(format, sheets, path); err != nil {
			return err
		}
		r.logger.Info("exported sheets", "format", format, "path", path, "count", len(sheets))
		return r.writePlain("✓ Exported %d sheets to %s\n", len(sheets), path)
	}

	data, err := formatter.Export(format, sheets)
	if err != nil {
		return err
	}
	return r.writeBytes(data)
}

// Show prints the sheet with the given id. Unlike the viewers, an unknown id is an error here.
func (r *Runner) Show(ctx context.Context, cmd *cli.Command) error {
	id := strings.TrimSpace(cmd.StringArg("id"))
	if id == "" {
		return fmt.Errorf("%w: sheet id", shared.ErrMissingArgument)
	}

	sheets, err := r.loadSheets(ctx, cmd)
	if err != nil {
		return err
	}

	sheet, ok := models.FindSheet(sheets, id)
	if !ok {
		r.logger.Warn("sheet not found", "id", id)
		return fmt.Errorf("%w: %s", shared.ErrUnknownSheetID, id)
	}

	if cmd.Bool("json") {
		return r.writeJSON(sheet, true)
	}
	return r.writeBytes(formatter.SheetToText(sheet))
}
