package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// cellList collects -fill col,row[,color] flags.
type cellList []cellFill

type cellFill struct {
	col, row int
	color    string
}

func (l *cellList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = fmt.Sprintf("%d,%d", c.col, c.row)
	}
	return strings.Join(parts, " ")
}

func (l *cellList) Set(v string) error {
	fields := strings.SplitN(v, ",", 3)
	if len(fields) < 2 {
		return fmt.Errorf("want col,row[,color], got %q", v)
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return fmt.Errorf("column: %w", err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return fmt.Errorf("row: %w", err)
	}
	c := cellFill{col: col, row: row}
	if len(fields) == 3 {
		c.color = fields[2]
	}
	*l = append(*l, c)
	return nil
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	out := fs.String("o", "grid.png", "Output file, or - for stdout")
	format := fs.String("format", "", "Output format (png, svg); defaults to the output extension")
	var fills cellList
	fs.Var(&fills, "fill", "Fill a cell: col,row[,color] (repeatable)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	s, err := common.load()
	if err != nil {
		return err
	}
	logger := s.Logging.NewLogger(os.Stderr)

	t, err := newTarget(s, outputFormat(*format, *out, s))
	if err != nil {
		return err
	}
	r, err := newRenderer(s, t.surface, logger)
	if err != nil {
		return err
	}

	r.DrawGrid()
	for _, c := range fills {
		if err := r.FillCell(c.col, c.row, c.color, nil); err != nil {
			return err
		}
	}

	if err := writeOutput(t, *out); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	logger.Info("grid rendered", "id", r.ID(), "output", *out)
	return nil
}

func runSettings(args []string) error {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	s, err := common.load()
	if err != nil {
		return err
	}

	t, err := newTarget(s, s.Output.Format)
	if err != nil {
		return err
	}
	r, err := newRenderer(s, t.surface, s.Logging.NewLogger(os.Stderr))
	if err != nil {
		return err
	}

	doc, err := r.SettingsJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(doc))
	return err
}
