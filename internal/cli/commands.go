package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/travellog/internal/checklist"
	"github.com/Makepad-fr/travellog/internal/model"
	"github.com/Makepad-fr/travellog/internal/tui"
	"github.com/Makepad-fr/travellog/internal/ui"
)

func argsUsage(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: travellog %s", usage)
		}
		return nil
	}
}

func parseID(verb, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, usagef("%s: not a number: %s", verb, s)
	}
	return id, nil
}

func (e *env) load() ([]model.Item, error) {
	items, err := e.store.Load()
	if err != nil {
		return nil, failure("load", err)
	}
	return items, nil
}

func (e *env) save(op string, items []model.Item) error {
	if err := e.store.Save(items); err != nil {
		return failure("save", err)
	}
	e.logger.Info("checklist saved", zap.String("op", op), zap.Int("items", len(items)))
	return nil
}

func (e *env) unknownID(id int) error {
	ui.Hint(e.errOut, "run `travellog ls` to see valid ids")
	return usagef("no item with id %d", id)
}

func newListCmd(e *env) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := e.load()
			if err != nil {
				return err
			}
			th := ui.Current()
			d, p := checklist.Stats(items)
			header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
				th.Title.Render(e.cfg.Page.Title),
				th.Success.Render(th.SymDone), d,
				th.Pending.Render(th.SymPending), p,
				th.Accent.Render("Total"), len(items),
			)

			lines := []string{header, th.Muted.Render(ui.ProgressBar(d, d+p, 28)), ""}
			rows := checklist.Render(items)
			if group {
				lines = append(lines, checklist.Grouped(rows, th)...)
			} else {
				lines = append(lines, checklist.Lines(rows, th)...)
			}
			lines = append(lines, "", th.Muted.Render("Tip: add with `travellog add \"Pack bags\"`"))
			ui.Panel(e.out, lines)
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func newAddCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <label...>",
		Short: "Add a new item (label can be multiple words)",
		Args:  argsUsage(1, "add <label...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := e.load()
			if err != nil {
				return err
			}
			next, added, err := checklist.Add(items, strings.Join(args, " "))
			if err != nil {
				return usagef("add: %v", err)
			}
			if err := e.save("add", next); err != nil {
				return err
			}
			ui.OK(e.out, fmt.Sprintf("added #%d", added.ID))
			return nil
		},
	}
}

func newDoneCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle completion of the item with this id",
		Args:    argsUsage(1, "done <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("done", args[0])
			if err != nil {
				return err
			}
			items, err := e.load()
			if err != nil {
				return err
			}
			next, ok := checklist.Toggle(items, id)
			if !ok {
				return e.unknownID(id)
			}
			if err := e.save("toggle", next); err != nil {
				return err
			}
			ui.OK(e.out, "toggled")
			return nil
		},
	}
}

func newRemoveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove the item with this id",
		Args:  argsUsage(1, "rm <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("rm", args[0])
			if err != nil {
				return err
			}
			items, err := e.load()
			if err != nil {
				return err
			}
			next, _, ok := checklist.Remove(items, id)
			if !ok {
				return e.unknownID(id)
			}
			if err := e.save("remove", next); err != nil {
				return err
			}
			ui.OK(e.out, "removed")
			return nil
		},
	}
}

func newRenameCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <label...>",
		Short: "Change the label of an item",
		Args:  argsUsage(2, "rename <id> <label...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("rename", args[0])
			if err != nil {
				return err
			}
			items, err := e.load()
			if err != nil {
				return err
			}
			next, err := checklist.Rename(items, id, strings.Join(args[1:], " "))
			switch {
			case err == nil:
			case errors.Is(err, checklist.ErrNotFound):
				return e.unknownID(id)
			default:
				return usagef("rename: %v", err)
			}
			if err := e.save("rename", next); err != nil {
				return err
			}
			ui.OK(e.out, "renamed")
			return nil
		},
	}
}

func newExportCmd(e *env) *cobra.Command {
	var render bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the checklist as a markdown task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := e.load()
			if err != nil {
				return err
			}
			md := "# " + e.cfg.Page.Title + "\n\n" + checklist.Markdown(items)
			if !render {
				fmt.Fprint(e.out, md)
				return nil
			}
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				return failure("render", err)
			}
			out, err := r.Render(md)
			if err != nil {
				return failure("render", err)
			}
			fmt.Fprint(e.out, out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "pretty-print the markdown for the terminal")
	return cmd
}

func newImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.md>",
		Short: "Append the checkboxes found in a markdown file",
		Args:  argsUsage(1, "import <file.md>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return failure("import", err)
			}
			boxes := checklist.ParseMarkdown(string(src))
			if len(boxes) == 0 {
				return usagef("import: no checkboxes in %s", args[0])
			}
			items, err := e.load()
			if err != nil {
				return err
			}
			if err := e.save("import", checklist.Import(items, boxes)); err != nil {
				return err
			}
			ui.OK(e.out, fmt.Sprintf("imported %d items", len(boxes)))
			return nil
		},
	}
}

func newTUICmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive travel log page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := e.load()
			if err != nil {
				return err
			}
			page := tui.Page{Title: e.cfg.Page.Title, Description: e.cfg.Page.Description}
			app := tui.NewApp(page, e.cfg.User, items, e.store, e.logger)
			final, err := tui.Run(cmd.Context(), app)
			if err != nil {
				return failure("tui", err)
			}
			if final.Changed() {
				ui.OK(e.out, "saved")
			}
			return nil
		},
	}
}
