package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"debuglog/internal/classify"
	"debuglog/internal/command"
	"debuglog/internal/editor"
	"debuglog/internal/language"
	"debuglog/internal/resolver"
	"debuglog/internal/synth"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type insertFlags struct {
	line    int
	text    string
	columns string
	lang    string
	prefix  string
	write   bool
}

func newInsertCmd(root *rootOptions) *cobra.Command {
	var flags insertFlags

	cmd := &cobra.Command{
		Use:   "insert <file>",
		Short: "Insert a debug print statement below the selected line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			path := args[0]

			langID := flags.lang
			if langID == "" {
				langID = language.NewDetector(cfg.Languages).Detect(path)
			}

			ed, err := editor.OpenFile(path, langID, editor.NewTerminalNotifier(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			line := flags.line - 1
			if flags.columns != "" {
				from, to, err := parseColumns(flags.columns)
				if err != nil {
					return err
				}
				if err := ed.SelectColumns(line, from, to); err != nil {
					return err
				}
			} else if err := ed.Select(line, flags.text); err != nil {
				return err
			}

			style := synth.PrefixStyle(cfg.Prefix.Style)
			if flags.prefix != "" {
				style = synth.PrefixStyle(flags.prefix)
			}
			if !style.Valid() {
				return fmt.Errorf("unknown prefix style %q", style)
			}

			res, err := command.InsertDebugLog(ed, command.Options{
				PrefixStyle:        style,
				EmbeddedExtensions: cfg.Embedded.Extensions,
				Markers:            resolver.Markers{Open: cfg.Embedded.Open, Close: cfg.Embedded.Close},
				Logger:             root.logger,
			})
			if err != nil {
				return err
			}
			root.logger.Debug("insert finished", zap.String("file", path), zap.Stringer("result", res))
			if res != command.ResultInserted {
				return fmt.Errorf("nothing inserted (%s)", res)
			}

			if flags.write {
				if err := ed.Save(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "✅ Inserted debug statement after line %d of %s\n", flags.line, path)
				return nil
			}
			_, err = ed.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().IntVarP(&flags.line, "line", "l", 0, "1-based line of the selection")
	cmd.Flags().StringVarP(&flags.text, "text", "t", "", "Selected text")
	cmd.Flags().StringVar(&flags.columns, "columns", "", "Select characters FROM:TO (0-based, end exclusive) of the line instead of --text")
	cmd.Flags().StringVar(&flags.lang, "lang", "", "Language id (detected from the file extension by default)")
	cmd.Flags().StringVarP(&flags.prefix, "prefix", "p", "", "Prefix style: line or context (overrides config)")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "Write the result back to the file instead of stdout")
	_ = cmd.MarkFlagRequired("line")
	cmd.MarkFlagsMutuallyExclusive("text", "columns")
	return cmd
}

type renderFlags struct {
	lang     string
	text     string
	line     int
	prefix   string
	class    string
	function string
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the debug statement for a fragment without touching any file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fragment := strings.TrimSpace(flags.text)
			if fragment == "" {
				return errors.New(command.MsgEmptySelection)
			}

			var prefix string
			switch synth.PrefixStyle(flags.prefix) {
			case synth.PrefixLine:
				prefix = synth.LinePrefix(flags.line - 1)
			case synth.PrefixContext:
				prefix = synth.ContextPrefix(flags.class, flags.function)
			default:
				return fmt.Errorf("unknown prefix style %q", flags.prefix)
			}

			statement, ok := synth.Render(flags.lang, fragment, prefix)
			if !ok {
				return errors.New(command.MsgUnsupported(flags.lang))
			}
			fmt.Fprintln(cmd.OutOrStdout(), statement)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.lang, "lang", "", "Language id")
	cmd.Flags().StringVarP(&flags.text, "text", "t", "", "Fragment to log")
	cmd.Flags().IntVarP(&flags.line, "line", "l", 1, "1-based line of the fragment")
	cmd.Flags().StringVarP(&flags.prefix, "prefix", "p", string(synth.PrefixLine), "Prefix style: line or context")
	cmd.Flags().StringVar(&flags.class, "class", "", "Enclosing class name for the context prefix")
	cmd.Flags().StringVar(&flags.function, "func", "", "Enclosing function name for the context prefix")
	_ = cmd.MarkFlagRequired("lang")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "classify <fragment>...",
		Short: "Print the category assigned to each fragment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifyFn := classify.Classify
			if lang != "" {
				p, ok := synth.Lookup(lang)
				if !ok {
					return errors.New(command.MsgUnsupported(lang))
				}
				classifyFn = p.Classify
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, fragment := range args {
				fmt.Fprintf(w, "%s\t%s\n", fragment, classifyFn(strings.TrimSpace(fragment)))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Restrict to the categories the language renders")
	return cmd
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and the categories each one renders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LANGUAGE\tCATEGORIES")
			for _, lang := range synth.Languages() {
				p, _ := synth.Lookup(lang)
				cats := make([]string, 0, len(p.Cases)+1)
				for _, c := range p.Categories() {
					cats = append(cats, string(c))
				}
				cats = append(cats, string(classify.Generic))
				fmt.Fprintf(w, "%s\t%s\n", lang, strings.Join(cats, ", "))
			}
			return w.Flush()
		},
	}
}

// parseColumns parses "FROM:TO".
func parseColumns(s string) (int, int, error) {
	fromStr, toStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid columns %q (want FROM:TO)", s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(fromStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column start %q: %w", fromStr, err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(toStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column end %q: %w", toStr, err)
	}
	return from, to, nil
}
