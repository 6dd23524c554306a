package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/njchilds90/htmlhelper"
)

func newLimitCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limit [file]",
		Short: "Truncate HTML to a number of visible characters",
		Long: `Truncate an HTML fragment to a number of visible characters, closing
every tag left open at the cut. Tags are not counted; an entity or a
multi-byte character counts as one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length := a.cfg.Limit.Length
			if cmd.Flags().Changed("length") {
				length, _ = cmd.Flags().GetInt("length")
			}
			if length < 0 {
				return fmt.Errorf("invalid --length %d: must not be negative", length)
			}
			end := a.cfg.Limit.End
			if cmd.Flags().Changed("end") {
				end, _ = cmd.Flags().GetString("end")
			}

			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := htmlhelper.LimitWithEnd(in, length, end)
			a.logger.Debug("limited input",
				"length", length,
				"in_bytes", len(in),
				"out_bytes", len(out),
			)
			return writeOutput(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().IntP("length", "n", 0, "maximum visible characters (default from config, 100)")
	cmd.Flags().String("end", "", `marker appended when text is cut (default from config, "...")`)
	return cmd
}

func newCleanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [file]",
		Short: "Neutralise XSS vectors in HTML",
		Long: `Remove event handler, xmlns and style attributes, rewrite javascript:,
vbscript:, -moz-binding: and data: URLs, and drop namespaced and
dangerous elements such as <script> and <iframe>.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			a.logger.Debug("cleaning input",
				"stages", strings.Join(htmlhelper.Stages(), ","),
				"in_bytes", len(in),
			)
			return writeOutput(cmd.OutOrStdout(), htmlhelper.Clean(in))
		},
	}
}

func newStripCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [file]",
		Short: "Remove all HTML tags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := htmlhelper.Strip(in)
			a.logger.Debug("stripped input",
				"in_bytes", len(in),
				"out_chars", utf8.RuneCountInString(out),
			)
			return writeOutput(cmd.OutOrStdout(), out)
		},
	}
}

func newNameCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name <name>...",
		Short: "Convert form field names to ids and segments",
		Long: `Print the element id and the segments of each form field name given in
array notation, one name per line:

  user[location][city]  ->  user-location-city  user location city`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range args {
				segments := htmlhelper.NameToArray(name)
				a.logger.Debug("converted name", "name", name, "segments", len(segments))
				if _, err := fmt.Fprintf(w, "%s\t%s\n", htmlhelper.NameToID(name), strings.Join(segments, " ")); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
			}
			return nil
		},
	}
}

func writeOutput(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
