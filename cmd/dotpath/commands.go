package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yamledit/dotpath"
)

// errNotFound makes `has` exit non-zero without printing anything.
var errNotFound = errors.New("not found")

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	file   string
	format string
	color  string

	// indent of the YAML input, reused for YAML output.
	indent int
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dotpath",
		Short:         "Query and edit JSON or YAML documents with dotted wildcard paths",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVarP(&a.file, "file", "f", "-", "Input document (- for stdin)")
	root.PersistentFlags().StringVar(&a.format, "format", "", "Document format: json or yaml (default: from file extension or content)")
	root.PersistentFlags().StringVar(&a.color, "color", "auto", "Colorize output: auto, always or never")

	root.AddCommand(
		a.getCmd(),
		a.hasCmd(),
		a.setCmd(),
		a.deleteCmd(),
		a.flattenCmd(),
		a.expandCmd(),
		a.patchCmd(),
		a.matchCmd(),
		a.tokensCmd(),
	)
	return root
}

func (a *app) getCmd() *cobra.Command {
	var (
		fallback  string
		noObjects bool
		noArrays  bool
	)
	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value at a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, format, err := a.readDocument()
			if err != nil {
				return err
			}
			opts := []dotpath.Option{
				dotpath.IterateObjects(!noObjects),
				dotpath.IterateArrays(!noArrays),
			}
			v, ok := dotpath.Lookup(doc, args[0], opts...)
			if !ok {
				if !cmd.Flags().Changed("default") {
					return fmt.Errorf("path %q not found", args[0])
				}
				if v, err = parseValue(fallback); err != nil {
					return err
				}
			}
			return a.writeDocument(v, format)
		},
	}
	cmd.Flags().StringVar(&fallback, "default", "", "Value printed when the path does not match")
	cmd.Flags().BoolVar(&noObjects, "no-iterate-objects", false, "Do not expand wildcards over map entries")
	cmd.Flags().BoolVar(&noArrays, "no-iterate-arrays", false, "Do not expand wildcards over list elements")
	return cmd
}

func (a *app) hasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has <path>",
		Short: "Exit zero when the path matches, non-zero otherwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := a.readDocument()
			if err != nil {
				return err
			}
			found := dotpath.Has(doc, args[0])
			_, _ = fmt.Fprintln(a.out, found)
			if !found {
				return errNotFound
			}
			return nil
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Write a value (parsed as YAML) at a path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, format, err := a.readDocument()
			if err != nil {
				return err
			}
			v, err := parseValue(args[1])
			if err != nil {
				return err
			}
			return a.writeDocument(dotpath.Set(doc, args[0], v), format)
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <path>",
		Aliases: []string{"rm", "remove"},
		Short:   "Remove the element(s) at a path",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, format, err := a.readDocument()
			if err != nil {
				return err
			}
			return a.writeDocument(dotpath.Remove(doc, args[0]), format)
		},
	}
}

func (a *app) flattenCmd() *cobra.Command {
	var lines bool
	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Print the document as a single-level path to value map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, format, err := a.readDocument()
			if err != nil {
				return err
			}
			flat := dotpath.Flatten(doc)
			if !lines {
				return a.writeDocument(flat, format)
			}
			p := newPalette(useColor(a.out, a.color))
			for _, it := range flat {
				b, err := dotpath.EncodeJSON(it.Value)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(a.out, "%s = %s\n", p.path.Sprint(it.Key), p.value.Sprint(string(b)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&lines, "lines", false, "Print one \"path = json\" line per leaf")
	return cmd
}

func (a *app) expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand",
		Short: "Rebuild a nested document from a flat path to value map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, format, err := a.readDocument()
			if err != nil {
				return err
			}
			if !dotpath.IsMap(doc) {
				return errors.New("expand needs a map of paths to values")
			}
			return a.writeDocument(dotpath.Expand(doc), format)
		},
	}
}

func (a *app) patchCmd() *cobra.Command {
	var merge bool
	cmd := &cobra.Command{
		Use:   "patch <patch-file>",
		Short: "Apply an RFC 6902 JSON Patch (or RFC 7386 merge patch with --merge)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, format, err := a.readDocument()
			if err != nil {
				return err
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read patch: %w", err)
			}
			patchJSON, err := toJSON(raw)
			if err != nil {
				return err
			}
			var out interface{}
			if merge {
				out, err = dotpath.ApplyMergePatch(doc, patchJSON)
			} else {
				out, err = dotpath.ApplyJSONPatch(doc, patchJSON)
			}
			if err != nil {
				return err
			}
			return a.writeDocument(out, format)
		},
	}
	cmd.Flags().BoolVar(&merge, "merge", false, "Treat the patch as a JSON Merge Patch")
	return cmd
}

func (a *app) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <path> <path>",
		Short: "Exit zero when two path patterns match each other",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := dotpath.MatchPath(args[0], args[1])
			_, _ = fmt.Fprintln(a.out, ok)
			if !ok {
				return errNotFound
			}
			return nil
		},
	}
}

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <path>",
		Short: "Print the decoded tokens of a path, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range dotpath.Tokenize(args[0]) {
				_, _ = fmt.Fprintln(a.out, t)
			}
			return nil
		},
	}
}

// readDocument loads the input and reports the format used to read it.
func (a *app) readDocument() (interface{}, string, error) {
	var (
		raw []byte
		err error
	)
	if a.file == "-" {
		raw, err = io.ReadAll(a.in)
	} else {
		raw, err = os.ReadFile(a.file)
	}
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}
	format := a.format
	if format == "" {
		format = detectFormat(a.file, raw)
	}
	var doc interface{}
	switch format {
	case "json":
		doc, err = dotpath.DecodeJSON(raw)
	case "yaml", "yml":
		a.indent = detectIndent(raw)
		doc, err = dotpath.DecodeYAML(raw)
	default:
		return nil, "", fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, "", err
	}
	return doc, format, nil
}

func (a *app) writeDocument(v interface{}, format string) error {
	var (
		b   []byte
		err error
	)
	if format == "json" {
		b, err = dotpath.EncodeJSON(v)
		b = append(b, '\n')
	} else {
		b, err = dotpath.EncodeYAMLIndent(v, a.indent)
	}
	if err != nil {
		return err
	}
	_, err = a.out.Write(b)
	return err
}

func detectFormat(file string, raw []byte) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return "json"
	}
	return "yaml"
}

// parseValue reads a command line value as a YAML scalar or flow node, so
// `42`, `true`, `null` and `{a: 1}` keep their types.
func parseValue(s string) (interface{}, error) {
	v, err := dotpath.DecodeYAML([]byte(s))
	if err != nil {
		return nil, err
	}
	if v == nil && strings.TrimSpace(s) != "null" && strings.TrimSpace(s) != "~" {
		return s, nil
	}
	return v, nil
}

// toJSON accepts a patch written in JSON or YAML.
func toJSON(raw []byte) ([]byte, error) {
	v, err := dotpath.DecodeYAML(raw)
	if err != nil {
		return nil, err
	}
	return dotpath.EncodeJSON(v)
}
