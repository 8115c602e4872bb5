package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/internal/forms"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

var (
	ErrViolations      = errors.New("document has violations")
	ErrUnsupportedFile = errors.New("unsupported file extension")
	ErrUnknownForm     = errors.New("unknown form")
	ErrDecodeDocument  = errors.New("failed to decode document")
)

type checkOptions struct {
	form       string
	normalized bool
	noColor    bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	c := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a YAML or JSON document",
		Long: `Validate a document and print "ok" or one line per violation.
The format is picked by extension: .yaml, .yml or .json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0], opts)
		},
	}

	c.Flags().StringVarP(&opts.form, "form", "f", "signup", "document kind: signup or address")
	c.Flags().BoolVar(&opts.normalized, "normalized", false, "print the normalised document as YAML when valid")
	c.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return c
}

func runCheck(out io.Writer, path string, opts *checkOptions) error {
	var (
		value any
		err   error
	)
	switch opts.form {
	case "signup":
		var s forms.Signup
		s, err = checkFile(path, forms.SignupRule())
		s.Password = ""
		value = s
	case "address":
		value, err = checkFile(path, forms.AddressRule())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownForm, opts.form)
	}

	okColor := color.New(color.FgHiGreen, color.Bold)
	idColor := color.New(color.FgHiYellow)
	if opts.noColor {
		okColor.DisableColor()
		idColor.DisableColor()
	}

	if report, ok := validator.AsReport(err); ok {
		for _, v := range report {
			fmt.Fprintf(out, "%s: %s\n", idColor.Sprint(v.ID), v.Message)
		}
		return fmt.Errorf("%s: %w", path, ErrViolations)
	}
	if err != nil {
		return err
	}

	okColor.Fprintln(out, "ok")
	if opts.normalized {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	}
	return nil
}

func checkFile[T any](path string, rule validator.Rule[T]) (T, error) {
	v, err := decodeFile[T](path)
	if err != nil {
		return v, err
	}
	return rule.Check(v, validator.NoID)
}

func decodeFile[T any](path string) (T, error) {
	var v T

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".json" {
		return v, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return v, err
	}
	defer f.Close()

	if ext == ".json" {
		dec := json.NewDecoder(f)
		dec.DisallowUnknownFields()
		err = dec.Decode(&v)
	} else {
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		err = dec.Decode(&v)
	}
	if err != nil {
		return v, errors.Join(ErrDecodeDocument, err)
	}
	return v, nil
}
