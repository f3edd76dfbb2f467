package command

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"
	"github.com/spf13/cobra"

	"github.com/ontograph/ontograph/clog"
	"github.com/ontograph/ontograph/translate"
)

const (
	flagExport       = "out"
	flagExportFormat = "format"
)

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Translate the graph model and write the triples to a file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString(flagExport)
			if out == "" && len(args) == 1 {
				out = args[0]
			}
			if out == "" {
				out = "-"
			}
			h, err := openHandle(cmd)
			if err != nil {
				return err
			}
			typ, _ := cmd.Flags().GetString(flagExportFormat)
			return writeTriplesTo(out, typ, h.Set())
		},
	}
	cmd.Flags().StringP(flagExport, "o", "", `file to write the triples to (".gz" supported, "-" for stdout)`)
	cmd.Flags().String(flagExportFormat, "", `serialization to use instead of auto-detection ("turtle", "nquads", "jsonld")`)
	return cmd
}

func writeTriplesTo(path string, typ string, set *translate.TripleSet) error {
	var f *os.File
	if path == "-" {
		f = os.Stdout
		clog.Infof("writing triples to stdout")
	} else {
		var err error
		f, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create file %q: %v", path, err)
		}
		defer f.Close()
		fmt.Printf("writing triples to file %q\n", path)
	}

	var w io.Writer = f
	ext := filepath.Ext(path)
	if ext == ".gz" {
		ext = filepath.Ext(strings.TrimSuffix(path, ext))
		gzip := gzip.NewWriter(f)
		defer gzip.Close()
		w = gzip
	}
	if typ == "" {
		switch ext {
		case ".nq", ".nt":
			typ = "nquads"
		case ".jsonld", ".json":
			typ = "jsonld"
		default:
			typ = "turtle"
		}
	}
	switch typ {
	case "turtle", "ttl":
		return set.WriteTurtle(w)
	case "nquads", "nq":
		qw := nquads.NewWriter(w)
		defer qw.Close()
		n, err := quad.Copy(qw, set.Reader())
		if err != nil {
			return err
		} else if err = qw.Close(); err != nil {
			return err
		}
		if path != "-" {
			fmt.Printf("%d triples were written\n", n)
		}
		return nil
	case "jsonld":
		qw := jsonld.NewWriter(w)
		defer qw.Close()
		if _, err := quad.Copy(qw, set.Reader()); err != nil {
			return err
		}
		return qw.Close()
	default:
		return fmt.Errorf("unsupported format: %q", typ)
	}
}
