// Command scatterdemo renders a scatter figure file to SVG or PNG.
//
//	scatterdemo figure.yaml -o out.svg -o out.png --set data.0.fill=tozeroy
//
// Figures are YAML, TOML or JSON documents with a "data" list of traces
// and a "layout" object.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/export"
	"github.com/gogpu/plot/scatter"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/trace"
)

type options struct {
	outputs []string
	sets    []string
	scale   float64
	verbose bool
	dump    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "scatterdemo FIGURE",
		Short: "Render a scatter figure to SVG or PNG",
		Long: `Render a scatter figure file (YAML, TOML or JSON) to one or more
outputs. The output format follows the file extension.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.verbose {
				plot.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return run(cmd.Context(), cmd.OutOrStdout(), args[0], o)
		},
	}
	f := cmd.Flags()
	f.StringArrayVarP(&o.outputs, "output", "o", nil, "output file; repeatable (svg, png)")
	f.StringArrayVar(&o.sets, "set", nil, "override a figure value, e.g. data.0.line.shape=spline")
	f.Float64Var(&o.scale, "scale", 1, "device pixel ratio of raster outputs")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log rendering details to stderr")
	f.BoolVar(&o.dump, "dump", false, "print the figure JSON after overrides and exit")
	return cmd
}

func run(ctx context.Context, stdout io.Writer, path string, o options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scatterdemo: %w", err)
	}
	doc, err := toJSON(path, data)
	if err != nil {
		return err
	}
	if doc, err = applySets(doc, o.sets); err != nil {
		return err
	}
	if o.dump {
		_, err := fmt.Fprintf(stdout, "%s\n", doc)
		return err
	}
	fig, err := parseFigure(doc)
	if err != nil {
		return err
	}
	root, err := render(ctx, fig)
	if err != nil {
		return err
	}

	if len(o.outputs) == 0 {
		return scene.WriteDocument(stdout, float64(fig.Layout.Width), float64(fig.Layout.Height), root)
	}
	for _, out := range o.outputs {
		if err := write(out, export.Document{
			Root:   root,
			Width:  fig.Layout.Width,
			Height: fig.Layout.Height,
			Scale:  o.scale,
		}); err != nil {
			return err
		}
		plot.Logger().Info("scatterdemo: wrote", "file", out)
	}
	return nil
}

// render draws fig into a new subplot and returns its root.
func render(ctx context.Context, fig *Figure) (*scene.Node, error) {
	cd := trace.CalcAll(fig.Data)
	trace.Stack(cd)
	xa, ya, err := fig.axes(cd)
	if err != nil {
		return nil, err
	}
	sp := scatter.NewSubplot(xa, ya, scatter.WithOffset(fig.Layout.Margin.L, fig.Layout.Margin.T))

	var opts []scatter.Option
	if fig.Layout.Transition > 0 {
		opts = append(opts, scatter.WithTransition(time.Duration(fig.Layout.Transition)*time.Millisecond, scene.EaseCubicInOut))
	}
	r := scatter.NewRenderer(opts...)
	if err := r.Plot(ctx, sp, cd); err != nil {
		return nil, err
	}
	// a static export shows the end state of any transition
	scene.Finish(sp.Root)
	return sp.Root, nil
}

func write(path string, doc export.Document) (err error) {
	ex, err := export.ForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scatterdemo: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("scatterdemo: %w", cerr)
		}
	}()
	return ex.Export(f, doc)
}
