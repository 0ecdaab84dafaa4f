package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fractalzoom/internal/anim"
	"github.com/san-kum/fractalzoom/internal/automation"
	"github.com/san-kum/fractalzoom/internal/compute"
	"github.com/san-kum/fractalzoom/internal/config"
	"github.com/san-kum/fractalzoom/internal/fractal"
	"github.com/san-kum/fractalzoom/internal/metrics"
	"github.com/san-kum/fractalzoom/internal/storage"
	"github.com/san-kum/fractalzoom/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	iterations uint32
	steps      uint32
	backend    string
	workers    int
	// Canvas size for headless commands
	width  uint32
	height uint32
	// Viewport overrides
	centerX float64
	centerY float64
	scale   float64
	// Input for animate
	mouseX   int32
	mouseY   int32
	zoomDir  string
	clicks   int
	realtime bool
	name     string
	// Live view
	cols      int
	rows      int
	frameRate int
	theme     string
	debug     bool
	logPath   string
	// Misc
	bins      int
	benchRuns int
	output    string
	events    int
	seed      int64
	clickProb float64
)

// main registers the fractalzoom commands and runs the live viewer when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "fractalzoom",
		Short: "animated mandelbrot explorer",
		RunE:  runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named viewport")
	pf.Uint32Var(&iterations, "iterations", fractal.DefaultMaxIterations, "max escape iterations")
	pf.Uint32Var(&steps, "steps", anim.DefaultTotalSteps, "ticks per transition")
	pf.StringVar(&backend, "backend", config.DefaultBackend, "render backend ("+strings.Join(compute.Names(), ", ")+")")
	pf.IntVar(&workers, "workers", 0, "render workers (0 = all cpus)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive viewer in the terminal",
		RunE:  runLive,
	}
	addLiveFlags(liveCmd)
	addLiveFlags(rootCmd)

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "render one frame and report on it",
		RunE:  renderFrame,
	}
	addCanvasFlags(frameCmd)

	histCmd := &cobra.Command{
		Use:   "histogram",
		Short: "plot the escape iteration distribution",
		RunE:  iterationHistogram,
	}
	addCanvasFlags(histCmd)
	histCmd.Flags().IntVar(&bins, "bins", 20, "number of buckets")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "run wheel zooms headlessly and save the trace",
		RunE:  runAnimate,
	}
	addCanvasFlags(animateCmd)
	animateCmd.Flags().Int32Var(&mouseX, "x", -1, "cursor x in pixels (default center)")
	animateCmd.Flags().Int32Var(&mouseY, "y", -1, "cursor y in pixels (default center)")
	animateCmd.Flags().StringVar(&zoomDir, "zoom", "in", "wheel direction (in, out)")
	animateCmd.Flags().IntVar(&clicks, "clicks", 1, "number of wheel events")
	animateCmd.Flags().BoolVar(&realtime, "realtime", false, "pace ticks with the tick clock")
	animateCmd.Flags().StringVar(&name, "name", "animate", "run name")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "replay a yaml input scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	addCanvasFlags(scenarioCmd)

	wanderCmd := &cobra.Command{
		Use:   "wander",
		Short: "fire random wheel and click events",
		RunE:  runWander,
	}
	addCanvasFlags(wanderCmd)
	wanderCmd.Flags().IntVar(&events, "events", 100, "number of events")
	wanderCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time)")
	wanderCmd.Flags().Float64Var(&clickProb, "click-prob", 0.3, "probability an event is a click")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved traces",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a trace as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a trace as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare render backends",
		RunE:  benchBackends,
	}
	benchCmd.Flags().IntVar(&benchRuns, "runs", 5, "renders per size")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list viewport presets",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(liveCmd, frameCmd, histCmd, animateCmd, scenarioCmd, wanderCmd,
		listCmd, plotCmd, exportCmd, exportCSVCmd, benchCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addLiveFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&cols, "cols", 80, "canvas width in terminal cells")
	cmd.Flags().IntVar(&rows, "rows", 24, "canvas height in terminal cells")
	cmd.Flags().IntVar(&frameRate, "fps", 30, "ticks per second")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	cmd.Flags().BoolVar(&debug, "debug", false, "log diagnostics to a file")
	cmd.Flags().StringVar(&logPath, "log", "fractalzoom.log", "debug log path")
}

func addCanvasFlags(cmd *cobra.Command) {
	cmd.Flags().Uint32Var(&width, "width", fractal.DefaultWidth, "canvas width in pixels")
	cmd.Flags().Uint32Var(&height, "height", fractal.DefaultHeight, "canvas height in pixels")
	cmd.Flags().Float64Var(&centerX, "cx", 0, "viewport center real part")
	cmd.Flags().Float64Var(&centerY, "cy", 0, "viewport center imaginary part")
	cmd.Flags().Float64Var(&scale, "scale", fractal.DefaultScale, "pixels per unit")
}

// loadConfig merges defaults, the config file, the preset and explicit
// flags, in increasing order of precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.ApplyPreset(p)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("iterations") {
		cfg.MaxIterations = iterations
	}
	if flags.Changed("steps") {
		cfg.TotalSteps = steps
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("cx") {
		cfg.Viewport.CenterX = centerX
	}
	if flags.Changed("cy") {
		cfg.Viewport.CenterY = centerY
	}
	if flags.Changed("scale") {
		cfg.Viewport.Scale = scale
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("fps") {
		if frameRate <= 0 {
			return nil, fmt.Errorf("fps must be positive, got %d", frameRate)
		}
		cfg.TickMs = max(1, 1000/frameRate)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newAnimator(cfg *config.Config, dims fractal.Dimensions, vp fractal.Viewport, opts ...anim.Option) (*anim.Animator, error) {
	b, err := compute.Lookup(cfg.Backend, cfg.Workers)
	if err != nil {
		return nil, err
	}
	ac := cfg.AnimatorConfig()
	ac.Dimensions = dims
	return anim.New(ac, vp, append([]anim.Option{anim.WithBackend(b)}, opts...)...)
}

// fitViewport rescales vp so a canvas of size to shows the same region of
// the plane as a canvas of size from.
func fitViewport(vp fractal.Viewport, from, to fractal.Dimensions) fractal.Viewport {
	vp.Scale *= float64(to.Width) / float64(from.Width)
	return vp
}

func newMetadata(runName string, cfg *config.Config, a *anim.Animator, start fractal.Viewport, col *metrics.Collector) storage.RunMetadata {
	d := a.Dimensions()
	return storage.RunMetadata{
		Name:          runName,
		Width:         d.Width,
		Height:        d.Height,
		MaxIterations: cfg.MaxIterations,
		TotalSteps:    cfg.TotalSteps,
		Backend:       a.Backend().Name(),
		Start:         start,
		End:           a.CurrentViewport(),
		Metrics:       col.Values(),
	}
}

func saveTrace(cfg *config.Config, meta storage.RunMetadata, trace *storage.Trace) (string, error) {
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	return st.Save(meta, trace)
}

func printMetrics(col *metrics.Collector) {
	values := col.Values()
	fmt.Println("\nmetrics:")
	for _, n := range col.Names() {
		fmt.Printf("  %s: %.6f\n", n, values[n])
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("cols and rows must be positive, got %dx%d", cols, rows)
	}

	dims := viz.CanvasDimensions(cols, rows)
	start := fitViewport(cfg.Viewport, cfg.Dimensions(), dims)

	trace := storage.NewTrace()
	col := metrics.Default(start.Scale)
	a, err := newAnimator(cfg, dims, start, anim.WithObserver(trace), anim.WithObserver(col))
	if err != nil {
		return err
	}

	if err := viz.Run(a, viz.Options{Theme: cfg.Theme, Debug: debug, LogPath: logPath}); err != nil {
		return err
	}

	if len(trace.Points) == 0 {
		return nil
	}
	runID, err := saveTrace(cfg, newMetadata("live", cfg, a, start, col), trace)
	if err != nil {
		return err
	}
	fmt.Printf("session saved: %s (%d frames)\n", runID, len(trace.Points))
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	b, err := compute.Lookup(cfg.Backend, cfg.Workers)
	if err != nil {
		return err
	}

	dims := cfg.Dimensions()
	start := time.Now()
	buf, err := anim.Render(b, cfg.Viewport, dims, cfg.MaxIterations)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("viewport: %s\n", cfg.Viewport)
	fmt.Printf("size: %dx%d (%d bytes)\n", dims.Width, dims.Height, len(buf))
	fmt.Printf("backend: %s\n", b.Name())
	fmt.Printf("iterations: %d\n", cfg.MaxIterations)
	fmt.Printf("render time: %v\n", elapsed)
	fmt.Printf("inside fraction: %.4f\n", metrics.BlackFraction(buf))
	return nil
}

func iterationHistogram(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if bins <= 0 {
		return fmt.Errorf("bins must be positive, got %d", bins)
	}

	dims := cfg.Dimensions()
	counts := make([]float64, bins)
	inside := 0
	for y := int32(0); y < int32(dims.Height); y++ {
		for x := int32(0); x < int32(dims.Width); x++ {
			cRe, cIm := fractal.PixelToComplex(x, y, cfg.Viewport, dims)
			n := fractal.EscapeIterations(cRe, cIm, cfg.MaxIterations)
			if n == cfg.MaxIterations {
				inside++
				continue
			}
			counts[bucketFor(n, cfg.MaxIterations, bins)]++
		}
	}

	fmt.Printf("viewport: %s\n", cfg.Viewport)
	fmt.Printf("pixels: %d, inside: %d\n\n", dims.Pixels(), inside)

	for i := range counts {
		counts[i] = math.Log10(counts[i] + 1)
	}
	graph := asciigraph.Plot(counts,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("log10(pixels+1) per bucket of %d iterations", (uint64(cfg.MaxIterations)+1)/uint64(bins))))
	fmt.Println(graph)
	return nil
}

// bucketFor spreads escape counts in [0, maxIterations) over bins buckets.
// The span is widened to 64 bits so maxIterations+1 cannot wrap.
func bucketFor(n, maxIterations uint32, bins int) int {
	return int(uint64(n) * uint64(bins) / (uint64(maxIterations) + 1))
}

func parseDirection(dir string) (float64, error) {
	switch dir {
	case "in":
		return anim.ZoomIn, nil
	case "out":
		return anim.ZoomOut, nil
	}
	return 0, fmt.Errorf("unknown zoom direction: %s (in, out)", dir)
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	factor, err := parseDirection(zoomDir)
	if err != nil {
		return err
	}

	dims := cfg.Dimensions()
	x, y := mouseX, mouseY
	if x < 0 {
		x = int32(dims.Width / 2)
	}
	if y < 0 {
		y = int32(dims.Height / 2)
	}

	trace := storage.NewTrace()
	col := metrics.Default(cfg.Viewport.Scale)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tLEFT\tCENTER X\tCENTER Y\tSCALE\tRENDER")
	table := anim.ObserverFunc(func(f anim.Frame) {
		fmt.Fprintf(w, "%d\t%d\t%.12f\t%.12f\t%.4f\t%v\n",
			f.Step, f.StepsRemaining, f.Viewport.CenterX, f.Viewport.CenterY, f.Viewport.Scale, f.RenderTime.Round(time.Microsecond))
	})

	a, err := newAnimator(cfg, dims, cfg.Viewport,
		anim.WithObserver(trace), anim.WithObserver(col), anim.WithObserver(table))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("zooming %s at (%d, %d) from %s\n", zoomDir, x, y, cfg.Viewport)
	begin := time.Now()
	for i := 0; i < clicks; i++ {
		if _, err := a.ZoomAt(x, y, factor); err != nil {
			return err
		}
		if realtime {
			clock, stopClock := anim.Ticker(cfg.TickDuration())
			err = a.Run(ctx, clock)
			stopClock()
		} else {
			_, err = a.Settle()
		}
		if err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	runID, err := saveTrace(cfg, newMetadata(name, cfg, a, cfg.Viewport, col), trace)
	if err != nil {
		return err
	}

	fmt.Printf("\ncompleted in %v\n", time.Since(begin))
	fmt.Printf("landed on: %s\n", a.CurrentViewport())
	fmt.Printf("run id: %s\n", runID)
	printMetrics(col)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	trace := storage.NewTrace()
	col := metrics.Default(cfg.Viewport.Scale)
	a, err := newAnimator(cfg, cfg.Dimensions(), cfg.Viewport, anim.WithObserver(trace), anim.WithObserver(col))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("  %s\n", sc.Description)
	}

	res, err := automation.RunScenario(ctx, sc, a, os.Stdout)
	if err != nil {
		return err
	}

	runName := sc.Name
	if runName == "" {
		runName = "scenario"
	}
	runID, err := saveTrace(cfg, newMetadata(runName, cfg, a, cfg.Viewport, col), trace)
	if err != nil {
		return err
	}

	fmt.Printf("\nevents: %d, frames: %d\n", res.Events, res.Frames)
	fmt.Printf("landed on: %s\n", res.Final)
	fmt.Printf("run id: %s\n", runID)
	printMetrics(col)
	return nil
}

func runWander(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a, err := newAnimator(cfg, cfg.Dimensions(), cfg.Viewport)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("firing %d random events...\n", events)
	start := time.Now()
	results, err := automation.RunWander(ctx, automation.WanderConfig{
		Events:    events,
		ClickProb: clickProb,
		Seed:      seed,
	}, a)
	if err != nil {
		return err
	}

	valid, invalid := automation.WanderStats(results)
	ticks, clickEvents := 0, 0
	for _, r := range results {
		ticks += r.Ticks
		if r.Event.Cause == anim.CauseClick {
			clickEvents++
		}
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("events: %d (%d clicks, %d wheels), ticks: %d\n", len(results), clickEvents, len(results)-clickEvents, ticks)
	fmt.Printf("valid viewports: %d, invalid: %d\n", valid, invalid)
	fmt.Printf("final: %s\n", a.CurrentViewport())
	if invalid > 0 {
		return fmt.Errorf("%d events left an invalid viewport", invalid)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSIZE\tTICKS\tBACKEND\tEND SCALE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\t%.4g\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Ticks,
			run.Backend,
			run.End.Scale,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace.Points) < 2 {
		return fmt.Errorf("not enough ticks to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("from: %s\n", meta.Start)
	fmt.Printf("to:   %s\n", meta.End)
	fmt.Printf("ticks: %d\n\n", len(trace.Points))

	depth := make([]float64, len(trace.Points))
	renderMs := make([]float64, len(trace.Points))
	for i, p := range trace.Points {
		depth[i] = math.Log2(p.Viewport.Scale / meta.Start.Scale)
		renderMs[i] = p.RenderMs
	}

	fmt.Println(asciigraph.Plot(depth,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("zoom depth (log2 scale)")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(renderMs,
		asciigraph.Height(6),
		asciigraph.Width(70),
		asciigraph.Caption("render time (ms)")))
	return nil
}

func openOutput() (*os.File, func() error, error) {
	if output == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(output)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	f, closeFn, err := openOutput()
	if err != nil {
		return err
	}
	if err := storage.ExportJSON(f, meta, trace); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	f, closeFn, err := openOutput()
	if err != nil {
		return err
	}
	if err := storage.WriteTraceCSV(csv.NewWriter(f), trace); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func benchBackends(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if benchRuns <= 0 {
		return fmt.Errorf("runs must be positive, got %d", benchRuns)
	}

	sizes := []fractal.Dimensions{
		{Width: 160, Height: 120},
		{Width: 400, Height: 300},
		{Width: 800, Height: 600},
	}

	fmt.Printf("benchmarking %s at %d iterations, %d runs each\n\n", cfg.Viewport, cfg.MaxIterations, benchRuns)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BACKEND\tSIZE\tMEAN\tMPIX/S")

	for _, bname := range compute.Names() {
		b, err := compute.Lookup(bname, cfg.Workers)
		if err != nil {
			return err
		}
		for _, dims := range sizes {
			vp := fitViewport(cfg.Viewport, cfg.Dimensions(), dims)
			start := time.Now()
			for i := 0; i < benchRuns; i++ {
				if _, err := b.Render(vp, dims, cfg.MaxIterations); err != nil {
					return err
				}
			}
			mean := time.Since(start) / time.Duration(benchRuns)
			mpix := float64(dims.Pixels()) / mean.Seconds() / 1e6
			fmt.Fprintf(w, "%s\t%dx%d\t%v\t%.2f\n", b.Name(), dims.Width, dims.Height, mean.Round(time.Microsecond), mpix)
		}
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVIEWPORT\tITERATIONS\tDESCRIPTION")
	for _, n := range config.ListPresets() {
		p := config.GetPreset(n)
		iters := "default"
		if p.MaxIterations > 0 {
			iters = fmt.Sprint(p.MaxIterations)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n, p.Viewport, iters, p.Description)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "fractalzoom.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
