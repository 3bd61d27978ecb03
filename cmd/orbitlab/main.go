package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitlab/internal/apsis"
	"github.com/san-kum/orbitlab/internal/config"
	"github.com/san-kum/orbitlab/internal/export"
	"github.com/san-kum/orbitlab/internal/integrators"
	"github.com/san-kum/orbitlab/internal/metrics"
	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/sim"
	"github.com/san-kum/orbitlab/internal/storage"
	"github.com/san-kum/orbitlab/internal/tui"
	"github.com/san-kum/orbitlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	method     string
	dt         float64
	days       float64
	steps      int
	outFile    string
	halvings   int
	frameRate  int
	warp       int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "two-body orbit propagation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [planet]",
		Short: "propagate an orbit and report its apsides",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runOrbit,
	}
	runCmd.Flags().StringVar(&method, "method", "", "integration method (euler, rk4)")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep, seconds")
	runCmd.Flags().Float64Var(&days, "days", 0, "simulated days (defaults to the body's period)")
	runCmd.Flags().IntVar(&steps, "steps", 0, "sample count (overrides --days)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored trajectory as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write run metadata and samples as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a stored run as an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "orbit.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the configured bodies",
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [planet] [method...]",
		Short: "run several methods on the same body and compare",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareMethods,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0, "timestep, seconds")
	compareCmd.Flags().Float64Var(&days, "days", 0, "simulated days")

	sweepCmd := &cobra.Command{
		Use:   "sweep [planet]",
		Short: "halve the timestep repeatedly and report endpoint convergence",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepDt,
	}
	sweepCmd.Flags().StringVar(&method, "method", "", "integration method (euler, rk4)")
	sweepCmd.Flags().Float64Var(&dt, "dt", 0, "coarsest timestep, seconds")
	sweepCmd.Flags().Float64Var(&days, "days", 30, "simulated days")
	sweepCmd.Flags().IntVar(&halvings, "halvings", 3, "number of timestep halvings")

	liveCmd := &cobra.Command{
		Use:   "live [planet]",
		Short: "animate the orbit in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&method, "method", "", "integration method (euler, rk4)")
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "timestep, seconds")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&warp, "warp", 24, "stepper calls per frame")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd,
		exportSVGCmd, presetsCmd, compareCmd, sweepCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the yaml configuration, falling back to the built-in
// defaults when no --config was given.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

// resolveRun applies flag > config precedence and returns everything one
// propagation needs.
func resolveRun(cmd *cobra.Command, args []string) (planet string, field orbit.Gravity, stepper orbit.Stepper, s0 orbit.State, cfg sim.Config, methodName string, err error) {
	fileCfg, err := loadConfig()
	if err != nil {
		return "", orbit.Gravity{}, nil, orbit.State{}, sim.Config{}, "", err
	}

	planet = fileCfg.Planet
	if len(args) > 0 {
		planet = args[0]
	}

	methodName = fileCfg.Method
	if cmd.Flags().Changed("method") {
		methodName = method
	}
	m, err := integrators.Parse(methodName)
	if err != nil {
		return "", orbit.Gravity{}, nil, orbit.State{}, sim.Config{}, "", err
	}
	methodName = m.String()

	s0, err = fileCfg.InitialState(planet)
	if err != nil {
		return "", orbit.Gravity{}, nil, orbit.State{}, sim.Config{}, "", err
	}

	stepSize, numSteps := fileCfg.TimeSettings(planet)
	if cmd.Flags().Changed("dt") {
		stepSize = dt
		numSteps = 0
	}
	if f := cmd.Flags().Lookup("days"); f != nil && f.Changed {
		numSteps = int(days * 24 * 3600 / stepSize)
	} else if cmd.Flags().Changed("dt") {
		_, fallbackSteps := fileCfg.TimeSettings(planet)
		numSteps = int(float64(fallbackSteps) * fileCfg.TimeStep / stepSize)
	}
	if f := cmd.Flags().Lookup("steps"); f != nil && f.Changed {
		numSteps = steps
	}

	field = fileCfg.Field()
	stepper = integrators.New(m)
	cfg = sim.Config{Dt: stepSize, Steps: numSteps}
	return planet, field, stepper, s0, cfg, methodName, nil
}

func runOrbit(cmd *cobra.Command, args []string) error {
	planet, field, stepper, s0, cfg, methodName, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}

	prop := sim.New(field, stepper)
	drift := metrics.NewEnergyDrift(field)
	radial := metrics.NewRadialRange()
	prop.AddMetric(drift)
	prop.AddMetric(radial)

	fmt.Printf("propagating %s (%s, dt=%gs, %d samples)...\n", planet, methodName, cfg.Dt, cfg.NumSteps())
	start := time.Now()

	result, err := prop.Run(context.Background(), s0, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	traj := result.Trajectory
	ap, err := apsis.Aphelion(traj)
	if err != nil {
		return err
	}
	peri, err := apsis.Perihelion(traj)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(planet, methodName, traj, ap, peri, result.Metrics)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)
	fmt.Printf("perihelion: %.1f Gm (sample %d)\n", peri.Distance/1e9, peri.Index)
	fmt.Printf("aphelion:   %.1f Gm at %.1f km/s (sample %d)\n",
		ap.Distance/1e9, ap.Speed()/1e3, ap.Index)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6e\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPLANET\tMETHOD\tTIME\tDT\tSTEPS\tAPHELION")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0fs\t%d\t%.1f Gm\n",
			run.ID,
			run.Planet,
			run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dt,
			run.Steps,
			run.AphelionM/1e9,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	ap, err := apsis.Aphelion(traj)
	if err != nil {
		return err
	}
	peri, err := apsis.Perihelion(traj)
	if err != nil {
		return err
	}

	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\nplanet: %s (%s)\nsamples: %d\n\n", meta.ID, meta.Planet, meta.Method, traj.Len())
	fmt.Println(viz.RenderOrbit(traj, ap, peri, fileCfg.PlanetColors(meta.Planet), 60, 24))

	// Radius over time, downsampled to the plot width.
	radii := traj.Radii()
	const plotWidth = 100
	stride := len(radii) / plotWidth
	if stride < 1 {
		stride = 1
	}
	data := make([]float64, 0, plotWidth)
	for i := 0; i < len(radii); i += stride {
		data = append(data, radii[i]/1e9)
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("distance from the Sun, Gm"),
	))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	traj, err := storage.New(dataDir).LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{"time", "rx", "ry", "vx", "vy"}); err != nil {
		return err
	}
	for i := 0; i < traj.Len(); i++ {
		row := []string{
			strconv.FormatFloat(traj.Time(i), 'g', -1, 64),
			strconv.FormatFloat(traj.R[i].X(), 'g', -1, 64),
			strconv.FormatFloat(traj.R[i].Y(), 'g', -1, 64),
			strconv.FormatFloat(traj.V[i].X(), 'g', -1, 64),
			strconv.FormatFloat(traj.V[i].Y(), 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	type sample struct {
		T  float64 `json:"t"`
		RX float64 `json:"rx"`
		RY float64 `json:"ry"`
		VX float64 `json:"vx"`
		VY float64 `json:"vy"`
	}
	out := struct {
		Meta    *storage.RunMetadata `json:"meta"`
		Samples []sample             `json:"samples"`
	}{Meta: meta}

	out.Samples = make([]sample, traj.Len())
	for i := range out.Samples {
		out.Samples[i] = sample{
			T:  traj.Time(i),
			RX: traj.R[i].X(),
			RY: traj.R[i].Y(),
			VX: traj.V[i].X(),
			VY: traj.V[i].Y(),
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	ap, err := apsis.Aphelion(traj)
	if err != nil {
		return err
	}
	peri, err := apsis.Perihelion(traj)
	if err != nil {
		return err
	}

	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}

	svg := export.OrbitSVG(traj, ap, peri, fileCfg.PlanetColors(meta.Planet), 1000, 800)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLANET\tPERIHELION\tSPEED\tPERIOD")
	for _, name := range config.KnownPlanets(fileCfg) {
		p := fileCfg.Planets[name]
		fmt.Fprintf(w, "%s\t%.1f Gm\t%.2f km/s\t%.0f d\n",
			name, p.PerihelionDistanceGm, p.PerihelionSpeedKms, p.OrbitalPeriodDays)
	}
	return w.Flush()
}

func compareMethods(cmd *cobra.Command, args []string) error {
	planet := args[0]
	names := args[1:]
	if len(names) == 0 {
		names = integrators.Names()
	}

	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}
	s0, err := fileCfg.InitialState(planet)
	if err != nil {
		return err
	}
	stepSize, numSteps := fileCfg.TimeSettings(planet)
	if cmd.Flags().Changed("dt") {
		stepSize = dt
	}
	if cmd.Flags().Changed("days") {
		numSteps = int(days * 24 * 3600 / stepSize)
	}
	field := fileCfg.Field()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tAPHELION\tRADIAL RANGE\tENERGY DRIFT")
	for _, name := range names {
		m, err := integrators.Parse(name)
		if err != nil {
			return err
		}

		prop := sim.New(field, integrators.New(m))
		drift := metrics.NewEnergyDrift(field)
		radial := metrics.NewRadialRange()
		prop.AddMetric(drift)
		prop.AddMetric(radial)

		result, err := prop.Run(context.Background(), s0, sim.Config{Dt: stepSize, Steps: numSteps})
		if err != nil {
			return err
		}
		ap, err := apsis.Aphelion(result.Trajectory)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%.2f Gm\t%.2f Gm\t%.3e\n",
			m, ap.Distance/1e9, radial.Value()/1e9, drift.Value())
	}
	return w.Flush()
}

func sweepDt(cmd *cobra.Command, args []string) error {
	planet, field, stepper, s0, cfg, methodName, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	duration := days * 24 * 3600

	dts := make([]float64, halvings+1)
	dts[0] = cfg.Dt
	for i := 1; i < len(dts); i++ {
		dts[i] = dts[i-1] / 2
	}

	prop := sim.New(field, stepper)
	results, err := prop.SweepDt(context.Background(), s0, duration, dts)
	if err != nil {
		return err
	}

	// Endpoint error relative to the finest run.
	ref := results[len(results)-1].Trajectory
	refEnd := ref.R[ref.Len()-1]

	fmt.Printf("%s, %s, %g days\n\n", planet, methodName, days)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSAMPLES\tENDPOINT ERROR")
	for i, r := range results[:len(results)-1] {
		traj := r.Trajectory
		errM := traj.R[traj.Len()-1].Sub(refEnd).Len()
		fmt.Fprintf(w, "%.0fs\t%d\t%.3e m\n", dts[i], traj.Len(), errM)
	}
	fmt.Fprintf(w, "%.0fs\t%d\t(reference)\n", dts[len(dts)-1], ref.Len())
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	planet, field, stepper, s0, cfg, _, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}
	return tui.Run(planet, field, stepper, s0, cfg.Dt, warp, frameRate)
}
