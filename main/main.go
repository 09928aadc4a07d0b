package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gowake/io"
	"github.com/phil-mansfield/gowake/wake"
)

const beamSeed = 42

func main() {
	var (
		config  string
		example bool
		plot    bool
	)
	flag.StringVar(
		&config, "Wakefield", "",
		"Configuration file for a wakefield calculation.",
	)
	flag.BoolVar(
		&example, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)
	flag.BoolVar(
		&plot, "Plot", false,
		"Plot the on-axis longitudinal field with pyplot after the run.",
	)
	flag.Parse()

	if example {
		fmt.Println(io.ExampleWakefieldFile)
		return
	}
	if config == "" {
		log.Fatal("No mode specified. Use -Wakefield or -ExampleConfig.")
	}

	wrap, err := io.ReadWakefieldConfig(config)
	if err != nil { log.Fatal(err.Error()) }
	con := &wrap.Wakefield

	if !con.ValidRMax() {
		log.Fatal("Invalid 'RMax' value.")
	} else if !con.ValidXiRange() {
		log.Fatal("Invalid 'XiMin'/'XiMax' values.")
	} else if !con.ValidNR() || !con.ValidNXi() {
		log.Fatal("Invalid 'NR'/'NXi' values.")
	} else if !con.ValidDensity() {
		log.Fatal("Invalid 'Density' value.")
	} else if !con.ValidPPC() {
		log.Fatal("Invalid 'PPC' value.")
	} else if !con.ValidWaist() || !con.ValidLength() {
		log.Fatal("Invalid laser 'Waist'/'Length' values.")
	} else if !con.ValidBeam() {
		log.Fatal("Invalid beam values.")
	}

	par := wake.Params{
		RMax: con.RMax, XiMin: con.XiMin, XiMax: con.XiMax,
		NR: con.NR, NXi: con.NXi, PPC: con.PPC,
		Density: con.Density, RMaxPlasma: con.RMaxPlasma,
		Parabolic: con.Parabolic, MaxGamma: con.MaxGamma,
		Shape: con.Shape, Pusher: con.Pusher,
	}

	log.Printf("Running %d x %d wakefield calculation.", con.NXi, con.NR)
	res, err := wake.CalculateWakefields(laserMesh(con), gaussianBeam(con), par)
	if err != nil { log.Fatal(err.Error()) }

	xiSI := make([]float64, len(res.Xi))
	for i, x := range res.Xi { xiSI[i] = res.Scale.SI(x) }
	ez := make([]float64, len(res.Xi))
	rho := make([]float64, len(res.Xi))
	for i := range ez {
		ez[i] = res.Ez.At(i, 0)
		rho[i] = res.Rho.At(i, 0)
	}

	out := path.Join(con.Output, "ez_onaxis.dat")
	err = io.WriteLineout(out, []string{"xi", "ez", "rho"}, xiSI, ez, rho)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Wrote %s", out)

	if err = writeGrids(con, res); err != nil { log.Fatal(err.Error()) }

	if plot {
		plt.Reset()
		plt.Plot(xiSI, ez, "b", plt.LW(2))
		plt.Show()
	}
}

// laserMesh samples the configured Gaussian laser intensity profile on
// the solver grid. Returns nil if the laser is disabled.
func laserMesh(con *io.WakefieldConfig) [][]float64 {
	if con.A0Sq == 0 { return nil }

	dR := con.RMax / float64(con.NR)
	dXi := (con.XiMax - con.XiMin) / float64(con.NXi-1)
	mesh := make([][]float64, con.NXi)
	for i := range mesh {
		xi := con.XiMin + float64(i)*dXi - con.Centroid
		ampl := con.A0Sq * math.Exp(-xi*xi/(2*con.Length*con.Length))
		mesh[i] = make([]float64, con.NR)
		for j := range mesh[i] {
			r := (float64(j) + 0.5) * dR
			mesh[i][j] = ampl * math.Exp(-2*r*r/(con.Waist*con.Waist))
		}
	}
	return mesh
}

// gaussianBeam draws the configured beam macro-particles from a seeded
// generator, so reruns of the same configuration are identical.
func gaussianBeam(con *io.WakefieldConfig) wake.Beam {
	if con.BeamCharge == 0 { return wake.Beam{} }

	gen := rand.New(rand.NewSource(beamSeed))
	n := con.BeamParticles
	beam := wake.Beam{
		X: make([]float64, n), Y: make([]float64, n),
		Xi: make([]float64, n), Q: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		beam.X[i] = gen.NormFloat64() * con.BeamSigmaR
		beam.Y[i] = gen.NormFloat64() * con.BeamSigmaR
		beam.Xi[i] = con.BeamCentroid + gen.NormFloat64()*con.BeamSigmaXi
		beam.Q[i] = con.BeamCharge / float64(n)
	}
	return beam
}

// writeGrids dumps each output grid interior as a whitespace table, one
// row per slice.
func writeGrids(con *io.WakefieldConfig, res *wake.Result) error {
	grids := map[string]interface{ Row(int) []float64 }{
		"rho.dat": res.Rho, "chi.dat": res.Chi,
		"er.dat": res.Er, "ez.dat": res.Ez, "b_theta.dat": res.BTheta,
	}
	for name, g := range grids {
		f, err := os.Create(path.Join(con.Output, name))
		if err != nil { return err }
		for i := 0; i < con.NXi; i++ {
			for j, v := range g.Row(i) {
				if j > 0 { fmt.Fprint(f, " ") }
				fmt.Fprintf(f, "%.10g", v)
			}
			fmt.Fprintln(f)
		}
		if err = f.Close(); err != nil { return err }
		log.Printf("Wrote %s", path.Join(con.Output, name))
	}
	return nil
}
