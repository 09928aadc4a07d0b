/*package io reads wakefield run configuration files and writes field
line-outs.
*/
package io

import (
	"gopkg.in/gcfg.v1"
)

const ExampleWakefieldFile = `[Wakefield]

#######################
# Required Parameters #
#######################

# Radial extent of the simulation box in meters.
RMax = 100e-6
# Longitudinal extents of the box in meters, in the frame co-moving with
# the drive.
XiMin = -60e-6
XiMax = 20e-6

# Number of grid cells along r and xi.
NR  = 128
NXi = 64

# On-axis plasma density in m^-3.
Density = 1e24

# Plasma particles per radial cell.
PPC = 2

#######################
# Optional Parameters #
#######################

# Particle shape used for deposition. One of [ linear | cubic ].
# Shape = cubic

# Plasma pusher. One of [ rk4 | ab5 ].
# Pusher = rk4

# Radial extent of the plasma column in meters. Defaults to RMax.
# RMaxPlasma = 100e-6

# Coefficient of the transverse parabolic density profile in m^-2:
# n(r) = Density * (1 + Parabolic * r^2).
# Parabolic = 0

# Particles whose gamma reaches this threshold are put back at rest.
# MaxGamma = 10

# Peak normalized intensity a0^2, waist [m] and RMS length [m] of the
# synthesized Gaussian laser driver. A0Sq = 0 disables the laser.
# A0Sq = 0
# Waist = 30e-6
# Length = 10e-6
# Centroid = 0

# Total charge [C], RMS radius [m], RMS length [m], centroid [m] and
# macro-particle count of the synthesized Gaussian beam driver.
# BeamCharge = 0
# BeamSigmaR = 5e-6
# BeamSigmaXi = 5e-6
# BeamCentroid = 0
# BeamParticles = 10000

# Directory which the output tables are written to.
# Output = .`

// WakefieldConfig mirrors the [Wakefield] section of a run configuration
// file. The embedded drive parameters synthesize the Gaussian laser and
// beam drivers; everything else maps onto wake.Params.
type WakefieldConfig struct {
	RMax         float64
	XiMin, XiMax float64
	NR, NXi      int
	Density      float64
	PPC          int

	Shape, Pusher string
	RMaxPlasma    float64
	Parabolic     float64
	MaxGamma      float64

	A0Sq     float64
	Waist    float64
	Length   float64
	Centroid float64

	BeamCharge    float64
	BeamSigmaR    float64
	BeamSigmaXi   float64
	BeamCentroid  float64
	BeamParticles int

	Output string
}

type WakefieldWrapper struct {
	Wakefield WakefieldConfig
}

func DefaultWakefieldWrapper() *WakefieldWrapper {
	return &WakefieldWrapper{
		WakefieldConfig{
			Waist:         30e-6,
			Length:        10e-6,
			BeamSigmaR:    5e-6,
			BeamSigmaXi:   5e-6,
			BeamParticles: 10000,
			Output:        ".",
		},
	}
}

// ReadWakefieldConfig parses file into a fresh wrapper with defaults
// applied.
func ReadWakefieldConfig(file string) (*WakefieldWrapper, error) {
	wrap := DefaultWakefieldWrapper()
	if err := gcfg.ReadFileInto(wrap, file); err != nil { return nil, err }
	return wrap, nil
}

func (con *WakefieldConfig) ValidRMax() bool    { return con.RMax > 0 }
func (con *WakefieldConfig) ValidXiRange() bool { return con.XiMax > con.XiMin }
func (con *WakefieldConfig) ValidNR() bool      { return con.NR > 0 }
func (con *WakefieldConfig) ValidNXi() bool     { return con.NXi >= 3 }
func (con *WakefieldConfig) ValidDensity() bool { return con.Density > 0 }
func (con *WakefieldConfig) ValidPPC() bool     { return con.PPC > 0 }
func (con *WakefieldConfig) ValidWaist() bool   { return con.Waist > 0 }
func (con *WakefieldConfig) ValidLength() bool  { return con.Length > 0 }
func (con *WakefieldConfig) ValidBeam() bool {
	return con.BeamCharge == 0 ||
		(con.BeamSigmaR > 0 && con.BeamSigmaXi > 0 && con.BeamParticles > 0)
}
