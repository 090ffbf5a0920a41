package io

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/athena/pga"
)

const (
	ExampleTransformFile = `[Transform]

#######################
# Required Parameters #
#######################

# Whitespace separated table of points. Lines starting with # are ignored.
Input = path/to/points.txt
# File the moved points are written to.
Output = path/to/moved.txt

#######################
# Optional Parameters #
#######################

# Columns of the input table holding x, y and z. Default is 0, 1 and 2.
# XColumn = 0
# YColumn = 1
# ZColumn = 2

# Output format must be one of [ Table | Binary ]. Binary files can be read
# back with io.ReadBinaryPoints. Default is Table.
# OutputFormat = Table

# Number of goroutines used to move points and the number of points handed
# to each at once. Defaults are the number of logical cores and 4096.
# Workers = 8
# ChunkSize = 4096

[Motor]

#######################
# Required Parameters #
#######################

# Type must be one of [ Identity | Translation | Rotation | PointPoint ].
#   Translation moves by (Dx, Dy, Dz).
#   Rotation turns by Angle degrees about the axis (AxisX, AxisY, AxisZ)
#   through (CenterX, CenterY, CenterZ), then moves by (Dx, Dy, Dz).
#   PointPoint is the motor taking (FromX, FromY, FromZ) to (ToX, ToY, ToZ).
Type = Rotation

AxisZ = 1
Angle = 90

#######################
# Optional Parameters #
#######################

# CenterX = 0
# CenterY = 0
# CenterZ = 0
# Dx = 0
# Dy = 0
# Dz = 0

# The motor is raised to this power before it is applied, so 0.5 moves
# points half way. Default is 1.
# Power = 1`

	ExamplePlotFile = `[Plot]

#######################
# Required Parameters #
#######################

# Scene file written by 'athena eval --out'.
Scene = path/to/scene.yaml
# Image file. The extension picks the format.
Output = path/to/plot.png

#######################
# Optional Parameters #
#######################

# Time the scene is evaluated at. Default is 0.
# Time = 0

# Title = My scene

# Visible region. Fitted to the shown points if not set.
# XMin = -5
# XMax = 5
# YMin = -5
# YMax = 5

# Camera used for 3D values. Defaults look down at the origin from -y.
# EyeX = 0
# EyeY = -10
# EyeZ = 5
# FieldOfView = 60`
)

type TransformConfig struct {
	// Required
	Input, Output string

	// Optional
	XColumn, YColumn, ZColumn int
	OutputFormat              string
	Workers, ChunkSize        int
}

func (con *TransformConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *TransformConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *TransformConfig) ValidColumns() bool {
	cols := con.Columns()
	for i := range cols {
		if cols[i] < 0 {
			return false
		}
		for j := i + 1; j < len(cols); j++ {
			if cols[i] == cols[j] {
				return false
			}
		}
	}
	return true
}
func (con *TransformConfig) ValidOutputFormat() bool {
	switch strings.ToLower(con.OutputFormat) {
	case "table", "binary":
		return true
	}
	return false
}
func (con *TransformConfig) ValidWorkers() bool {
	return con.Workers >= 0
}
func (con *TransformConfig) ValidChunkSize() bool {
	return con.ChunkSize >= 0
}

// Columns returns the x, y and z columns of the input table.
func (con *TransformConfig) Columns() [3]int {
	return [3]int{con.XColumn, con.YColumn, con.ZColumn}
}

// IsBinary reports whether output should be written with WriteBinaryPoints.
func (con *TransformConfig) IsBinary() bool {
	return strings.ToLower(con.OutputFormat) == "binary"
}

func (con *TransformConfig) CheckInit() error {
	switch {
	case !con.ValidInput():
		return errors.New("Need to specify an Input file in [Transform].")
	case !con.ValidOutput():
		return errors.New("Need to specify an Output file in [Transform].")
	case !con.ValidColumns():
		return errors.Errorf(
			"XColumn, YColumn and ZColumn must be distinct and non-negative, "+
				"but are %d, %d and %d.", con.XColumn, con.YColumn, con.ZColumn,
		)
	case !con.ValidOutputFormat():
		return errors.Errorf(
			"OutputFormat must be one of [Table | Binary]. '%s' is not "+
				"recognized.", con.OutputFormat,
		)
	case !con.ValidWorkers():
		return errors.Errorf("Workers must be non-negative, but is %d.", con.Workers)
	case !con.ValidChunkSize():
		return errors.Errorf("ChunkSize must be non-negative, but is %d.", con.ChunkSize)
	}
	return nil
}

type MotorConfig struct {
	// Required
	Type string

	// Optional
	Dx, Dy, Dz                float64
	AxisX, AxisY, AxisZ       float64
	CenterX, CenterY, CenterZ float64
	Angle                     float64
	FromX, FromY, FromZ       float64
	ToX, ToY, ToZ             float64
	Power                     float64
}

const (
	MotorIdentity    = "identity"
	MotorTranslation = "translation"
	MotorRotation    = "rotation"
	MotorPointPoint  = "pointpoint"
)

func (con *MotorConfig) ValidType() bool {
	switch strings.ToLower(con.Type) {
	case MotorIdentity, MotorTranslation, MotorRotation, MotorPointPoint:
		return true
	}
	return false
}
func (con *MotorConfig) ValidAxis() bool {
	return con.AxisX != 0 || con.AxisY != 0 || con.AxisZ != 0
}
func (con *MotorConfig) ValidPower() bool {
	return !math.IsNaN(con.Power) && !math.IsInf(con.Power, 0)
}

func (con *MotorConfig) CheckInit() error {
	switch {
	case !con.ValidType():
		return errors.Errorf(
			"Motor Type must be one of [Identity | Translation | Rotation | "+
				"PointPoint]. '%s' is not recognized.", con.Type,
		)
	case strings.ToLower(con.Type) == MotorRotation && !con.ValidAxis():
		return errors.New("A Rotation motor needs a non-zero axis.")
	case !con.ValidPower():
		return errors.Errorf("Power must be finite, but is %g.", con.Power)
	}
	return nil
}

// Motor builds the motor described by con. CheckInit must have succeeded.
func (con *MotorConfig) Motor() pga.Motor3[float64] {
	var m pga.Motor3[float64]
	switch strings.ToLower(con.Type) {
	case MotorTranslation:
		m = pga.Motor3Translation(con.Dx, con.Dy, con.Dz)
	case MotorRotation:
		axis := [3]float64{con.AxisX, con.AxisY, con.AxisZ}
		rot := pga.Motor3Rotation(axis, con.Angle*math.Pi/180)
		toCenter := pga.Motor3Translation(con.CenterX, con.CenterY, con.CenterZ)
		m = pga.Motor3Translation(con.Dx, con.Dy, con.Dz).
			Mul(toCenter).Mul(rot).Mul(toCenter.Reverse())
	case MotorPointPoint:
		m = pga.Motor3PointPoint(
			pga.Point3At(con.FromX, con.FromY, con.FromZ),
			pga.Point3At(con.ToX, con.ToY, con.ToZ),
		)
	default:
		m = pga.IdentityMotor3[float64]()
	}

	if con.Power != 1 {
		m = m.Pow(con.Power)
	}
	return m
}

type TransformWrapper struct {
	Transform TransformConfig
	Motor     MotorConfig
}

func DefaultTransformWrapper() *TransformWrapper {
	con := TransformConfig{
		XColumn: 0, YColumn: 1, ZColumn: 2,
		OutputFormat: "Table",
	}
	mc := MotorConfig{Type: "Identity", Power: 1}
	return &TransformWrapper{con, mc}
}

// ReadTransformConfig reads and checks a [Transform] and [Motor] file.
func ReadTransformConfig(fname string) (*TransformWrapper, error) {
	wrap := DefaultTransformWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, errors.Wrapf(err, "reading config %s", fname)
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, errors.Wrapf(err, "config %s", fname)
	}
	return wrap, nil
}

func (wrap *TransformWrapper) CheckInit() error {
	if err := wrap.Transform.CheckInit(); err != nil {
		return err
	}
	return wrap.Motor.CheckInit()
}

type PlotConfig struct {
	// Required
	Scene, Output string

	// Optional
	Time                   float64
	Title                  string
	XMin, XMax, YMin, YMax float64
	EyeX, EyeY, EyeZ       float64
	FieldOfView            float64
}

func (con *PlotConfig) ValidScene() bool {
	return con.Scene != ""
}
func (con *PlotConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *PlotConfig) ValidBounds() bool {
	unset := con.XMin == 0 && con.XMax == 0 && con.YMin == 0 && con.YMax == 0
	return unset || (con.XMin < con.XMax && con.YMin < con.YMax)
}
func (con *PlotConfig) ValidFieldOfView() bool {
	return con.FieldOfView > 0 && con.FieldOfView < 180
}

func (con *PlotConfig) CheckInit() error {
	switch {
	case !con.ValidScene():
		return errors.New("Need to specify a Scene file in [Plot].")
	case !con.ValidOutput():
		return errors.New("Need to specify an Output file in [Plot].")
	case !con.ValidBounds():
		return errors.Errorf(
			"Plot bounds must satisfy XMin < XMax and YMin < YMax, but are "+
				"[%g, %g] x [%g, %g].", con.XMin, con.XMax, con.YMin, con.YMax,
		)
	case !con.ValidFieldOfView():
		return errors.Errorf(
			"FieldOfView must be in range (0, 180), but is %g.", con.FieldOfView,
		)
	}
	return nil
}

type PlotWrapper struct {
	Plot PlotConfig
}

func DefaultPlotWrapper() *PlotWrapper {
	con := PlotConfig{EyeX: 0, EyeY: -10, EyeZ: 5, FieldOfView: 60}
	return &PlotWrapper{con}
}

// ReadPlotConfig reads and checks a [Plot] file.
func ReadPlotConfig(fname string) (*PlotWrapper, error) {
	wrap := DefaultPlotWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, errors.Wrapf(err, "reading config %s", fname)
	}
	if err := wrap.Plot.CheckInit(); err != nil {
		return nil, errors.Wrapf(err, "config %s", fname)
	}
	return wrap, nil
}
