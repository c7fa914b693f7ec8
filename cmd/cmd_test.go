package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/hyperweno/InputParameters"
	"github.com/notargets/hyperweno/integrators"
)

func TestLimitCFL(t *testing.T) {
	fe, err := integrators.NewStepper("fe")
	require.NoError(t, err)
	assert.Equal(t, 0.4, LimitCFL(fe, 0.9))
	assert.Equal(t, 0.2, LimitCFL(fe, 0.2))
	for _, name := range integrators.Names() {
		_, ok := max_CFL[name]
		assert.True(t, ok, name)
	}
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf))
	out := buf.String()
	for _, s := range []string{"buckley_leverett", "Z7", "td_rk5", "TD_RK4 (order 4, two derivative)"} {
		assert.Contains(t, out, s)
	}
}

func TestExampleInput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExampleInput(&buf, "dam_break"))
	var ip InputParameters.InputParameters1D
	require.NoError(t, ip.Parse(buf.Bytes()))
	assert.Equal(t, "dam_break", ip.Problem)
	assert.Equal(t, "dam_break.dat", ip.OutputFile)
	assert.Equal(t, 200, ip.Mx)
	assert.Error(t, ExampleInput(&buf, "nope"))
}

func TestProcessInput(t *testing.T) {
	defer viper.Reset()
	dir := t.TempDir()
	fileName := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte("Problem: euler_smooth\nMx: 32\nStepper: td_rk3\n"), 0644))

	ip, err := processInput(&Model1D{InputFile: fileName})
	require.NoError(t, err)
	assert.Equal(t, "euler_smooth", ip.Problem)
	assert.Equal(t, 32, ip.Mx)

	viper.Set("mx", 64)
	viper.Set("scheme", "Z5")
	ip, err = processInput(&Model1D{InputFile: fileName})
	require.NoError(t, err)
	assert.Equal(t, 64, ip.Mx)
	assert.Equal(t, "Z5", ip.Scheme)
	assert.Equal(t, "td_rk3", ip.Stepper)

	_, err = processInput(&Model1D{InputFile: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestRun1D(t *testing.T) {
	dir := t.TempDir()
	ip := &InputParameters.InputParameters1D{
		Problem:      "sod",
		Mx:           50,
		CFL:          5,
		FinalTime:    0.02,
		Frames:       2,
		LogFrequency: -1,
		OutputFile:   filepath.Join(dir, "sod.dat"),
	}
	require.NoError(t, Run1D(&Model1D{}, ip))
	assert.Equal(t, 1., ip.CFL)
	for _, frame := range []string{"sod_0000.dat", "sod_0001.dat", "sod_0002.dat"} {
		_, err := os.Stat(filepath.Join(dir, frame))
		assert.NoError(t, err, frame)
	}
	assert.Error(t, Run1D(&Model1D{Profile: "disk"}, &InputParameters.InputParameters1D{Problem: "sod", LogFrequency: -1}))
}

func TestRefineStudy(t *testing.T) {
	var (
		buf     bytes.Buffer
		csvFile = filepath.Join(t.TempDir(), "study.csv")
	)
	rs := &RefineStudy{
		Problem: "advection_sine", Scheme: "JS5", Stepper: "rk4", CFL: 0.5, FinalTime: 0.1,
		MxMin: 20, MxMax: 40, Levels: 2, CSVFile: csvFile, Latex: true,
	}
	require.NoError(t, rs.Run(&buf))
	assert.Contains(t, buf.String(), `\times 10^{`)
	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "mx,dx,L1,L2,Linf,order", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "20,"))
	assert.True(t, strings.HasPrefix(lines[2], "40,"))

	rs = &RefineStudy{Problem: "shock_entropy", MxMin: 20, MxMax: 40, Levels: 2}
	assert.Error(t, rs.Run(&buf))
}
