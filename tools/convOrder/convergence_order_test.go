package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAndFit(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "study.csv")
	// Errors scale as dx^5
	data := "mx,dx,L1,L2,Linf,order\n"
	for _, mx := range []int{10, 20, 40} {
		dx := 1 / float64(mx)
		e := math.Pow(dx, 5)
		data += formatRow(mx, dx, 2*e, e, 3*e)
	}
	require.NoError(t, os.WriteFile(fileName, []byte(data), 0644))
	cs, err := readCSV(fileName)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 40}, cs.mx)
	l1, l2, linf := cs.FitOrder()
	assert.InDelta(t, 5, l1, 1.e-9)
	assert.InDelta(t, 5, l2, 1.e-9)
	assert.InDelta(t, 5, linf, 1.e-9)

	require.NoError(t, os.WriteFile(fileName, []byte("mx,dx\n10,0.1\n"), 0644))
	_, err = readCSV(fileName)
	assert.Error(t, err)
}

func formatRow(mx int, dx, l1, l2, linf float64) string {
	return fmt.Sprintf("%d,%.15e,%.15e,%.15e,%.15e,\n", mx, dx, l1, l2, linf)
}
