package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

var (
	csvFile string
)

// Reads one or more refinement studies written by "hyperweno refine --csvFile" and fits the
// observed order of each error norm over all levels
func main() {
	flag.StringVar(&csvFile, "csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	cs, err := readCSV(csvFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	for i := range cs.mx {
		fmt.Printf("%d, %v, %v, %v, %v\n", cs.mx[i], cs.dx[i], cs.l1[i], cs.l2[i], cs.linf[i])
	}
	l1, l2, linf := cs.FitOrder()
	fmt.Printf("Fitted order: L1 = %5.2f, L2 = %5.2f, Linf = %5.2f\n", l1, l2, linf)
}

type ConvergenceStudy struct {
	mx           []int
	dx           []float64
	l1, l2, linf []float64
}

func (cs *ConvergenceStudy) Add(mx int, dx, l1, l2, linf float64) {
	cs.mx = append(cs.mx, mx)
	cs.dx = append(cs.dx, dx)
	cs.l1 = append(cs.l1, l1)
	cs.l2 = append(cs.l2, l2)
	cs.linf = append(cs.linf, linf)
}

// FitOrder is the least squares slope of log(error) against log(dx)
func (cs *ConvergenceStudy) FitOrder() (l1, l2, linf float64) {
	logdx := logs(cs.dx)
	slope := func(e []float64) float64 {
		if len(e) < 2 {
			return math.NaN()
		}
		_, beta := stat.LinearRegression(logdx, logs(e), nil, false)
		return beta
	}
	return slope(cs.l1), slope(cs.l2), slope(cs.linf)
}

func logs(x []float64) (lx []float64) {
	lx = make([]float64, len(x))
	for i, v := range x {
		lx[i] = math.Log(v)
	}
	return
}

func readCSV(csvFile string) (cs *ConvergenceStudy, err error) {
	var (
		records [][]string
		f       *os.File
	)
	if f, err = os.Open(csvFile); err != nil {
		return
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		return
	}
	cs = &ConvergenceStudy{}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 5 {
			return nil, fmt.Errorf("line %d: expected mx,dx,L1,L2,Linf got %v", i+1, rec)
		}
		var (
			mx   int
			vals [4]float64
		)
		if mx, err = strconv.Atoi(rec[0]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		for j := range vals {
			if vals[j], err = strconv.ParseFloat(rec[j+1], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		cs.Add(mx, vals[0], vals[1], vals[2], vals[3])
	}
	return
}
