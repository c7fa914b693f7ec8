package solver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notargets/hyperweno/FD1D"
)

// WriteSolution dumps the interior of the grid: the time on the first line, then one row per
// cell with x followed by every conserved variable.
func WriteSolution(w io.Writer, t float64, g *FD1D.Grid1D) (err error) {
	var (
		bw         = bufio.NewWriter(w)
		iBeg, iEnd = g.Interior()
	)
	if _, err = fmt.Fprintf(bw, "%.15e\n", t); err != nil {
		return
	}
	for i := iBeg; i < iEnd; i++ {
		fmt.Fprintf(bw, "%+.15e", g.X[i])
		for n := 0; n < g.Meq; n++ {
			fmt.Fprintf(bw, " %+.15e", g.Q.At(n, i))
		}
		if _, err = fmt.Fprintln(bw); err != nil {
			return
		}
	}
	return bw.Flush()
}

func WriteSolutionFile(fileName string, t float64, g *FD1D.Grid1D) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(fileName); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteSolution(file, t, g)
}

type textField struct {
	name, format, desc string
}

// TextDB is a plain text table described by a commented header, one block per column, with rows
// appended as the run progresses.
type TextDB struct {
	Name     string
	fields   []textField
	file     *os.File
	w        *bufio.Writer
	template string
	opened   bool
}

func NewTextDB(fileName string) *TextDB { return &TextDB{Name: fileName} }

// SetField appends a column, format is a fmt verb such as "%+.15e"
func (db *TextDB) SetField(name, format, desc string) {
	db.fields = append(db.fields, textField{name: name, format: format, desc: desc})
}

// Open creates the file and writes the header the first time, later calls reopen for append
func (db *TextDB) Open() (err error) {
	if db.opened {
		if db.file, err = os.OpenFile(db.Name, os.O_APPEND|os.O_WRONLY, 0644); err != nil {
			return
		}
		db.w = bufio.NewWriter(db.file)
		return
	}
	if db.file, err = os.Create(db.Name); err != nil {
		return
	}
	db.w = bufio.NewWriter(db.file)
	formats := make([]string, len(db.fields))
	for i, f := range db.fields {
		formats[i] = f.format
	}
	db.template = strings.Join(formats, " ") + "\n"
	db.opened = true
	_, err = db.w.WriteString(db.Header())
	return
}

func (db *TextDB) Header() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", db.Name)
	for i, f := range db.fields {
		fmt.Fprintf(&sb, "#\n# Column %2d\n# ---------\n# %s %s\n# %s\n", i, f.name, f.format, f.desc)
	}
	sb.WriteString("\n")
	return sb.String()
}

func (db *TextDB) Write(data ...float64) (err error) {
	if db.w == nil {
		return fmt.Errorf("TextDB %s: write before open", db.Name)
	}
	if len(data) != len(db.fields) {
		return fmt.Errorf("TextDB %s: %d values for %d columns", db.Name, len(data), len(db.fields))
	}
	args := make([]interface{}, len(data))
	for i, d := range data {
		args[i] = d
	}
	_, err = fmt.Fprintf(db.w, db.template, args...)
	return
}

func (db *TextDB) Close() (err error) {
	if db.file == nil {
		return
	}
	if err = db.w.Flush(); err != nil {
		db.file.Close()
		return
	}
	err = db.file.Close()
	db.file, db.w = nil, nil
	return
}

// LatexFloat renders x in exponential notation for a LaTeX table, e.g. 1.25\times 10^{-07}
func LatexFloat(x float64, digits int) string {
	s := fmt.Sprintf("%.*e", digits, x)
	mant, exp, _ := strings.Cut(s, "e")
	return fmt.Sprintf(`%s\times 10^{%s}`, mant, exp)
}
