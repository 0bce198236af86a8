package render

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/oxygene76/orbitas-fourier/internal/types"
	"github.com/oxygene76/orbitas-fourier/pkg/analysis"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/fourier"
	"github.com/oxygene76/orbitas-fourier/pkg/astronomy/orbital"
	"github.com/oxygene76/orbitas-fourier/pkg/planets"
)

func testScene(t *testing.T, exactPoints, approxPoints int) Scene {
	t.Helper()
	mars, err := planets.Default().Lookup("Marte")
	if err != nil {
		t.Fatal(err)
	}
	exact, err := orbital.Generate(mars.SemiMajorAxis, mars.Eccentricity, exactPoints)
	if err != nil {
		t.Fatal(err)
	}
	coeffs, err := fourier.Extract(exact.X, exact.Y, 3)
	if err != nil {
		t.Fatal(err)
	}
	approx, err := fourier.Reconstruct(coeffs, 3, approxPoints)
	if err != nil {
		t.Fatal(err)
	}
	s := Scene{Planet: mars, NumTerms: 3, Exact: exact, Approx: approx, Coefficients: coeffs}
	if exactPoints == approxPoints {
		if s.Deviation, err = analysis.Compare(exact.X, exact.Y, approx.X, approx.Y); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestSceneLabels(t *testing.T) {
	s := testScene(t, 10, 10)
	if s.Title() != "Órbitas de Marte (Aproximação por Fourier)" {
		t.Fatalf("title %q", s.Title())
	}
	if s.ApproxLabel() != "Fourier (3 termos)" {
		t.Fatalf("label %q", s.ApproxLabel())
	}
}

func TestCSVRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (CSVRenderer{W: &buf}).Render(testScene(t, 50, 80)); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 81 {
		t.Fatalf("got %d rows, want header + 80", len(rows))
	}
	if strings.Join(rows[0], ",") != "index,exact_x,exact_y,exact_r,approx_x,approx_y" {
		t.Fatalf("header %v", rows[0])
	}
	if rows[1][1] == "" || rows[80][1] != "" || rows[80][4] == "" {
		t.Fatalf("unexpected padding: %v / %v", rows[1], rows[80])
	}
}

func TestJSONLRenderer(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLRenderer(&buf)
	if err := w.Render(testScene(t, 30, 20)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	sc := bufio.NewScanner(&buf)
	lines := 0
	for sc.Scan() {
		var rec types.PointRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("line %d: %s", lines, err)
		}
		if rec.Index != lines {
			t.Fatalf("line %d has index %d", lines, rec.Index)
		}
		lines++
	}
	if lines != 20 {
		t.Fatalf("got %d lines, want 20", lines)
	}
}

func TestJSONLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.jsonl")
	w, err := NewJSONLFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Render(testScene(t, 10, 10)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "\n"); n != 10 {
		t.Fatalf("got %d lines, want 10", n)
	}

	if _, err := NewJSONLFile(filepath.Join(t.TempDir(), "missing", "orbit.jsonl")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestReportRenderer(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var buf bytes.Buffer
	s := testScene(t, 100, 100)
	if err := (ReportRenderer{W: &buf, Now: func() time.Time { return at }}).Render(s); err != nil {
		t.Fatal(err)
	}
	var rep types.SimulationReport
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Planet.Name != "Marte" || rep.NumTerms != 3 || rep.Sampling != "closed" {
		t.Fatalf("unexpected report header %+v", rep)
	}
	if len(rep.Coefficients.A) != 4 || len(rep.Exact.X) != 100 || rep.Metadata.ApproxPoints != 100 {
		t.Fatalf("unexpected report sizes")
	}
	if rep.Deviation.Max != s.Deviation.Max || !rep.Timestamp.Equal(at) {
		t.Fatalf("deviation %f / timestamp %v", rep.Deviation.Max, rep.Timestamp)
	}
}

func TestSummaryRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (SummaryRenderer{W: &buf}).Render(testScene(t, 1000, 1000)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Órbitas de Marte", "Eccentricity:    0.0934", "Semi-minor axis: 1.5173 AU", "Max deviation:", "a_n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary misses %q:\n%s", want, out)
		}
	}
}

func TestPlotRendererSVG(t *testing.T) {
	var buf bytes.Buffer
	r := &PlotRenderer{Writer: &buf, Format: "svg", Size: DefaultPlotSize}
	if err := r.Render(testScene(t, 200, 200)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatal("output is not an SVG document")
	}
}

func TestFigureEqualAspect(t *testing.T) {
	p, err := Figure(testScene(t, 200, 200))
	if err != nil {
		t.Fatal(err)
	}
	dx, dy := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
	if !scalar.EqualWithinAbs(dx, dy, 1e-12) || dx <= 0 {
		t.Fatalf("axis spans %f and %f differ", dx, dy)
	}
	if p.Title.Text != "Órbitas de Marte (Aproximação por Fourier)" {
		t.Fatalf("title %q", p.Title.Text)
	}
}

func TestPlotRendererNeedsTarget(t *testing.T) {
	if err := (&PlotRenderer{}).Render(testScene(t, 10, 10)); err == nil {
		t.Fatal("expected an error without path or writer")
	}
}

func TestPlanetColor(t *testing.T) {
	if c := planetColor("red"); c == planetColor("black") {
		t.Fatal("red resolved to black")
	}
	if c := planetColor("no-such-colour"); c != planetColor("black") {
		t.Fatal("unknown colour should fall back to black")
	}
}

func TestMulti(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	ok := Func(func(Scene) error { calls++; return nil })
	bad := Func(func(Scene) error { calls++; return boom })
	err := Multi{bad, ok}.Render(testScene(t, 10, 10))
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected every renderer to run, got %d calls", calls)
	}
}
