package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/oxygene76/orbitas-fourier/pkg/planets"
)

func TestChoosePlanetRetries(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("abc\n7\n0\n2\n"), &out)
	pl, err := p.ChoosePlanet(planets.Default())
	if err != nil {
		t.Fatal(err)
	}
	if pl.Name != "Vênus" {
		t.Fatalf("got %s, want Vênus", pl.Name)
	}
	if n := strings.Count(out.String(), "número válido"); n != 1 {
		t.Fatalf("expected one parse error, got %d:\n%s", n, out.String())
	}
	if n := strings.Count(out.String(), "Opção inválida"); n != 2 {
		t.Fatalf("expected two range errors, got %d:\n%s", n, out.String())
	}
}

func TestChoosePlanetAborted(t *testing.T) {
	p := New(strings.NewReader("x\n"), &bytes.Buffer{})
	if _, err := p.ChoosePlanet(planets.Default()); !errors.Is(err, ErrAborted) {
		t.Fatalf("got %v, want ErrAborted", err)
	}
}

func TestChooseTerms(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"3\n", 3},
		{"0\n-4\n5\n", 5},
		{"sete\n7\n", 7},
		{"80\nn\n80\ns\n", 80},
		{"51\nN\n10\n", 10},
		{"50\n", 50},
	}
	for _, tc := range cases {
		p := New(strings.NewReader(tc.input), &bytes.Buffer{})
		got, err := p.ChooseTerms(50)
		if err != nil {
			t.Fatalf("%q: %s", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestChooseTermsAborted(t *testing.T) {
	p := New(strings.NewReader("100\n"), &bytes.Buffer{})
	if _, err := p.ChooseTerms(50); !errors.Is(err, ErrAborted) {
		t.Fatalf("got %v, want ErrAborted", err)
	}
}

func TestListPlanets(t *testing.T) {
	var out bytes.Buffer
	ListPlanets(&out, planets.Default())
	for _, want := range []string{"1. Marte (excentricidade: 0.0934)", "2. Vênus", "3. Mercúrio (excentricidade: 0.2056)"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("listing misses %q:\n%s", want, out.String())
		}
	}
}
