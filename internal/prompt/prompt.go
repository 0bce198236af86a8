// Package prompt implements the interactive selection loop: it re-asks until
// the answer is valid and only then hands a (planet, terms) pair to the caller.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oxygene76/orbitas-fourier/pkg/planets"
)

// ErrAborted is returned when the input ends before a valid answer
var ErrAborted = errors.New("input aborted")

// Prompter reads answers line by line
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a prompter reading from in and writing questions to out
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrAborted
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// ListPlanets prints the numbered planet menu
func ListPlanets(w io.Writer, c *planets.Catalog) {
	fmt.Fprintln(w, "Planetas disponíveis:")
	for i, pl := range c.Planets() {
		fmt.Fprintf(w, "  %d. %s (excentricidade: %.4f)\n", i+1, pl.Name, pl.Eccentricity)
	}
	fmt.Fprintln(w)
}

// ChoosePlanet asks for a 1-based menu index until it names a catalog entry
func (p *Prompter) ChoosePlanet(c *planets.Catalog) (planets.Planet, error) {
	if c.Len() == 0 {
		return planets.Planet{}, fmt.Errorf("planet catalog is empty")
	}
	question := fmt.Sprintf("Escolha um planeta (1-%d): ", c.Len())
	for {
		answer, err := p.ask(question)
		if err != nil {
			return planets.Planet{}, err
		}
		idx, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "!! Erro: Por favor, digite um número válido.")
			continue
		}
		if pl, ok := c.At(idx - 1); ok {
			return pl, nil
		}
		fmt.Fprintf(p.out, "!! Erro: Opção inválida! Escolha entre 1 e %d.\n", c.Len())
	}
}

// ChooseTerms asks for the number of Fourier terms. Values below 1 are
// rejected; values above warnAbove need an explicit "s" confirmation.
func (p *Prompter) ChooseTerms(warnAbove int) (int, error) {
	for {
		answer, err := p.ask("Digite o número de termos de Fourier (recomendado: 3-10): ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "!! Erro: Por favor, digite um número válido.")
			continue
		}
		switch {
		case n < 1:
			fmt.Fprintln(p.out, "!! Erro: O número de termos deve ser pelo menos 1.")
		case n > warnAbove:
			fmt.Fprintln(p.out, "!! Cuidado: Muitos termos podem deixar o gráfico lento.")
			confirm, err := p.ask("Deseja continuar? (s/n): ")
			if err != nil {
				return 0, err
			}
			if strings.ToLower(confirm) == "s" {
				return n, nil
			}
		default:
			return n, nil
		}
	}
}
