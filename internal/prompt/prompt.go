package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/screa/hashbrown-miner/internal/crypto"
	"github.com/screa/hashbrown-miner/pkg/difficulty"
)

// Errors
var (
	ErrAborted = errors.New("input closed")
)

// Prompter asks for simulation parameters until it gets valid answers
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// Answers are the validated parameters of one simulation
type Answers struct {
	Cycles     int
	Difficulty int
	Algorithm  string
}

// New creates a prompter reading answers from in and writing questions to out
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask collects cycles, difficulty and algorithm in that order
func (p *Prompter) Ask() (*Answers, error) {
	cycles, err := p.Cycles()
	if err != nil {
		return nil, err
	}
	diff, err := p.Difficulty()
	if err != nil {
		return nil, err
	}
	algo, err := p.Algorithm()
	if err != nil {
		return nil, err
	}
	return &Answers{Cycles: cycles, Difficulty: diff, Algorithm: algo}, nil
}

// Cycles asks for the number of cycles, an integer greater than 0
func (p *Prompter) Cycles() (int, error) {
	for {
		line, err := p.ask("Number of times to run simulation (cycles): ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
			p.println("\tPlease enter an integer between [1 : n]")
		case n < 1:
			p.println("\tPlease enter an integer greater than 0")
		default:
			return n, nil
		}
	}
}

// Difficulty asks for a difficulty in the accepted range
func (p *Prompter) Difficulty() (int, error) {
	question := fmt.Sprintf("Enter a difficulty [%d : %d]: ", difficulty.DifficultyMin, difficulty.DifficultyMax)
	hint := fmt.Sprintf("\tPlease enter an integer between [%d : %d]", difficulty.DifficultyMin, difficulty.DifficultyMax)
	for {
		line, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || !difficulty.InRange(n) {
			p.println(hint)
			continue
		}
		return n, nil
	}
}

// Algorithm asks for a supported algorithm; "help" lists them
func (p *Prompter) Algorithm() (string, error) {
	for {
		line, err := p.ask(`Enter an algorithm, or type "help" for a list of algorithms: `)
		if err != nil {
			return "", err
		}
		switch {
		case line == "help":
			p.println("Algorithms: ")
			for _, name := range crypto.Algorithms() {
				p.println("\t" + name)
			}
		case crypto.IsSupported(line):
			return crypto.NormalizeName(line), nil
		default:
			p.println("Unknown algorithm, try again!")
		}
	}
}

// Again asks whether to run another simulation; only y or n are accepted
func (p *Prompter) Again() (bool, error) {
	line, err := p.ask("Run another simulation? (y/n): ")
	for err == nil {
		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		line, err = p.ask("Please enter \"y\" or \"n\"\nRun another simulation? (y/n): ")
	}
	return false, err
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrAborted
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) println(s string) {
	fmt.Fprintln(p.out, s)
}
