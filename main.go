package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"formsat/cnf"
	"formsat/config"
	"formsat/dpll"
)

func main() {
	conf := config.New()
	var mode string
	flag.StringVar(&mode, "mode", "ltr", "encoding mode: eq (equivalences) or ltr (left-to-right implications)")
	flag.BoolVar(&conf.DimacsOnly, "dimacs", false, "print the DIMACS encoding of the formula instead of solving it")
	flag.StringVar(&conf.OutputPath, "o", "", "with -dimacs, write the encoding to this file instead of stdout")
	flag.BoolVar(&conf.Verbose, "verbose", false, "sets verbose mode on")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] (file.sat|file.cnf)\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	m, err := cnf.ParseMode(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	conf.Mode = m

	path := flag.Args()[0]
	switch {
	case strings.HasSuffix(path, ".sat"):
		err = translate(conf, path)
	case strings.HasSuffix(path, ".cnf"):
		err = solveCNF(conf, path)
	default:
		err = fmt.Errorf("invalid file format for %q", path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// translate encodes a prefix-notation formula and either prints the
// encoding or hands it to the solver.
func translate(conf *config.Config, path string) error {
	formula, err := readFormula(path)
	if err != nil {
		return err
	}
	c, err := cnf.New(conf.Mode).Translate(formula)
	if err != nil {
		return fmt.Errorf("could not translate %q: %v", path, err)
	}
	if conf.DimacsOnly {
		return writeDimacs(conf, c)
	}
	solve(conf, dpll.ParseSlice(c.Clauses))
	return nil
}

func solveCNF(conf *config.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	pb, err := dpll.ParseCNF(f)
	if err != nil {
		return fmt.Errorf("could not parse DIMACS file %q: %v", path, err)
	}
	solve(conf, pb)
	return nil
}

func solve(conf *config.Config, pb *dpll.Problem) {
	s := dpll.New(conf.Logger)
	s.Verbose = conf.Verbose
	start := time.Now()
	status := s.Solve(pb)
	elapsed := time.Since(start)
	switch status {
	case dpll.Sat:
		color.Green("s SATISFIABLE")
		model := s.Model()
		strs := make([]string, len(model))
		for i, lit := range model {
			strs[i] = strconv.Itoa(lit)
		}
		fmt.Printf("v %s 0\n", strings.Join(strs, " "))
		if conf.Verbose {
			fmt.Printf("c CPU time        : %v\n", elapsed)
			fmt.Printf("c model size      : %d\n", len(model))
			fmt.Printf("c nb decisions    : %d\n", s.Stats.Decisions)
			fmt.Printf("c nb propagations : %d\n", s.Stats.Propagations)
		}
	default:
		color.Red("s UNSATISFIABLE")
		if conf.Verbose {
			fmt.Printf("c CPU time        : %v\n", elapsed)
			fmt.Printf("c nb decisions    : %d\n", s.Stats.Decisions)
			fmt.Printf("c nb propagations : %d\n", s.Stats.Propagations)
		}
	}
}

func writeDimacs(conf *config.Config, c *cnf.CNF) error {
	if conf.OutputPath == "" {
		return c.Dimacs(os.Stdout)
	}
	f, err := os.Create(conf.OutputPath)
	if err != nil {
		return fmt.Errorf("could not create %q: %v", conf.OutputPath, err)
	}
	defer f.Close()
	return c.Dimacs(f)
}

// readFormula reads the first line of path; a formula is always a
// single, possibly very long, line.
func readFormula(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("could not read %q: %v", path, err)
		}
		return "", fmt.Errorf("empty formula file %q", path)
	}
	return sc.Text(), nil
}
