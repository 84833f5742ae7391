package config

import (
	"log"
	"os"

	"formsat/cnf"
)

// Config carries the command line options and the logger shared by the
// translator and the solver.
type Config struct {
	Logger *log.Logger
	// Mode is the Tseitin encoding mode used for .sat inputs.
	Mode cnf.Mode
	// DimacsOnly prints the encoding instead of solving it.
	DimacsOnly bool
	// OutputPath receives the encoding when non-empty.
	OutputPath string
	Verbose    bool
}

func New() *Config {
	return &Config{
		Logger: log.New(os.Stdout, "", log.Ldate|log.Ltime),
		Mode:   cnf.LeftToRight,
	}
}
