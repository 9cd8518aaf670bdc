package main

import (
	"log"
	"os"
)

// logger writes progress output to stderr so the data output on stdout
// stays pipeable.
type logger struct {
	l       *log.Logger
	verbose bool
}

func newLogger(verbose bool) *logger {
	return &logger{
		l:       log.New(os.Stderr, "[lazycsv] ", log.LstdFlags),
		verbose: verbose,
	}
}

func (l *logger) Infof(format string, v ...any) {
	l.l.Printf("INFO: "+format, v...)
}

func (l *logger) Debugf(format string, v ...any) {
	if l.verbose {
		l.l.Printf("DEBUG: "+format, v...)
	}
}
