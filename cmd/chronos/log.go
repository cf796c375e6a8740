package main

import "github.com/sirupsen/logrus"

// log is the CLI's base structured-logging entry, following
// straga-Mimir_lite/luthersystems-svc's *logrus.Entry-as-package-base
// pattern rather than a package-level logrus.Info/Debug call per line.
var log = logrus.NewEntry(logrus.StandardLogger())

var verbose bool

func initLogging() {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
