package utils

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. InitLogger reconfigures it at startup.
var Log = logrus.New()

// InitLogger sets level and output. When file is non-empty logs go to both
// stdout and a rotated file. The returned closer flushes the file.
func InitLogger(level, file string, jsonFormat bool) io.Closer {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
	if jsonFormat {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if strings.TrimSpace(file) == "" {
		Log.SetOutput(os.Stdout)
		return nopCloser{}
	}
	rotated := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10,
		MaxBackups: 5,
		LocalTime:  true,
	}
	Log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	return rotated
}

// LogEvent writes a standardized module/action line.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	Log.WithFields(logrus.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
