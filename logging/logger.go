package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SystemName is written as the event source of every entry.
const SystemName = "groups-service"

// Logger is the process-wide logger. It writes to stderr until InitLogger runs.
var Logger = logrus.New()

var once sync.Once

// CustomFormatter renders one line per entry with a fresh event id.
type CustomFormatter struct {
	SystemName string
	Location   *time.Location
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	localTime := entry.Time.In(loc)

	b.WriteString(fmt.Sprintf("Date: %s, Time: %s, ", localTime.Format("2006-01-02"), localTime.Format("15:04:05")))
	b.WriteString(fmt.Sprintf("Event Source: %s, ", f.SystemName))
	b.WriteString(fmt.Sprintf("Event Type: %s, ", strings.ToUpper(entry.Level.String())))
	b.WriteString(fmt.Sprintf("Event ID: %s, ", uuid.New().String()))
	b.WriteString(fmt.Sprintf("Message: %s", entry.Message))

	for key, value := range entry.Data {
		b.WriteString(fmt.Sprintf(", %s=%v", key, value))
	}

	if entry.HasCaller() {
		b.WriteString(fmt.Sprintf(", Location: %s:%d in %s", filepath.Base(entry.Caller.File), entry.Caller.Line, entry.Caller.Function))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger points Logger at a rotating file (mirrored to stdout) and sets its level.
// Only the first call has any effect.
func InitLogger(logFile, level string) {
	once.Do(func() {
		Logger.SetOutput(newOutput(logFile))
		Logger.SetFormatter(&CustomFormatter{SystemName: SystemName})
		Logger.SetReportCaller(true)

		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		Logger.SetLevel(lvl)

		Logger.Infof("Event ID: LOGGER_INITIALIZED, Description: Logger initialized for %s at level %s, output to: %s", SystemName, lvl, logFile)
	})
}

func newOutput(logFile string) io.Writer {
	if logFile == "" {
		return os.Stdout
	}
	if dir := filepath.Dir(logFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			logrus.Warnf("Event ID: LOG_DIR_CREATE_FAILED, Description: Failed to create log directory %s, logging to stdout only: %v", dir, err)
			return os.Stdout
		}
	}

	rotating := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	return io.MultiWriter(os.Stdout, rotating)
}
