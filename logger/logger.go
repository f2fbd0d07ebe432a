package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	AppLogger   *log.Logger
	ErrorLogger *log.Logger

	logLevel    string
	appLogFile  *lumberjack.Logger
	initialized bool
)

// InitGlobalLoggers sets up the application and error loggers. Info/Debug/Warn
// output goes to a rotating log file; errors additionally go to stderr. An
// empty appLogPath discards file output.
func InitGlobalLoggers(appLogPath, level string) error {
	if initialized && appLogFile != nil && strings.ToUpper(level) == logLevel {
		return nil
	}
	if appLogFile != nil {
		appLogFile.Close()
		appLogFile = nil
	}

	logLevel = strings.ToUpper(level)
	if logLevel == "" {
		logLevel = "INFO"
	}

	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	var appLogWriter io.Writer = io.Discard
	actualAppLogPath := appLogPath
	if appLogPath == "" {
		actualAppLogPath = "(discarded)"
	} else {
		appLogDir := filepath.Dir(appLogPath)
		if err := os.MkdirAll(appLogDir, 0750); err != nil {
			ErrorLogger.Printf("Failed to create app log directory %s: %v. App logs (Info/Debug) will be discarded.", appLogDir, err)
			actualAppLogPath = "(discarded)"
		} else {
			appLogFile = &lumberjack.Logger{
				Filename:   appLogPath,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     30, // days
			}
			appLogWriter = appLogFile
		}
	}
	AppLogger = log.New(appLogWriter, "APP: ", log.Ldate|log.Ltime|log.Lshortfile)

	if !initialized {
		AppLogger.Printf("App logger initialized. Log level: %s. Output file: %s", logLevel, actualAppLogPath)
	}
	initialized = true
	return nil
}

func Info(format string, v ...interface{}) {
	if AppLogger != nil && (logLevel == "INFO" || logLevel == "DEBUG") {
		AppLogger.Printf(format, v...)
	}
}

func Debug(format string, v ...interface{}) {
	if AppLogger != nil && logLevel == "DEBUG" {
		AppLogger.Printf(format, v...)
	}
}

func Warn(format string, v ...interface{}) {
	if AppLogger != nil && logLevel != "ERROR" {
		AppLogger.Printf(format, v...)
	}
}

func Error(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	if ErrorLogger != nil {
		ErrorLogger.Print(message)
	}
	if AppLogger != nil && appLogFile != nil {
		AppLogger.Print(message)
	}
}

func Fatal(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	if ErrorLogger != nil {
		ErrorLogger.Fatal(message)
	} else {
		log.Fatal(message)
	}
}

func CloseLogFiles() {
	if appLogFile != nil {
		AppLogger.Println("Closing app log file.")
		appLogFile.Close()
		appLogFile = nil
	}
	initialized = false
}
