package log

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/ipfs-force-community/sophon-filsnap/config"
)

type Logger struct {
	*logrus.Logger
}

func New() *Logger {
	return &Logger{logrus.New()}
}

// SetLogger builds the process logger, output goes to logCfg.Path when set and
// to stderr otherwise.
func SetLogger(logCfg *config.LogConfig) (*Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   len(logCfg.Path) == 0,
		FullTimestamp: true,
	})
	logger := &Logger{log}
	err := logger.SetLogLevel(context.Background(), logCfg.Level)
	if err != nil {
		return nil, err
	}

	if len(logCfg.Path) > 0 {
		file, err := os.OpenFile(logCfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, xerrors.Errorf("open log file fail %v", err)
		}
		log.SetOutput(file)
	}
	return logger, nil
}

func (logger *Logger) SetLogLevel(ctx context.Context, levelStr string) error {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	return nil
}
