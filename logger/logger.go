package logger

import (
	"log"

	"go.uber.org/zap"
)

// L is the process-wide structured logger. It defaults to a no-op logger so
// packages can log safely before Init (and in tests).
var L = zap.NewNop()

func Init(production bool) {
	var (
		zl  *zap.Logger
		err error
	)
	if production {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	L = zl
}

func Sync() {
	_ = L.Sync()
}
