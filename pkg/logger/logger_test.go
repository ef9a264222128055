package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nikmy/menuseed/pkg/errors"
)

func TestWrapper_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core)).With("upload")

	log.Debugf("hidden %d", 1)
	log.Infof("uploaded %s", "down-south")
	log.Warn(errors.Error("slow"))
	log.Error(errors.Fail("write document"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	require.Equal(t, "uploaded down-south", entries[0].Message)
	require.Equal(t, "upload", entries[0].LoggerName)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, "can't write document", entries[2].Message)
}

func TestStub(t *testing.T) {
	var log Logger = NewStub()
	require.NotPanics(t, func() {
		log.With("x").Errorf("%s", "nothing")
		log.Info(nil)
	})
}
