package log

import (
	"context"
	"os"

	"github.com/XPTOOLS/Tiktokdownloaderxp/requestid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Adapter struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// New builds a zap-backed adapter. When file is not empty, output is
// duplicated to a rotated log file.
func New(level string, file string) (*Adapter, error) {
	atomicLevel := zap.NewAtomicLevel()
	err := atomicLevel.UnmarshalText([]byte(level))
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	sink := zapcore.AddSync(os.Stdout)
	if file != "" {
		rotated := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		})
		sink = zapcore.NewMultiWriteSyncer(sink, rotated)
	}

	core := zapcore.NewCore(encoder, sink, atomicLevel)
	return &Adapter{
		logger: zap.New(core),
		level:  atomicLevel,
	}, nil
}

// NewNop returns an adapter discarding everything, for tests.
func NewNop() *Adapter {
	return &Adapter{
		logger: zap.NewNop(),
		level:  zap.NewAtomicLevel(),
	}
}

func (a *Adapter) Debug(ctx context.Context, message string, fields ...zap.Field) {
	a.logger.Debug(message, a.withRequestId(ctx, fields)...)
}

func (a *Adapter) Info(ctx context.Context, message string, fields ...zap.Field) {
	a.logger.Info(message, a.withRequestId(ctx, fields)...)
}

func (a *Adapter) Warn(ctx context.Context, message string, fields ...zap.Field) {
	a.logger.Warn(message, a.withRequestId(ctx, fields)...)
}

func (a *Adapter) Error(ctx context.Context, message string, fields ...zap.Field) {
	a.logger.Error(message, a.withRequestId(ctx, fields)...)
}

func (a *Adapter) SetLevel(level string) error {
	return a.level.UnmarshalText([]byte(level))
}

func (a *Adapter) Sync() error {
	return a.logger.Sync()
}

func (a *Adapter) withRequestId(ctx context.Context, fields []zap.Field) []zap.Field {
	requestId := requestid.FromContext(ctx)
	if requestId == "" {
		return fields
	}
	return append(fields, zap.String("requestId", requestId))
}
