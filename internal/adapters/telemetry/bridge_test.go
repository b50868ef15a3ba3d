package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/restyle/internal/adapters/telemetry"
	"go.trai.ch/restyle/internal/core/ports"
	"go.trai.ch/restyle/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	var logged []string
	logger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		logged = append(logged, msg)
	}).Times(2)

	shutdown := telemetry.Install(telemetry.NewLogBridge(logger))
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName)

	_, ok := tracer.Start(context.Background(), "compile", ports.WithAttribute("source", "/s/site.css"))
	ok.SetAttribute("outcome", "recompiled")
	ok.End()

	_, failed := tracer.Start(context.Background(), "compile", ports.WithAttribute("source", "/s/bad.css"))
	failed.SetAttribute("outcome", "failed")
	failed.RecordError(errors.New("transform failed"))
	failed.End()

	if assert.Len(t, logged, 2) {
		assert.True(t, strings.HasPrefix(logged[0], "compile site.css: recompiled in "), logged[0])
		assert.True(t, strings.HasPrefix(logged[1], "compile bad.css: failed in "), logged[1])
		assert.True(t, strings.HasSuffix(logged[1], "(transform failed)"), logged[1])
	}
}

func TestLogBridge_NilLogger(t *testing.T) {
	bridge := telemetry.NewLogBridge(nil)

	assert.NotPanics(t, func() {
		shutdown := telemetry.Install(bridge)
		_, span := telemetry.NewOTelTracer("test").Start(context.Background(), "compile")
		span.End()
		_ = shutdown(context.Background())
	})
	assert.NoError(t, bridge.ForceFlush(context.Background()))
	assert.NoError(t, bridge.Shutdown(context.Background()))
}
