// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"docstyle/config"
	"docstyle/misc"
	"docstyle/ooxml"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// output format requested on command line, overrides configuration
	Format *config.OutputFormat

	workDir       string
	start         time.Time
	restoreStdLog func()
}

func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// OutputFormat returns format requested on command line or configured one.
func (e *LocalEnv) OutputFormat() config.OutputFormat {
	if e.Format != nil {
		return *e.Format
	}
	if e.Cfg != nil {
		return e.Cfg.Output.Format
	}
	return config.OutputFormatTable
}

// Tracer returns cascade tracer for the source file. Tracing is on when
// configured or when debug report is requested; in the latter case trace goes
// to a work directory which becomes part of the report. Otherwise a disabled
// tracer is returned.
func (e *LocalEnv) Tracer(source string) (*ooxml.Tracer, error) {
	if e.Cfg == nil || (!e.Cfg.Resolver.Trace && e.Rpt == nil) {
		return ooxml.NewTracer(""), nil
	}
	name, err := e.Cfg.Resolver.TraceName(source)
	if err != nil {
		return nil, err
	}
	dir := "."
	if e.Rpt != nil {
		if e.workDir == "" {
			if e.workDir, err = os.MkdirTemp("", misc.GetAppName()+"-trace-"); err != nil {
				return nil, fmt.Errorf("unable to create trace directory: %w", err)
			}
			e.Rpt.StoreWorkDir("trace", e.workDir)
		}
		dir = e.workDir
	}
	return ooxml.NewTracer(dir).WithFileName(name), nil
}
