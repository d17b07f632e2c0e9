package httpapi

import (
	"sync/atomic"

	"github.com/MuratKramin/nlp-hw1/internal/alias"
	"github.com/MuratKramin/nlp-hw1/internal/apperr"
	"github.com/MuratKramin/nlp-hw1/internal/config"
	"github.com/MuratKramin/nlp-hw1/internal/recognizer"
)

// BuildInfo carries version metadata reported by GET /version.
type BuildInfo struct {
	Version   string
	GoVersion string
}

// Server wires the compiled recognizer together with the ambient HTTP
// concerns (health, metrics, error reporting) behind a Gin engine. The
// recognizer is held behind an atomic.Pointer so a guarded /reload can swap
// it without a lock on the request hot path, mirroring the "process-wide
// handle, rebuilt atomically" lifecycle spec.md's design notes call for.
type Server struct {
	cfg *config.Config

	recognizer atomic.Pointer[recognizer.CompiledRecognizer]
	aliasPath  string

	health        *HealthChecker
	errorMetrics  *apperr.MetricsCollector
	requestStats  *requestMetrics
	build         BuildInfo
}

// NewServer constructs a Server with an already-compiled recognizer. It
// performs no checks of its own and returns no error: loading the alias
// dictionary and compiling the recognizer, the two fatal startup steps,
// happen in the caller before NewServer is called.
func NewServer(cfg *config.Config, cr *recognizer.CompiledRecognizer, build BuildInfo) *Server {
	s := &Server{
		cfg:          cfg,
		aliasPath:    cfg.AliasDictPath,
		health:       NewHealthChecker(build.Version),
		errorMetrics: apperr.NewMetricsCollector(),
		requestStats: newRequestMetrics(),
		build:        build,
	}
	s.recognizer.Store(cr)
	s.health.RegisterComponent("recognizer", recognizerComponent(func() bool {
		return s.recognizer.Load() != nil
	}))
	return s
}

// Recognizer returns the currently active compiled recognizer.
func (s *Server) Recognizer() *recognizer.CompiledRecognizer {
	return s.recognizer.Load()
}

// Reload recompiles the recognizer from the alias dictionary on disk and
// atomically swaps it in. The previous recognizer keeps serving any
// in-flight request that already loaded the old pointer.
func (s *Server) Reload() error {
	dict, err := alias.LoadFile(s.aliasPath)
	if err != nil {
		return err
	}
	cr, err := recognizer.Compile(dict)
	if err != nil {
		return err
	}
	s.recognizer.Store(cr)
	return nil
}
