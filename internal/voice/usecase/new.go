package usecase

import (
	"time"

	"voice-task-parser/internal/voice/filter"
	"voice-task-parser/internal/voice/remote"
	"voice-task-parser/internal/voice/repository"
	"voice-task-parser/pkg/datemath"
	pkgLog "voice-task-parser/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	dateMath *datemath.Parser
	filter   *filter.Parser
	remote   *remote.Adapter
	cache    repository.ResultCache
	clock    func() time.Time
}

// New creates a new voice UseCase instance. remote and cache may be nil:
// without remote every remote parse resolves to defaults, without cache
// every remote parse calls the model.
func New(
	l pkgLog.Logger,
	dateMath *datemath.Parser,
	filterParser *filter.Parser,
	remoteAdapter *remote.Adapter,
	cache repository.ResultCache,
) *implUseCase {
	return &implUseCase{
		l:        l,
		dateMath: dateMath,
		filter:   filterParser,
		remote:   remoteAdapter,
		cache:    cache,
		clock:    time.Now,
	}
}
