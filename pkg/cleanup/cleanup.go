package cleanup

import (
	"sync"

	"go.uber.org/zap"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse order and forgets them.
func CleanUp(logger *zap.Logger) {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		logger.Debug("cleanup job started", zap.String("job", j.Name))
		if err := j.F(); err != nil {
			logger.Warn("cleanup job finished with error", zap.String("job", j.Name), zap.Error(err))
			continue
		}
		logger.Debug("cleaned", zap.String("job", j.Name))
	}
}
