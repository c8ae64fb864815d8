package cleanup

import "github.com/sirupsen/logrus"

type Job struct {
	Name string
	F    func() error
}

// Registry collects shutdown jobs. Jobs run in reverse registration
// order, so resources opened first are closed last.
type Registry struct {
	jobs   []*Job
	logger logrus.FieldLogger
}

func New(logger logrus.FieldLogger) *Registry {
	return &Registry{logger: logger}
}

func (r *Registry) Register(j *Job) {
	r.jobs = append(r.jobs, j)
}

func (r *Registry) CleanUp() {
	for i := len(r.jobs) - 1; i >= 0; i-- {
		j := r.jobs[i]
		r.logger.Infof("cleanup job %s started...", j.Name)
		if err := j.F(); err != nil {
			r.logger.WithError(err).Errorf("cleanup job %s finished with error", j.Name)
		} else {
			r.logger.Infof("cleanup job %s done", j.Name)
		}
	}
	r.jobs = nil
}
