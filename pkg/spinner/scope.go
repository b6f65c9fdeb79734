package spinner

import "sync"

// Do starts the spinner, runs fn and stops the spinner unless fn already
// finished it with OK, Fail or Stop.
func (s *Spinner) Do(fn func() error) error {
	if err := s.Start(); err != nil {
		return err
	}
	defer func() {
		if s.Running() {
			s.Stop()
		}
	}()
	return fn()
}

// Wrap returns fn decorated to run inside Do.
func (s *Spinner) Wrap(fn func() error) func() error {
	return func() error {
		return s.Do(fn)
	}
}

// Run builds a spinner from cfg and runs fn with it inside Do.
func Run(cfg Config, fn func(sp *Spinner) error) error {
	sp, err := New(cfg)
	if err != nil {
		return err
	}
	return sp.Do(func() error {
		return fn(sp)
	})
}

// HideScope hides the spinner and returns the function that ends the scope.
// Scopes nest: only the outermost scope hides and shows. The release
// function is safe to call more than once.
func (s *Spinner) HideScope() (release func(), err error) {
	s.scopeMu.Lock()
	defer s.scopeMu.Unlock()

	if s.hiddenLevel == 0 {
		if err := s.Hide(); err != nil {
			return nil, err
		}
	}
	s.hiddenLevel++

	var once sync.Once
	return func() {
		once.Do(func() {
			s.scopeMu.Lock()
			defer s.scopeMu.Unlock()
			s.hiddenLevel--
			if s.hiddenLevel == 0 {
				_ = s.Show()
			}
		})
	}, nil
}

// Hidden runs fn with the spinner hidden. The spinner is shown again when
// fn returns or panics.
func (s *Spinner) Hidden(fn func() error) error {
	release, err := s.HideScope()
	if err != nil {
		return err
	}
	defer release()
	return fn()
}
