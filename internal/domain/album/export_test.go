package album

// Repo and SetRepo expose the service's repository to the external test
// package, which cannot reach the unexported field.
func (s *Service) Repo() Repository     { return s.repo }
func (s *Service) SetRepo(r Repository) { s.repo = r }
