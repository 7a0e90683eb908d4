package ports

// Finalizer releases process-wide state held by a collaborator at teardown.
//
//go:generate mockgen -source=finalizer.go -destination=mocks/mock_finalizer.go -package=mocks
type Finalizer interface {
	Fini()
}
