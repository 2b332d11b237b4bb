package voice

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ParseTask extracts a task draft with the local heuristic extractors.
	ParseTask(ctx context.Context, input ParseTaskInput) (ParseTaskOutput, error)

	// ParseTaskRemote extracts a task draft through the hosted model. Any
	// remote failure resolves to the all-defaults record.
	ParseTaskRemote(ctx context.Context, input ParseTaskInput) (ParseTaskOutput, error)

	// ParseFilter extracts filter criteria from a query utterance.
	ParseFilter(ctx context.Context, input ParseFilterInput) (ParseFilterOutput, error)

	// ApplyFilter parses a query utterance and filters the supplied tasks.
	ApplyFilter(ctx context.Context, input ApplyFilterInput) (ApplyFilterOutput, error)
}
