package input

import (
	"context"

	"helpinject/internal/domain"
	"helpinject/internal/domain/entities"
)

type InjectorUseCase interface {
	Inject(ctx context.Context, path string, code entities.LanguageCode) (domain.Outcome, error)
}

type RunUseCase interface {
	Run(ctx context.Context, job entities.Job) (entities.Summary, error)
}
